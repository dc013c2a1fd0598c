package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index"`
	StartDate  string    `gorm:"type:varchar(10)"`
	EndDate    string    `gorm:"type:varchar(10)"`
	Type       string
	Reason     string
	Status     string     `gorm:"default:Pending;index"`
	DecidedBy  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Leave) TableName() string {
	return "leaves"
}
