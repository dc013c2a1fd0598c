package appeal

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// An appeal contests a fine or a leave decision; subject_type names the
// contested collection and subject_id points into it.
type Appeal struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;index"`
	SubjectType string
	SubjectID   uuid.UUID `gorm:"type:uuid"`
	Reason      string
	Status      string     `gorm:"default:Pending;index"`
	DecidedBy   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Appeal) TableName() string {
	return "appeals"
}
