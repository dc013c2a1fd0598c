package fine

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusUnpaid = "Unpaid"
	StatusPaid   = "Paid"
)

type Fine struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"type:uuid;index"`
	Amount     float64
	Reason     string
	Date       string `gorm:"type:varchar(10)"`
	Status     string `gorm:"default:Unpaid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Fine) TableName() string {
	return "fines"
}
