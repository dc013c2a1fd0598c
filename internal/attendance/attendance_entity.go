package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusLate    = "Late"
	StatusAbsent  = "Absent"
	StatusHalfDay = "Half Day"
)

// One row per employee per calendar day, enforced by the composite
// unique index so concurrent check-ins cannot double-create.
type Attendance struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_attendance_employee_date"`
	Date         string    `gorm:"type:varchar(10);uniqueIndex:uq_attendance_employee_date"`
	CheckIn      string
	CheckOut     *string
	Status       string
	IsLate       bool
	IsEarlyOut   bool
	WorkingHours *float64
	Method       string
	Location     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Attendance) TableName() string {
	return "attendances"
}
