package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string
	Username       string `gorm:"uniqueIndex:uq_employee_username"`
	Password       string
	Role           string `gorm:"index"`
	Email          string
	Phone          string
	Department     string
	Position       string
	Salary         float64
	JoinDate       string `gorm:"type:varchar(10)"`
	Status         string `gorm:"default:Active"`
	AllowedModules []string `gorm:"serializer:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Employee) TableName() string {
	return "employees"
}
