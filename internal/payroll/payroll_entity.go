package payroll

import "time"

const (
	StatusPaid = "Paid"
)

// PayrollRecord is one employee's payout for one (month, year) period.
// Uniqueness on the composite key is enforced by the upsert.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	Month       int
	Year        int
	BaseSalary  float64
	Deductions  float64
	NetSalary   float64
	Status      string
	ProcessedAt time.Time
}

// PayableEmployee is the projection of an employee row the aggregation
// needs: identity and base salary.
type PayableEmployee struct {
	ID     string
	Name   string
	Salary float64
}
