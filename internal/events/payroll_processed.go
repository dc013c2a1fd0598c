package events

import "time"

const PayrollProcessedTopic = "hr.payroll.processed.v1"

type PayrollProcessedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	Month          int       `json:"month"`
	Year           int       `json:"year"`
	EmployeeCount  int       `json:"employee_count"`
	TotalNetSalary float64   `json:"total_net_salary"`
	ProcessedBy    string    `json:"processed_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}
