package dashboard

type StatsResponse struct {
	TotalEmployees int64   `json:"total_employees"`
	PresentToday   int64   `json:"present_today"`
	AbsentToday    int64   `json:"absent_today"`
	PendingLeaves  int64   `json:"pending_leaves"`
	OnLeaveToday   int64   `json:"on_leave_today"`
	UnpaidFines    float64 `json:"unpaid_fines"`
	MonthlyPayroll float64 `json:"monthly_payroll"`
}
