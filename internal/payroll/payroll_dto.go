package payroll

type ProcessPayrollRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
}

type GetPayrollsFilterRequest struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Month      int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year       int    `form:"year" binding:"omitempty,min=2000,max=2100"`
}

type PayrollResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Month      int     `json:"month"`
	Year       int     `json:"year"`
	BaseSalary float64 `json:"base_salary"`
	Deductions float64 `json:"deductions"`
	NetSalary  float64 `json:"net_salary"`
	Status     string  `json:"status"`
}

type PayrollStatusResponse struct {
	Month    int               `json:"month"`
	Year     int               `json:"year"`
	Statuses map[string]string `json:"statuses"`
}

type ProcessPayrollResponse struct {
	Month     int               `json:"month"`
	Year      int               `json:"year"`
	Processed int               `json:"processed"`
	Records   []PayrollResponse `json:"records"`
}
