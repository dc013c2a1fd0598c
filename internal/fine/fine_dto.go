package fine

type CreateFineRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Amount     float64 `json:"amount" binding:"required,gte=0"`
	Reason     string  `json:"reason"`
	Date       string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateFineRequest struct {
	Amount *float64 `json:"amount" binding:"omitempty,gte=0"`
	Reason *string  `json:"reason"`
	Date   *string  `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Status *string  `json:"status" binding:"omitempty,oneof=Unpaid Paid"`
}

type ListFinesQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=Unpaid Paid"`
}

type FineResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Amount     float64 `json:"amount"`
	Reason     string  `json:"reason,omitempty"`
	Date       string  `json:"date,omitempty"`
	Status     string  `json:"status"`
}
