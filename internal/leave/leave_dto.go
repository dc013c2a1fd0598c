package leave

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
	StartDate  string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" binding:"required,datetime=2006-01-02"`
	Type       string `json:"type" binding:"required"`
	Reason     string `json:"reason"`
}

type DecideLeaveRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Rejected"`
}

type UpdateLeaveRequest struct {
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Type      *string `json:"type"`
	Reason    *string `json:"reason"`
	Status    *string `json:"status" binding:"omitempty,oneof=Pending Approved Rejected Cancelled"`
}

type ListLeavesQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=Pending Approved Rejected Cancelled"`
	Type       string `form:"type"`
}

type LeaveResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Type       string `json:"type"`
	Reason     string `json:"reason,omitempty"`
	Status     string `json:"status"`
	DecidedBy  string `json:"decided_by,omitempty"`
}
