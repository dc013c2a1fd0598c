package appeal

type CreateAppealRequest struct {
	SubjectType string `json:"subject_type" binding:"required,oneof=fine leave"`
	SubjectID   string `json:"subject_id" binding:"required,uuid"`
	Reason      string `json:"reason" binding:"required"`
}

type DecideAppealRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Rejected"`
}

type ListAppealsQuery struct {
	EmployeeID  string `form:"employee_id" binding:"omitempty,uuid"`
	Status      string `form:"status" binding:"omitempty,oneof=Pending Approved Rejected"`
	SubjectType string `form:"subject_type" binding:"omitempty,oneof=fine leave"`
}

type AppealResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	SubjectType string `json:"subject_type"`
	SubjectID   string `json:"subject_id"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	DecidedBy   string `json:"decided_by,omitempty"`
}
