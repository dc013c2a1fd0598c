package attendance

type CheckInRequest struct {
	Method   string `json:"method"`
	Location string `json:"location"`
}

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	CheckIn    string  `json:"check_in" binding:"required"`
	CheckOut   *string `json:"check_out"`
	Status     string  `json:"status" binding:"required,oneof=Present Late Absent 'Half Day'"`
}

type UpdateAttendanceRequest struct {
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Status   *string `json:"status" binding:"omitempty,oneof=Present Late Absent 'Half Day'"`
}

type ListAttendanceQuery struct {
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
	Date       string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Month      int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year       int    `form:"year" binding:"omitempty,min=2000,max=2100"`
}

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	Date         string   `json:"date"`
	CheckIn      string   `json:"check_in"`
	CheckOut     *string  `json:"check_out"`
	Status       string   `json:"status"`
	IsLate       bool     `json:"is_late"`
	IsEarlyOut   bool     `json:"is_early_out"`
	WorkingHours *float64 `json:"working_hours"`
	Method       string   `json:"method,omitempty"`
	Location     string   `json:"location,omitempty"`
}
