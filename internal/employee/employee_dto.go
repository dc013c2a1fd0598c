package employee

type CreateEmployeeRequest struct {
	Name           string   `json:"name" binding:"required"`
	Username       string   `json:"username" binding:"required"`
	Password       string   `json:"password" binding:"required,min=4"`
	Role           string   `json:"role" binding:"required,oneof=ADMIN LEAD EMPLOYEE"`
	Email          string   `json:"email" binding:"omitempty,email"`
	Phone          string   `json:"phone"`
	Department     string   `json:"department"`
	Position       string   `json:"position"`
	Salary         float64  `json:"salary" binding:"omitempty,gte=0"`
	JoinDate       string   `json:"join_date" binding:"omitempty,datetime=2006-01-02"`
	AllowedModules []string `json:"allowed_modules"`
}

// Pointer fields so absent keys are left untouched on update.
type UpdateEmployeeRequest struct {
	Name           *string   `json:"name"`
	Password       *string   `json:"password" binding:"omitempty,min=4"`
	Role           *string   `json:"role" binding:"omitempty,oneof=ADMIN LEAD EMPLOYEE"`
	Email          *string   `json:"email" binding:"omitempty,email"`
	Phone          *string   `json:"phone"`
	Department     *string   `json:"department"`
	Position       *string   `json:"position"`
	Salary         *float64  `json:"salary" binding:"omitempty,gte=0"`
	JoinDate       *string   `json:"join_date" binding:"omitempty,datetime=2006-01-02"`
	Status         *string   `json:"status" binding:"omitempty,oneof=Active Inactive"`
	AllowedModules *[]string `json:"allowed_modules"`
}

type ListEmployeesQuery struct {
	Role   string `form:"role" binding:"omitempty,oneof=ADMIN LEAD EMPLOYEE"`
	Status string `form:"status" binding:"omitempty,oneof=Active Inactive"`
	Search string `form:"q"`
}

type EmployeeResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Username       string   `json:"username"`
	Role           string   `json:"role"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Department     string   `json:"department,omitempty"`
	Position       string   `json:"position,omitempty"`
	Salary         float64  `json:"salary"`
	JoinDate       string   `json:"join_date,omitempty"`
	Status         string   `json:"status"`
	AllowedModules []string `json:"allowed_modules,omitempty"`
}

type LeadOptionResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}
