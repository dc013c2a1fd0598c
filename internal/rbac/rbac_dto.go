package rbac

type LeadPermissionResponse struct {
	LeadID  string   `json:"lead_id"`
	Modules []string `json:"modules"`
}

type UpdateLeadPermissionRequest struct {
	Modules []string `json:"modules" binding:"required"`
}
