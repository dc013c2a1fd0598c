package settings

// Pointer fields so omitted keys keep their stored value.
type UpdateSettingsRequest struct {
	OfficeStartTime *string             `json:"office_start_time"`
	OfficeEndTime   *string             `json:"office_end_time"`
	LateFineAmount  *float64            `json:"late_fine_amount" binding:"omitempty,gte=0"`
	HalfDayHours    *float64            `json:"half_day_hours" binding:"omitempty,gte=0"`
	LeavePolicy     *map[string]int     `json:"leave_policy"`
	SalarySettings  *map[string]float64 `json:"salary_settings"`
}

type SettingsResponse struct {
	OfficeStartTime string             `json:"office_start_time"`
	OfficeEndTime   string             `json:"office_end_time"`
	LateFineAmount  float64            `json:"late_fine_amount"`
	HalfDayHours    float64            `json:"half_day_hours"`
	LeavePolicy     map[string]int     `json:"leave_policy"`
	SalarySettings  map[string]float64 `json:"salary_settings"`
}
