package company

type PolicyResponse struct {
	CompanyID     string `json:"company_id"`
	WeeklyOffType string `json:"weekly_off_type"`
	Description   string `json:"description,omitempty"`
	EffectiveFrom string `json:"effective_from,omitempty"`
	IsDefault     bool   `json:"is_default"`
}

type UpdatePolicyRequest struct {
	WeeklyOffType string `json:"weekly_off_type" binding:"required,oneof=SUNDAY_ONLY SAT_SUN ALTERNATE_SATURDAY"`
	Description   string `json:"description"`
	EffectiveFrom string `json:"effective_from"`
}
