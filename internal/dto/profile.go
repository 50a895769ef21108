package dto

// UpdateProfileRequest changes the caller's risk profile.
type UpdateProfileRequest struct {
	RiskProfile string `json:"riskProfile" binding:"required,oneof=conservative balanced growth"`
}
