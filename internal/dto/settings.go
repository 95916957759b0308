package dto

import "github.com/bjtmarts/transfer_tracker_app/internal/core/domain"

// SettingsResponse exposes the interpreted tracker settings.
type SettingsResponse struct {
	DuplicateCheck string `json:"duplicateCheck"`
}

// UpdateSettingsRequest switches the duplicate-check mode.
type UpdateSettingsRequest struct {
	DuplicateCheck string `json:"duplicateCheck" binding:"required,oneof=pair order_only"`
}

// ToSettingsResponse converts domain settings to the API representation.
func ToSettingsResponse(s domain.Settings) SettingsResponse {
	return SettingsResponse{DuplicateCheck: string(s.DuplicateCheck)}
}
