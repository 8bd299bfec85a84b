package dto

import "github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"

// CreateSettingRequest creates one lookup entry.
type CreateSettingRequest struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"type" binding:"required,oneof=property_type category person"`
}

// SettingResponse is the JSON shape of a lookup entry. The kind is
// exposed as "type" for the browser client.
type SettingResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Kind string `json:"type"`
}

// ToSettingResponse converts a domain setting.
func ToSettingResponse(s *domain.Setting) SettingResponse {
	return SettingResponse{
		ID:   s.SettingID,
		Name: s.Name,
		Kind: string(s.Kind),
	}
}

// ToListSettingsResponse converts a slice of domain settings.
func ToListSettingsResponse(settings []domain.Setting) []SettingResponse {
	out := make([]SettingResponse, len(settings))
	for i := range settings {
		out[i] = ToSettingResponse(&settings[i])
	}
	return out
}
