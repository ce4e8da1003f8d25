package dto

import "github.com/IpitingaJA/church_event_app/internal/core/domain"

// CreateChurchRequest defines the payload for creating a church.
// Required-field validation is done in the handler so the legacy error
// message is preserved.
type CreateChurchRequest struct {
	Nome string `json:"nome"`
}

// UpdateChurchRequest defines the payload for updating a church.
type UpdateChurchRequest struct {
	Nome string `json:"nome"`
}

// ChurchResponse is the outward projection of a church.
type ChurchResponse struct {
	ID   string `json:"_id"`
	Nome string `json:"nome"`
}

// ToChurchResponse converts a domain.Church to its response DTO.
func ToChurchResponse(church *domain.Church) ChurchResponse {
	return ChurchResponse{ID: church.ChurchID, Nome: church.Nome}
}

// ToChurchResponses converts a slice of domain.Church to response DTOs.
func ToChurchResponses(churches []domain.Church) []ChurchResponse {
	out := make([]ChurchResponse, len(churches))
	for i := range churches {
		out[i] = ToChurchResponse(&churches[i])
	}
	return out
}
