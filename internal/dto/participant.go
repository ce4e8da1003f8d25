package dto

import (
	"time"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
)

// CreateParticipantRequest defines the payload for registering a participant.
type CreateParticipantRequest struct {
	Nome       string `json:"nome" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Nascimento string `json:"nascimento" binding:"required"`
	IgrejaID   string `json:"igrejaId" binding:"required"`
}

// UpdateParticipantRequest defines the data allowed for updating a
// participant. Pointers differentiate omitted fields from zero values.
type UpdateParticipantRequest struct {
	Nome       *string `json:"nome"`
	Email      *string `json:"email"`
	Nascimento *string `json:"nascimento"`
	IgrejaID   *string `json:"igrejaId"`
}

// ListParticipantsParams defines query parameters for listing participants.
type ListParticipantsParams struct {
	Igreja string `form:"igreja"`
}

// ParticipantResponse is the outward projection of a participant.
type ParticipantResponse struct {
	IDParticipante  string     `json:"id_participante"`
	Nome            string     `json:"nome"`
	Email           string     `json:"email"`
	Nascimento      time.Time  `json:"nascimento"`
	Idade           int        `json:"idade"`
	Igreja          string     `json:"igreja"`
	DataInscricao   time.Time  `json:"data_inscricao"`
	DataConfirmacao *time.Time `json:"data_confirmacao,omitempty"`
	IDUsuario       *string    `json:"id_usuario,omitempty"`
}

// ToParticipantResponse converts a domain.Participant to its response DTO.
func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		IDParticipante:  p.Codigo,
		Nome:            p.Nome,
		Email:           p.Email,
		Nascimento:      p.Nascimento,
		Idade:           p.Idade,
		Igreja:          p.IgrejaNome,
		DataInscricao:   p.DataInscricao,
		DataConfirmacao: p.DataConfirmacao,
		IDUsuario:       p.UsuarioID,
	}
}

// ToParticipantResponses converts a slice of participants to response DTOs.
func ToParticipantResponses(ps []domain.Participant) []ParticipantResponse {
	out := make([]ParticipantResponse, len(ps))
	for i := range ps {
		out[i] = ToParticipantResponse(&ps[i])
	}
	return out
}
