package services

import (
	"context"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portsrepo "github.com/IpitingaJA/church_event_app/internal/core/ports/repositories"
	"github.com/IpitingaJA/church_event_app/internal/dto"
)

// ParticipantSvcFacade defines the service operations for participants.
type ParticipantSvcFacade interface {
	// CreateParticipant allocates a yearly-sequential code, persists the
	// participant and dispatches a best-effort confirmation email.
	// usuarioID is the owning user for authenticated creations, nil for the
	// public inscription route.
	CreateParticipant(ctx context.Context, req dto.CreateParticipantRequest, usuarioID *string) (*domain.Participant, error)

	// GetParticipantByCodigo retrieves a participant by its DI code.
	GetParticipantByCodigo(ctx context.Context, codigo string) (*domain.Participant, error)

	// ListParticipants retrieves participants, optionally filtered by the
	// church name.
	ListParticipants(ctx context.Context, filter portsrepo.ParticipantFilter) ([]domain.Participant, error)

	// UpdateParticipant applies a partial update and returns the stored
	// participant.
	UpdateParticipant(ctx context.Context, codigo string, req dto.UpdateParticipantRequest) (*domain.Participant, error)

	// ConfirmarPagamento stamps the payment confirmation. Overwriting an
	// existing timestamp is allowed; confirming twice is not an error.
	ConfirmarPagamento(ctx context.Context, codigo string) (*domain.Participant, error)

	// CancelarConfirmacao clears the payment confirmation.
	CancelarConfirmacao(ctx context.Context, codigo string) (*domain.Participant, error)

	// DeleteParticipant removes a participant by code.
	DeleteParticipant(ctx context.Context, codigo string) error
}
