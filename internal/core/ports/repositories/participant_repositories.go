package repositories

import (
	"context"
	"time"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
)

// ParticipantFilter narrows participant listings.
type ParticipantFilter struct {
	// IgrejaNome filters by the joined church name when non-empty.
	IgrejaNome string
}

// ParticipantReader defines read operations for participants.
type ParticipantReader interface {
	// FindParticipantByCodigo retrieves a participant by its DI code.
	FindParticipantByCodigo(ctx context.Context, codigo string) (*domain.Participant, error)

	// FindParticipantByEmail retrieves a participant by email.
	FindParticipantByEmail(ctx context.Context, email string) (*domain.Participant, error)

	// FindParticipants retrieves participants matching the filter, church
	// names joined, ordered by code.
	FindParticipants(ctx context.Context, filter ParticipantFilter) ([]domain.Participant, error)

	// FindLastCodigoWithPrefix returns the highest participant code starting
	// with the given prefix, or "" when none exists.
	FindLastCodigoWithPrefix(ctx context.Context, prefix string) (string, error)
}

// ParticipantWriter defines write operations for participants.
type ParticipantWriter interface {
	// SaveParticipant persists a new participant.
	SaveParticipant(ctx context.Context, participant domain.Participant) error

	// UpdateParticipant updates an existing participant.
	UpdateParticipant(ctx context.Context, participant domain.Participant) error

	// SetConfirmacao overwrites the payment-confirmation timestamp; nil
	// clears it. Returns apperrors.ErrNotFound when the code is unknown.
	SetConfirmacao(ctx context.Context, codigo string, confirmadoEm *time.Time) error

	// DeleteParticipant removes a participant by code.
	DeleteParticipant(ctx context.Context, codigo string) error
}

// ParticipantRepositoryFacade combines all participant repository interfaces.
type ParticipantRepositoryFacade interface {
	ParticipantReader
	ParticipantWriter
}
