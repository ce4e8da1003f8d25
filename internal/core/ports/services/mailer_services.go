package services

import (
	"context"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
)

// MailerSvcFacade sends participant notifications through the mail relay.
// Implementations must be safe to call best-effort: failures are logged by
// the caller and never abort the triggering request.
type MailerSvcFacade interface {
	// SendInscricaoConfirmation notifies a participant their registration
	// was recorded.
	SendInscricaoConfirmation(ctx context.Context, p domain.Participant) error

	// SendPagamentoConfirmation notifies a participant their payment was
	// confirmed.
	SendPagamentoConfirmation(ctx context.Context, p domain.Participant) error
}
