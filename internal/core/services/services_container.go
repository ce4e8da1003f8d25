package services

import (
	portsrepo "github.com/IpitingaJA/church_event_app/internal/core/ports/repositories"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The mailer is constructed by the caller since it owns the relay client lifecycle.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.MailerSvcFacade) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Mailer = mailer
	container.User = NewUserService(repos.UserRepo)
	container.Church = NewChurchService(repos.ChurchRepo)
	container.Participant = NewParticipantService(repos.ParticipantRepo, repos.ChurchRepo, mailer)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
