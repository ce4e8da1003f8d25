package services

import (
	"context"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	"github.com/IpitingaJA/church_event_app/internal/dto"
)

// TokenSvcFacade handles credential verification and bearer-token issuance.
type TokenSvcFacade interface {
	// Register creates a user and returns it with a freshly signed token.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error)

	// Login verifies the credentials and returns the user with a signed
	// token. Returns apperrors.ErrUnauthorized on unknown email or password
	// mismatch, without revealing which.
	Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error)

	// GenerateAccessToken signs a bearer token for an already verified user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, error)
}
