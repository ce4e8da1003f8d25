package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/IpitingaJA/church_event_app/internal/platform/config"
	"github.com/IpitingaJA/church_event_app/internal/utils"
)

// tokenService verifies credentials and issues signed bearer tokens. It
// requires access to application configuration (for the secret and expiry)
// and the user service.
type tokenService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

func (s *tokenService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, string, error) {
	user, err := s.userService.CreateUser(ctx, dto.CreateUserRequest(req))
	if err != nil {
		return nil, "", err
	}

	token, err := s.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *tokenService) Login(ctx context.Context, req dto.LoginRequest) (*domain.User, string, error) {
	user, err := s.userService.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same failure as a wrong password so the response does not leak
			// which emails are registered.
			return nil, "", apperrors.ErrUnauthorized
		}
		return nil, "", fmt.Errorf("failed to look up user for login: %w", err)
	}

	if !utils.CheckPasswordHash(req.Senha, user.SenhaHash) {
		return nil, "", apperrors.ErrUnauthorized
	}

	token, err := s.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, error) {
	token, err := utils.GenerateJWT(user.UserID, string(user.Cargo), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, nil
}
