package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portsrepo "github.com/IpitingaJA/church_event_app/internal/core/ports/repositories"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/IpitingaJA/church_event_app/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	cargo := domain.Role(req.Cargo)
	if !cargo.IsValid() {
		return nil, fmt.Errorf("%w: cargo inválido", apperrors.ErrValidation)
	}

	nascimento, err := utils.ParseDate(req.Nascimento)
	if err != nil {
		return nil, fmt.Errorf("%w: data de nascimento inválida", apperrors.ErrValidation)
	}

	// Pre-check the email so the common case reports a clean conflict; the
	// unique index still backstops races.
	if _, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email já cadastrado", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	senhaHash, err := utils.HashPassword(req.Senha)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Nome:         req.Nome,
		Cargo:        cargo,
		DistritoID:   req.IDDistrito,
		IgrejaID:     req.IDIgreja,
		Nascimento:   nascimento,
		Email:        req.Email,
		SenhaHash:    senhaHash,
		DataCadastro: time.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		user.Nome = *req.Nome
	}
	if req.Cargo != nil {
		cargo := domain.Role(*req.Cargo)
		if !cargo.IsValid() {
			return nil, fmt.Errorf("%w: cargo inválido", apperrors.ErrValidation)
		}
		user.Cargo = cargo
	}
	if req.IDDistrito != nil {
		user.DistritoID = *req.IDDistrito
	}
	if req.IDIgreja != nil {
		user.IgrejaID = *req.IDIgreja
	}
	if req.Nascimento != nil {
		nascimento, err := utils.ParseDate(*req.Nascimento)
		if err != nil {
			return nil, fmt.Errorf("%w: data de nascimento inválida", apperrors.ErrValidation)
		}
		user.Nascimento = nascimento
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Senha != nil {
		senhaHash, err := utils.HashPassword(*req.Senha)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.SenhaHash = senhaHash
	}

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	// Re-read so joined church/district names reflect any reference change.
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	return s.userRepo.DeleteUser(ctx, userID)
}
