package services

import (
	"context"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	"github.com/IpitingaJA/church_event_app/internal/dto"
)

// UserSvcFacade defines the service operations for users.
type UserSvcFacade interface {
	// CreateUser validates, hashes the password and persists a new user.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user with church/district names resolved.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by their unique email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUser applies a partial update and returns the stored user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// DeleteUser removes a user.
	DeleteUser(ctx context.Context, userID string) error
}
