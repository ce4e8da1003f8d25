package repositories

import (
	"context"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
)

// ChurchRepositoryFacade defines persistence operations for churches.
type ChurchRepositoryFacade interface {
	// SaveChurch persists a new church.
	SaveChurch(ctx context.Context, church domain.Church) error

	// FindChurchByID retrieves a church by ID.
	FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error)

	// FindChurches retrieves all churches.
	FindChurches(ctx context.Context) ([]domain.Church, error)

	// UpdateChurch updates an existing church.
	UpdateChurch(ctx context.Context, church domain.Church) error

	// DeleteChurch removes a church. No cascade to participants or users.
	DeleteChurch(ctx context.Context, churchID string) error
}
