package services

import (
	"context"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	"github.com/IpitingaJA/church_event_app/internal/dto"
)

// ChurchSvcFacade defines the service operations for churches.
type ChurchSvcFacade interface {
	CreateChurch(ctx context.Context, req dto.CreateChurchRequest) (*domain.Church, error)
	GetChurchByID(ctx context.Context, churchID string) (*domain.Church, error)
	ListChurches(ctx context.Context) ([]domain.Church, error)
	UpdateChurch(ctx context.Context, churchID string, req dto.UpdateChurchRequest) (*domain.Church, error)
	DeleteChurch(ctx context.Context, churchID string) error
}
