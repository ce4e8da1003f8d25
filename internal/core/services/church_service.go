package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portsrepo "github.com/IpitingaJA/church_event_app/internal/core/ports/repositories"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/google/uuid"
)

type churchService struct {
	churchRepo portsrepo.ChurchRepositoryFacade
}

// NewChurchService creates the church service.
func NewChurchService(churchRepo portsrepo.ChurchRepositoryFacade) portssvc.ChurchSvcFacade {
	return &churchService{churchRepo: churchRepo}
}

func (s *churchService) CreateChurch(ctx context.Context, req dto.CreateChurchRequest) (*domain.Church, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, fmt.Errorf("%w: o campo nome é obrigatório", apperrors.ErrValidation)
	}

	church := domain.Church{
		ChurchID: uuid.NewString(),
		Nome:     nome,
	}
	if err := s.churchRepo.SaveChurch(ctx, church); err != nil {
		return nil, fmt.Errorf("failed to create church in service: %w", err)
	}
	return &church, nil
}

func (s *churchService) GetChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	return s.churchRepo.FindChurchByID(ctx, churchID)
}

func (s *churchService) ListChurches(ctx context.Context) ([]domain.Church, error) {
	return s.churchRepo.FindChurches(ctx)
}

func (s *churchService) UpdateChurch(ctx context.Context, churchID string, req dto.UpdateChurchRequest) (*domain.Church, error) {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, fmt.Errorf("%w: o campo nome é obrigatório", apperrors.ErrValidation)
	}

	church := domain.Church{ChurchID: churchID, Nome: nome}
	if err := s.churchRepo.UpdateChurch(ctx, church); err != nil {
		return nil, err
	}
	return &church, nil
}

func (s *churchService) DeleteChurch(ctx context.Context, churchID string) error {
	return s.churchRepo.DeleteChurch(ctx, churchID)
}
