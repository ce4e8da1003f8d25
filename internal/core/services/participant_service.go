package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portsrepo "github.com/IpitingaJA/church_event_app/internal/core/ports/repositories"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/IpitingaJA/church_event_app/internal/middleware"
	"github.com/IpitingaJA/church_event_app/internal/utils"
)

// codigoPrefix starts every participant code; the year and a 4-digit
// sequence follow, e.g. DI20260001.
const codigoPrefix = "DI"

// maxCodigoAttempts bounds the retry loop for code collisions under
// concurrent creation.
const maxCodigoAttempts = 3

type participantService struct {
	participantRepo portsrepo.ParticipantRepositoryFacade
	churchRepo      portsrepo.ChurchRepositoryFacade
	mailer          portssvc.MailerSvcFacade
	now             func() time.Time
}

// NewParticipantService creates the participant service.
func NewParticipantService(
	participantRepo portsrepo.ParticipantRepositoryFacade,
	churchRepo portsrepo.ChurchRepositoryFacade,
	mailer portssvc.MailerSvcFacade,
) portssvc.ParticipantSvcFacade {
	return &participantService{
		participantRepo: participantRepo,
		churchRepo:      churchRepo,
		mailer:          mailer,
		now:             time.Now,
	}
}

// nextCodigo produces the next yearly-sequential participant code. It reads
// the highest existing code for the year and increments its 4-digit suffix;
// a fresh year starts at 0001. A read failure falls back to the first code
// of the year instead of failing the registration; the unique index on the
// code column catches any collision that results.
func (s *participantService) nextCodigo(ctx context.Context, year int) string {
	prefix := fmt.Sprintf("%s%d", codigoPrefix, year)

	last, err := s.participantRepo.FindLastCodigoWithPrefix(ctx, prefix)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to read last participant code, falling back to first of year",
			slog.String("error", err.Error()))
		return prefix + "0001"
	}
	if last == "" || len(last) < 4 {
		return prefix + "0001"
	}

	seq, err := strconv.Atoi(last[len(last)-4:])
	if err != nil {
		return prefix + "0001"
	}
	return fmt.Sprintf("%s%04d", prefix, seq+1)
}

func (s *participantService) CreateParticipant(ctx context.Context, req dto.CreateParticipantRequest, usuarioID *string) (*domain.Participant, error) {
	nascimento, err := utils.ParseDate(req.Nascimento)
	if err != nil {
		return nil, fmt.Errorf("%w: data de nascimento inválida", apperrors.ErrValidation)
	}

	if _, err := s.participantRepo.FindParticipantByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("%w: email já cadastrado", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	church, err := s.churchRepo.FindChurchByID(ctx, req.IgrejaID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	participant := domain.Participant{
		Nome:          req.Nome,
		Email:         req.Email,
		Nascimento:    nascimento,
		Idade:         utils.CalculateAge(nascimento, now),
		IgrejaID:      church.ChurchID,
		DataInscricao: now,
		UsuarioID:     usuarioID,
		IgrejaNome:    church.Nome,
	}

	// The code allocation is a read-then-write sequence, so two concurrent
	// registrations can pick the same code. Retry with a fresh read when the
	// unique index rejects the insert.
	for attempt := 1; ; attempt++ {
		participant.Codigo = s.nextCodigo(ctx, now.Year())
		err = s.participantRepo.SaveParticipant(ctx, participant)
		if err == nil {
			break
		}
		if errors.Is(err, apperrors.ErrDuplicate) && attempt < maxCodigoAttempts {
			continue
		}
		return nil, err
	}

	// Persistence succeeded; the confirmation email is best-effort and must
	// never fail the registration.
	if err := s.mailer.SendInscricaoConfirmation(ctx, participant); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to send registration confirmation email",
			slog.String("codigo", participant.Codigo),
			slog.String("error", err.Error()))
	}

	return &participant, nil
}

func (s *participantService) GetParticipantByCodigo(ctx context.Context, codigo string) (*domain.Participant, error) {
	return s.participantRepo.FindParticipantByCodigo(ctx, codigo)
}

func (s *participantService) ListParticipants(ctx context.Context, filter portsrepo.ParticipantFilter) ([]domain.Participant, error) {
	return s.participantRepo.FindParticipants(ctx, filter)
}

func (s *participantService) UpdateParticipant(ctx context.Context, codigo string, req dto.UpdateParticipantRequest) (*domain.Participant, error) {
	participant, err := s.participantRepo.FindParticipantByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		participant.Nome = *req.Nome
	}
	if req.Email != nil {
		participant.Email = *req.Email
	}
	if req.Nascimento != nil {
		nascimento, err := utils.ParseDate(*req.Nascimento)
		if err != nil {
			return nil, fmt.Errorf("%w: data de nascimento inválida", apperrors.ErrValidation)
		}
		participant.Nascimento = nascimento
		participant.Idade = utils.CalculateAge(nascimento, s.now())
	}
	if req.IgrejaID != nil {
		church, err := s.churchRepo.FindChurchByID(ctx, *req.IgrejaID)
		if err != nil {
			return nil, err
		}
		participant.IgrejaID = church.ChurchID
	}

	if err := s.participantRepo.UpdateParticipant(ctx, *participant); err != nil {
		return nil, err
	}
	return s.participantRepo.FindParticipantByCodigo(ctx, codigo)
}

func (s *participantService) ConfirmarPagamento(ctx context.Context, codigo string) (*domain.Participant, error) {
	// Overwriting an existing confirmation is deliberate; confirming twice
	// just refreshes the timestamp.
	confirmadoEm := s.now()
	if err := s.participantRepo.SetConfirmacao(ctx, codigo, &confirmadoEm); err != nil {
		return nil, err
	}

	participant, err := s.participantRepo.FindParticipantByCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}

	if err := s.mailer.SendPagamentoConfirmation(ctx, *participant); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to send payment confirmation email",
			slog.String("codigo", codigo),
			slog.String("error", err.Error()))
	}
	return participant, nil
}

func (s *participantService) CancelarConfirmacao(ctx context.Context, codigo string) (*domain.Participant, error) {
	if err := s.participantRepo.SetConfirmacao(ctx, codigo, nil); err != nil {
		return nil, err
	}
	return s.participantRepo.FindParticipantByCodigo(ctx, codigo)
}

func (s *participantService) DeleteParticipant(ctx context.Context, codigo string) error {
	return s.participantRepo.DeleteParticipant(ctx, codigo)
}
