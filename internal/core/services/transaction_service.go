package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portsrepo "github.com/IpitingaJA/church_event_app/internal/core/ports/repositories"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/IpitingaJA/church_event_app/internal/utils"
	"github.com/google/uuid"
)

type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	userRepo        portsrepo.UserReader
}

// NewTransactionService creates the transaction service.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	userRepo portsrepo.UserReader,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	tipo := domain.TransactionType(strings.ToLower(req.Tipo))
	if !tipo.IsValid() {
		return nil, fmt.Errorf("%w: tipo deve ser 'entrada' ou 'saida'", apperrors.ErrValidation)
	}

	data, err := utils.ParseDate(req.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: data inválida", apperrors.ErrValidation)
	}

	if _, err := s.userRepo.FindUserByID(ctx, req.IDUsuario); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: usuário inválido", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to check transaction user: %w", err)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		UsuarioID:     req.IDUsuario,
		Igreja:        req.Igreja,
		Data:          data,
		Descricao:     req.Descricao,
		Tipo:          tipo,
		Valor:         req.Valor,
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, err
	}
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, int64, error) {
	filter := portsrepo.TransactionFilter{
		Tipo:      params.Tipo,
		UsuarioID: params.IDUsuario,
		Page:      params.Page,
		Limit:     params.Limit,
	}

	parseBound := func(s string) (*time.Time, error) {
		if s == "" {
			return nil, nil
		}
		t, err := utils.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("%w: intervalo de datas inválido", apperrors.ErrValidation)
		}
		return &t, nil
	}

	var err error
	if filter.DataInicio, err = parseBound(params.DataInicio); err != nil {
		return nil, 0, err
	}
	if filter.DataFim, err = parseBound(params.DataFim); err != nil {
		return nil, 0, err
	}

	return s.transactionRepo.FindTransactions(ctx, filter)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	if req.IDUsuario != nil {
		if _, err := s.userRepo.FindUserByID(ctx, *req.IDUsuario); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: usuário inválido", apperrors.ErrValidation)
			}
			return nil, fmt.Errorf("failed to check transaction user: %w", err)
		}
		txn.UsuarioID = *req.IDUsuario
	}
	if req.Igreja != nil {
		txn.Igreja = *req.Igreja
	}
	if req.Data != nil {
		data, err := utils.ParseDate(*req.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: data inválida", apperrors.ErrValidation)
		}
		txn.Data = data
	}
	if req.Descricao != nil {
		txn.Descricao = *req.Descricao
	}
	if req.Tipo != nil {
		tipo := domain.TransactionType(strings.ToLower(*req.Tipo))
		if !tipo.IsValid() {
			return nil, fmt.Errorf("%w: tipo deve ser 'entrada' ou 'saida'", apperrors.ErrValidation)
		}
		txn.Tipo = tipo
	}
	if req.Valor != nil {
		txn.Valor = *req.Valor
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		return nil, err
	}
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}
