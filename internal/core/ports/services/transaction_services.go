package services

import (
	"context"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	"github.com/IpitingaJA/church_event_app/internal/dto"
)

// TransactionSvcFacade defines the service operations for transactions.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns a page of transactions plus the total number
	// of matches for pagination metadata.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, int64, error)

	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}
