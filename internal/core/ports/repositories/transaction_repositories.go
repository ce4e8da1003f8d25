package repositories

import (
	"context"
	"time"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
)

// TransactionFilter narrows and paginates transaction listings.
type TransactionFilter struct {
	Tipo       string
	DataInicio *time.Time
	DataFim    *time.Time
	UsuarioID  string
	Page       int
	Limit      int
}

// TransactionRepositoryFacade defines persistence operations for transactions.
type TransactionRepositoryFacade interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID retrieves a transaction with the user name joined.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactions retrieves a page of transactions matching the filter,
	// newest first, plus the total number of matches.
	FindTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, int64, error)

	// UpdateTransaction updates an existing transaction.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction by ID.
	DeleteTransaction(ctx context.Context, transactionID string) error
}
