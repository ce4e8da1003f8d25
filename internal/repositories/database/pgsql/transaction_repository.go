package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portsrepo "github.com/IpitingaJA/church_event_app/internal/core/ports/repositories"
	"github.com/IpitingaJA/church_event_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UsuarioID:     m.UserID,
		Igreja:        m.Igreja,
		Data:          m.Data,
		Descricao:     m.Descricao,
		Tipo:          domain.TransactionType(m.Tipo),
		Valor:         m.Valor,
		UsuarioNome:   m.UsuarioNome.String,
	}
}

const transactionSelect = `
	SELECT t.transaction_id, t.user_id, t.igreja, t.data, t.descricao,
	       t.tipo, t.valor, u.nome AS usuario_nome
	FROM transactions t
	LEFT JOIN users u ON u.user_id = t.user_id`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.UserID,
		&m.Igreja,
		&m.Data,
		&m.Descricao,
		&m.Tipo,
		&m.Valor,
		&m.UsuarioNome,
	)
	return m, err
}

// buildTransactionFilter renders the WHERE clause shared by the page query
// and the count query.
func buildTransactionFilter(filter portsrepo.TransactionFilter) (string, []any) {
	conditions := []string{}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Tipo != "" {
		conditions = append(conditions, "t.tipo = "+arg(strings.ToLower(filter.Tipo)))
	}
	if filter.DataInicio != nil {
		conditions = append(conditions, "t.data >= "+arg(*filter.DataInicio))
	}
	if filter.DataFim != nil {
		conditions = append(conditions, "t.data <= "+arg(*filter.DataFim))
	}
	if filter.UsuarioID != "" {
		conditions = append(conditions, "t.user_id = "+arg(filter.UsuarioID))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "\n\tWHERE " + strings.Join(conditions, " AND "), args
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        INSERT INTO transactions (transaction_id, user_id, igreja, data, descricao, tipo, valor)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.db.Exec(ctx, query,
		txn.TransactionID,
		txn.UsuarioID,
		txn.Igreja,
		txn.Data,
		txn.Descricao,
		string(txn.Tipo),
		txn.Valor,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := transactionSelect + `
	WHERE t.transaction_id = $1;`
	m, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	d := toDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	where, args := buildTransactionFilter(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM transactions t` + where + `;`
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	pageArgs := append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := transactionSelect + where + fmt.Sprintf(`
	ORDER BY t.data DESC
	LIMIT $%d OFFSET $%d;`, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, query, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, toDomainTransaction(m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, total, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        UPDATE transactions
        SET user_id = $1, igreja = $2, data = $3, descricao = $4, tipo = $5, valor = $6
        WHERE transaction_id = $7;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		txn.UsuarioID,
		txn.Igreja,
		txn.Data,
		txn.Descricao,
		string(txn.Tipo),
		txn.Valor,
		txn.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
