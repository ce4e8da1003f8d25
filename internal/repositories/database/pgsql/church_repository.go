package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portsrepo "github.com/IpitingaJA/church_event_app/internal/core/ports/repositories"
	"github.com/IpitingaJA/church_event_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChurchRepository struct {
	db *pgxpool.Pool
}

func newPgxChurchRepository(db *pgxpool.Pool) portsrepo.ChurchRepositoryFacade {
	return &PgxChurchRepository{db: db}
}

var _ portsrepo.ChurchRepositoryFacade = (*PgxChurchRepository)(nil)

func toDomainChurch(m models.Church) domain.Church {
	return domain.Church{ChurchID: m.ChurchID, Nome: m.Nome}
}

func (r *PgxChurchRepository) SaveChurch(ctx context.Context, church domain.Church) error {
	query := `INSERT INTO churches (church_id, nome) VALUES ($1, $2);`
	_, err := r.db.Exec(ctx, query, church.ChurchID, church.Nome)
	if err != nil {
		return fmt.Errorf("failed to save church: %w", err)
	}
	return nil
}

func (r *PgxChurchRepository) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	var m models.Church
	query := `SELECT church_id, nome FROM churches WHERE church_id = $1;`
	err := r.db.QueryRow(ctx, query, churchID).Scan(&m.ChurchID, &m.Nome)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find church by ID %s: %w", churchID, err)
	}
	d := toDomainChurch(m)
	return &d, nil
}

func (r *PgxChurchRepository) FindChurches(ctx context.Context) ([]domain.Church, error) {
	rows, err := r.db.Query(ctx, `SELECT church_id, nome FROM churches ORDER BY nome;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query churches: %w", err)
	}
	defer rows.Close()

	churches := []domain.Church{}
	for rows.Next() {
		var m models.Church
		if err := rows.Scan(&m.ChurchID, &m.Nome); err != nil {
			return nil, fmt.Errorf("failed to scan church row: %w", err)
		}
		churches = append(churches, toDomainChurch(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating church rows: %w", rows.Err())
	}
	return churches, nil
}

func (r *PgxChurchRepository) UpdateChurch(ctx context.Context, church domain.Church) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE churches SET nome = $1 WHERE church_id = $2;`, church.Nome, church.ChurchID)
	if err != nil {
		return fmt.Errorf("failed to execute update church query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxChurchRepository) DeleteChurch(ctx context.Context, churchID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM churches WHERE church_id = $1;`, churchID)
	if err != nil {
		return fmt.Errorf("failed to delete church: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
