package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portsrepo "github.com/IpitingaJA/church_event_app/internal/core/ports/repositories"
	"github.com/IpitingaJA/church_event_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxParticipantRepository struct {
	db *pgxpool.Pool
}

func newPgxParticipantRepository(db *pgxpool.Pool) portsrepo.ParticipantRepositoryFacade {
	return &PgxParticipantRepository{db: db}
}

var _ portsrepo.ParticipantRepositoryFacade = (*PgxParticipantRepository)(nil)

func toModelParticipant(d domain.Participant) models.Participant {
	m := models.Participant{
		Codigo:        d.Codigo,
		Nome:          d.Nome,
		Email:         d.Email,
		Nascimento:    d.Nascimento,
		Idade:         d.Idade,
		ChurchID:      d.IgrejaID,
		DataInscricao: d.DataInscricao,
	}
	if d.DataConfirmacao != nil {
		m.DataConfirmacao = sql.NullTime{Time: *d.DataConfirmacao, Valid: true}
	}
	if d.UsuarioID != nil {
		m.UserID = sql.NullString{String: *d.UsuarioID, Valid: true}
	}
	return m
}

func toDomainParticipant(m models.Participant) domain.Participant {
	d := domain.Participant{
		Codigo:        m.Codigo,
		Nome:          m.Nome,
		Email:         m.Email,
		Nascimento:    m.Nascimento,
		Idade:         m.Idade,
		IgrejaID:      m.ChurchID,
		DataInscricao: m.DataInscricao,
		IgrejaNome:    m.IgrejaNome.String,
	}
	if m.DataConfirmacao.Valid {
		t := m.DataConfirmacao.Time
		d.DataConfirmacao = &t
	}
	if m.UserID.Valid {
		s := m.UserID.String
		d.UsuarioID = &s
	}
	return d
}

const participantSelect = `
	SELECT p.codigo, p.nome, p.email, p.nascimento, p.idade, p.church_id,
	       p.data_inscricao, p.data_confirmacao, p.user_id,
	       c.nome AS igreja_nome
	FROM participants p
	LEFT JOIN churches c ON c.church_id = p.church_id`

func scanParticipant(row pgx.Row) (models.Participant, error) {
	var m models.Participant
	err := row.Scan(
		&m.Codigo,
		&m.Nome,
		&m.Email,
		&m.Nascimento,
		&m.Idade,
		&m.ChurchID,
		&m.DataInscricao,
		&m.DataConfirmacao,
		&m.UserID,
		&m.IgrejaNome,
	)
	return m, err
}

func (r *PgxParticipantRepository) SaveParticipant(ctx context.Context, participant domain.Participant) error {
	m := toModelParticipant(participant)
	query := `
        INSERT INTO participants (codigo, nome, email, nascimento, idade, church_id, data_inscricao, data_confirmacao, user_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		m.Codigo,
		m.Nome,
		m.Email,
		m.Nascimento,
		m.Idade,
		m.ChurchID,
		m.DataInscricao,
		m.DataConfirmacao,
		m.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save participant: %w", err)
	}
	return nil
}

func (r *PgxParticipantRepository) FindParticipantByCodigo(ctx context.Context, codigo string) (*domain.Participant, error) {
	query := participantSelect + `
	WHERE p.codigo = $1;`
	m, err := scanParticipant(r.db.QueryRow(ctx, query, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find participant %s: %w", codigo, err)
	}
	d := toDomainParticipant(m)
	return &d, nil
}

func (r *PgxParticipantRepository) FindParticipantByEmail(ctx context.Context, email string) (*domain.Participant, error) {
	query := participantSelect + `
	WHERE p.email = $1;`
	m, err := scanParticipant(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find participant by email: %w", err)
	}
	d := toDomainParticipant(m)
	return &d, nil
}

func (r *PgxParticipantRepository) FindParticipants(ctx context.Context, filter portsrepo.ParticipantFilter) ([]domain.Participant, error) {
	query := participantSelect
	args := []any{}
	if filter.IgrejaNome != "" {
		query += `
	WHERE c.nome = $1`
		args = append(args, filter.IgrejaNome)
	}
	query += `
	ORDER BY p.codigo;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", err)
	}
	defer rows.Close()

	participants := []domain.Participant{}
	for rows.Next() {
		m, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant row: %w", err)
		}
		participants = append(participants, toDomainParticipant(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", rows.Err())
	}
	return participants, nil
}

func (r *PgxParticipantRepository) FindLastCodigoWithPrefix(ctx context.Context, prefix string) (string, error) {
	// Codes share a fixed width per year, so descending string order is
	// also descending numeric order.
	query := `
        SELECT codigo FROM participants
        WHERE codigo LIKE $1 || '%'
        ORDER BY codigo DESC
        LIMIT 1;
    `
	var codigo string
	err := r.db.QueryRow(ctx, query, prefix).Scan(&codigo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to find last participant code: %w", err)
	}
	return codigo, nil
}

func (r *PgxParticipantRepository) UpdateParticipant(ctx context.Context, participant domain.Participant) error {
	m := toModelParticipant(participant)
	query := `
        UPDATE participants
        SET nome = $1, email = $2, nascimento = $3, idade = $4, church_id = $5
        WHERE codigo = $6;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Nome,
		m.Email,
		m.Nascimento,
		m.Idade,
		m.ChurchID,
		m.Codigo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to execute update participant query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxParticipantRepository) SetConfirmacao(ctx context.Context, codigo string, confirmadoEm *time.Time) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE participants SET data_confirmacao = $1 WHERE codigo = $2;`,
		confirmadoEm, codigo,
	)
	if err != nil {
		return fmt.Errorf("failed to set payment confirmation: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxParticipantRepository) DeleteParticipant(ctx context.Context, codigo string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM participants WHERE codigo = $1;`, codigo)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
