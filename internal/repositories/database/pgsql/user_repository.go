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

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// Helper to convert domain.User to models.User
func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Nome:         d.Nome,
		Cargo:        string(d.Cargo),
		DistrictID:   d.DistritoID,
		ChurchID:     d.IgrejaID,
		Nascimento:   d.Nascimento,
		Email:        d.Email,
		SenhaHash:    d.SenhaHash,
		DataCadastro: d.DataCadastro,
	}
}

// Helper to convert models.User to domain.User
func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Nome:         m.Nome,
		Cargo:        domain.Role(m.Cargo),
		DistritoID:   m.DistrictID,
		IgrejaID:     m.ChurchID,
		Nascimento:   m.Nascimento,
		Email:        m.Email,
		SenhaHash:    m.SenhaHash,
		DataCadastro: m.DataCadastro,
		IgrejaNome:   m.IgrejaNome.String,
		DistritoNome: m.DistritoNome.String,
	}
}

const userSelectColumns = `
	u.user_id, u.nome, u.cargo, u.district_id, u.church_id, u.nascimento,
	u.email, u.senha_hash, u.data_cadastro,
	c.nome AS igreja_nome, d.nome AS distrito_nome`

const userSelectFrom = `
	FROM users u
	LEFT JOIN churches c ON c.church_id = u.church_id
	LEFT JOIN districts d ON d.district_id = u.district_id`

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Nome,
		&m.Cargo,
		&m.DistrictID,
		&m.ChurchID,
		&m.Nascimento,
		&m.Email,
		&m.SenhaHash,
		&m.DataCadastro,
		&m.IgrejaNome,
		&m.DistritoNome,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
        INSERT INTO users (user_id, nome, cargo, district_id, church_id, nascimento, email, senha_hash, data_cadastro)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		m.UserID,
		m.Nome,
		m.Cargo,
		m.DistrictID,
		m.ChurchID,
		m.Nascimento,
		m.Email,
		m.SenhaHash,
		m.DataCadastro,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT` + userSelectColumns + userSelectFrom + `
	WHERE u.user_id = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	d := toDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT` + userSelectColumns + userSelectFrom + `
	WHERE u.email = $1;`
	m, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	d := toDomainUser(m)
	return &d, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	query := `SELECT` + userSelectColumns + userSelectFrom + `
	ORDER BY u.data_cadastro DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, toDomainUser(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := toModelUser(user)
	query := `
        UPDATE users
        SET nome = $1, cargo = $2, district_id = $3, church_id = $4,
            nascimento = $5, email = $6, senha_hash = $7
        WHERE user_id = $8;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.Nome,
		m.Cargo,
		m.DistrictID,
		m.ChurchID,
		m.Nascimento,
		m.Email,
		m.SenhaHash,
		m.UserID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
