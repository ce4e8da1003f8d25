package models

import (
	"database/sql"
	"time"
)

// User is the database row for a staff member.
type User struct {
	UserID       string    `db:"user_id"`
	Nome         string    `db:"nome"`
	Cargo        string    `db:"cargo"`
	DistrictID   string    `db:"district_id"`
	ChurchID     string    `db:"church_id"`
	Nascimento   time.Time `db:"nascimento"`
	Email        string    `db:"email"`
	SenhaHash    string    `db:"senha_hash"`
	DataCadastro time.Time `db:"data_cadastro"`

	// Joined display names; NULL when the referenced row is gone.
	IgrejaNome   sql.NullString `db:"igreja_nome"`
	DistritoNome sql.NullString `db:"distrito_nome"`
}
