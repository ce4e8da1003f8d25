package models

import (
	"database/sql"
	"time"
)

// Participant is the database row for an event registration.
type Participant struct {
	Codigo          string         `db:"codigo"`
	Nome            string         `db:"nome"`
	Email           string         `db:"email"`
	Nascimento      time.Time      `db:"nascimento"`
	Idade           int            `db:"idade"`
	ChurchID        string         `db:"church_id"`
	DataInscricao   time.Time      `db:"data_inscricao"`
	DataConfirmacao sql.NullTime   `db:"data_confirmacao"`
	UserID          sql.NullString `db:"user_id"`

	IgrejaNome sql.NullString `db:"igreja_nome"`
}
