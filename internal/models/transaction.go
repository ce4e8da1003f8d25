package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the database row for a financial movement.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	UserID        string          `db:"user_id"`
	Igreja        string          `db:"igreja"`
	Data          time.Time       `db:"data"`
	Descricao     string          `db:"descricao"`
	Tipo          string          `db:"tipo"`
	Valor         decimal.Decimal `db:"valor"`

	UsuarioNome sql.NullString `db:"usuario_nome"`
}
