package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes inflows from outflows.
type TransactionType string

const (
	TransactionEntrada TransactionType = "entrada"
	TransactionSaida   TransactionType = "saida"
)

// IsValid reports whether the type is a known enum member.
func (t TransactionType) IsValid() bool {
	return t == TransactionEntrada || t == TransactionSaida
}

// Transaction is a financial movement recorded by a user. The church is
// stored as free text, not as a reference.
type Transaction struct {
	TransactionID string
	UsuarioID     string
	Igreja        string
	Data          time.Time
	Descricao     string
	Tipo          TransactionType
	Valor         decimal.Decimal

	// UsuarioNome is resolved by a read-time join.
	UsuarioNome string
}
