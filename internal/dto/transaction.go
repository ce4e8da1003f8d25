package dto

import (
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	"github.com/IpitingaJA/church_event_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the payload for creating a transaction.
type CreateTransactionRequest struct {
	IDUsuario string          `json:"id_usuario" binding:"required"`
	Igreja    string          `json:"igreja" binding:"required"`
	Data      string          `json:"data" binding:"required"`
	Descricao string          `json:"descricao" binding:"required"`
	Tipo      string          `json:"tipo" binding:"required"`
	Valor     decimal.Decimal `json:"valor" binding:"required"`
}

// UpdateTransactionRequest defines the data allowed for updating a
// transaction. Pointers differentiate omitted fields from zero values.
type UpdateTransactionRequest struct {
	IDUsuario *string          `json:"id_usuario"`
	Igreja    *string          `json:"igreja"`
	Data      *string          `json:"data"`
	Descricao *string          `json:"descricao"`
	Tipo      *string          `json:"tipo"`
	Valor     *decimal.Decimal `json:"valor"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Tipo       string `form:"tipo"`
	DataInicio string `form:"data_inicio"`
	DataFim    string `form:"data_fim"`
	IDUsuario  string `form:"id_usuario"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
}

// TransactionResponse is the outward projection of a transaction. Dates are
// rendered dd/MM/yyyy like the legacy API did.
type TransactionResponse struct {
	ID        string          `json:"_id"`
	IDUsuario string          `json:"id_usuario"`
	Usuario   string          `json:"usuario"`
	Igreja    string          `json:"igreja"`
	Data      string          `json:"data"`
	Descricao string          `json:"descricao"`
	Tipo      string          `json:"tipo"`
	Valor     decimal.Decimal `json:"valor"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	usuario := t.UsuarioNome
	if usuario == "" {
		usuario = "N/A"
	}
	return TransactionResponse{
		ID:        t.TransactionID,
		IDUsuario: t.UsuarioID,
		Usuario:   usuario,
		Igreja:    t.Igreja,
		Data:      utils.FormatDate(t.Data),
		Descricao: t.Descricao,
		Tipo:      string(t.Tipo),
		Valor:     t.Valor,
	}
}

// ListTransactionsResponse wraps a page of transactions with count metadata.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalPages   int64                 `json:"totalPages"`
	CurrentPage  int                   `json:"currentPage"`
	TotalItems   int64                 `json:"totalItems"`
}
