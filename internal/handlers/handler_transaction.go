package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/IpitingaJA/church_event_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to financial transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transacoes")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Tags transacoes
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/transacoes [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Todos os campos são obrigatórios"})
		return
	}

	transaction, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Erro ao criar transação")
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", transaction.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(transaction))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions with optional filters and pagination metadata.
// @Tags transacoes
// @Produce json
// @Param tipo query string false "entrada or saida"
// @Param data_inicio query string false "Start date (yyyy-MM-dd)"
// @Param data_fim query string false "End date (yyyy-MM-dd)"
// @Param id_usuario query string false "Owning user filter"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.ListTransactionsResponse
// @Security BearerAuth
// @Router /api/transacoes [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Parâmetros inválidos"})
		return
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	transactions, total, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Erro ao listar transações")
		return
	}

	responses := make([]dto.TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = dto.ToTransactionResponse(&transactions[i])
	}

	totalPages := total / int64(params.Limit)
	if total%int64(params.Limit) != 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: responses,
		TotalPages:   totalPages,
		CurrentPage:  params.Page,
		TotalItems:   total,
	})
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transacoes
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/transacoes/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transaction, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Erro ao buscar transação")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Tags transacoes
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/transacoes/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Corpo da requisição inválido"})
		return
	}

	transaction, err := h.transactionService.UpdateTransaction(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, logger, err, "Erro ao atualizar transação")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(transaction))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transacoes
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/transacoes/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, logger, err, "Erro ao excluir transação")
		return
	}

	logger.Info("Transaction deleted", slog.String("transaction_id", c.Param("id")))
	c.JSON(http.StatusOK, gin.H{"message": "Transação excluída com sucesso"})
}
