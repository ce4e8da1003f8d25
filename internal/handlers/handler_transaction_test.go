package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/IpitingaJA/church_event_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	mockService *MockTransactionService
	router      *gin.Engine
	authToken   string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockTransactionService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{Transaction: suite.mockService})

	token, err := utils.GenerateJWT(uuid.NewString(), "tesoureiro do catre", testJWTSecret, time.Hour, "church-event-app")
	suite.Require().NoError(err)
	suite.authToken = token
}

func (suite *TransactionHandlerTestSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", "Bearer "+suite.authToken)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestListTransactions_PaginationMetadata() {
	stored := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			UsuarioID:     uuid.NewString(),
			Igreja:        "Igreja Central",
			Data:          time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
			Descricao:     "Oferta",
			Tipo:          domain.TransactionEntrada,
			Valor:         decimal.NewFromFloat(150.50),
			UsuarioNome:   "Tesoureiro",
		},
	}

	suite.mockService.On("ListTransactions", mock.Anything, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Page == 2 && p.Limit == 10
	})).Return(stored, int64(21), nil).Once()

	w := suite.get("/api/transacoes?page=2&limit=10")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(3), resp.TotalPages)
	suite.Equal(2, resp.CurrentPage)
	suite.Equal(int64(21), resp.TotalItems)
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("15/03/2026", resp.Transactions[0].Data)
	suite.Equal("Tesoureiro", resp.Transactions[0].Usuario)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_DefaultsPageAndLimit() {
	suite.mockService.On("ListTransactions", mock.Anything, mock.MatchedBy(func(p dto.ListTransactionsParams) bool {
		return p.Page == 1 && p.Limit == 10
	})).Return([]domain.Transaction{}, int64(0), nil).Once()

	w := suite.get("/api/transacoes")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(0), resp.TotalPages)
	suite.Equal(1, resp.CurrentPage)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_DeletedUserShowsNA() {
	stored := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			UsuarioID:     uuid.NewString(),
			Igreja:        "Igreja Central",
			Data:          time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
			Descricao:     "Saída de caixa",
			Tipo:          domain.TransactionSaida,
			Valor:         decimal.NewFromInt(40),
		},
	}

	suite.mockService.On("ListTransactions", mock.Anything, mock.Anything).
		Return(stored, int64(1), nil).Once()

	w := suite.get("/api/transacoes")

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("N/A", resp.Transactions[0].Usuario)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_RequiresAuth() {
	req := httptest.NewRequest(http.MethodGet, "/api/transacoes", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
