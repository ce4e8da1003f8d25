package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portsrepo "github.com/IpitingaJA/church_event_app/internal/core/ports/repositories"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/core/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock UserReader ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReader) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// --- Test Suite ---
type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockTransactionRepository
	mockUserReader *MockUserReader
	service        portssvc.TransactionSvcFacade
	user           *domain.User
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.mockUserReader = new(MockUserReader)
	suite.service = services.NewTransactionService(suite.mockRepo, suite.mockUserReader)
	suite.user = &domain.User{UserID: uuid.NewString(), Nome: "Tesoureiro"}
}

func (suite *TransactionServiceTestSuite) validRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		IDUsuario: suite.user.UserID,
		Igreja:    "Igreja Central",
		Data:      "2026-03-15",
		Descricao: "Oferta do culto jovem",
		Tipo:      "entrada",
		Valor:     decimal.NewFromFloat(150.50),
	}
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockUserReader.On("FindUserByID", ctx, req.IDUsuario).Return(suite.user, nil).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Tipo == domain.TransactionEntrada && t.UsuarioID == req.IDUsuario && t.Valor.Equal(req.Valor)
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.TransactionEntrada, txn.Tipo)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NormalizesTipoCase() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Tipo = "SAIDA"

	suite.mockUserReader.On("FindUserByID", ctx, req.IDUsuario).Return(suite.user, nil).Once()
	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Tipo == domain.TransactionSaida
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.TransactionSaida, txn.Tipo)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidTipo() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Tipo = "transferencia"

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownUser() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockUserReader.On("FindUserByID", ctx, req.IDUsuario).
		Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "usuário inválido")
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_BuildsFilterAndReturnsTotal() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{
		Tipo:       "entrada",
		DataInicio: "2026-01-01",
		DataFim:    "2026-12-31",
		IDUsuario:  suite.user.UserID,
		Page:       2,
		Limit:      10,
	}

	stored := []domain.Transaction{
		{TransactionID: uuid.NewString(), Tipo: domain.TransactionEntrada},
	}

	suite.mockRepo.On("FindTransactions", ctx, mock.MatchedBy(func(f portsrepo.TransactionFilter) bool {
		return f.Tipo == "entrada" &&
			f.Page == 2 && f.Limit == 10 &&
			f.UsuarioID == suite.user.UserID &&
			f.DataInicio != nil && f.DataInicio.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			f.DataFim != nil && f.DataFim.Equal(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
	})).Return(stored, int64(21), nil).Once()

	txns, total, err := suite.service.ListTransactions(ctx, params)

	suite.Require().NoError(err)
	suite.Len(txns, 1)
	suite.Equal(int64(21), total)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_InvalidDateRange() {
	ctx := context.Background()
	params := dto.ListTransactionsParams{DataInicio: "31/12/2026", Page: 1, Limit: 10}

	txns, total, err := suite.service.ListTransactions(ctx, params)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txns)
	suite.Zero(total)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
