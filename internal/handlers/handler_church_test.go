package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/IpitingaJA/church_event_app/internal/handlers"
	"github.com/IpitingaJA/church_event_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret"

// --- Mock ChurchService ---
type MockChurchService struct {
	mock.Mock
}

func (m *MockChurchService) CreateChurch(ctx context.Context, req dto.CreateChurchRequest) (*domain.Church, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Church), args.Error(1)
}

func (m *MockChurchService) GetChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	args := m.Called(ctx, churchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Church), args.Error(1)
}

func (m *MockChurchService) ListChurches(ctx context.Context) ([]domain.Church, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Church), args.Error(1)
}

func (m *MockChurchService) UpdateChurch(ctx context.Context, churchID string, req dto.UpdateChurchRequest) (*domain.Church, error) {
	args := m.Called(ctx, churchID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Church), args.Error(1)
}

func (m *MockChurchService) DeleteChurch(ctx context.Context, churchID string) error {
	args := m.Called(ctx, churchID)
	return args.Error(0)
}

var _ portssvc.ChurchSvcFacade = (*MockChurchService)(nil)

// newTestRouter registers the full route surface against the given services.
// IsProduction keeps swagger out of the test router.
func newTestRouter(services *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}
	handlers.RegisterRoutes(r, cfg, services)
	return r
}

// --- Test Suite ---
type ChurchHandlerTestSuite struct {
	suite.Suite
	mockService *MockChurchService
	router      *gin.Engine
}

func (suite *ChurchHandlerTestSuite) SetupTest() {
	suite.mockService = new(MockChurchService)
	suite.router = newTestRouter(&portssvc.ServiceContainer{Church: suite.mockService})
}

// --- Test Cases ---

func (suite *ChurchHandlerTestSuite) TestCreateChurch_Success() {
	church := &domain.Church{ChurchID: uuid.NewString(), Nome: "Igreja Central"}
	suite.mockService.On("CreateChurch", mock.Anything, dto.CreateChurchRequest{Nome: "Igreja Central"}).
		Return(church, nil).Once()

	body := bytes.NewBufferString(`{"nome": "Igreja Central"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/igrejas", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ChurchResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(church.ChurchID, resp.ID)
	suite.Equal("Igreja Central", resp.Nome)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ChurchHandlerTestSuite) TestCreateChurch_EmptyBodyReturnsLegacyMessage() {
	req := httptest.NewRequest(http.MethodPost, "/api/igrejas", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("O campo nome é obrigatório", resp["error"])
	suite.mockService.AssertNotCalled(suite.T(), "CreateChurch", mock.Anything, mock.Anything)
}

func (suite *ChurchHandlerTestSuite) TestListChurches_PublicRoute() {
	churches := []domain.Church{
		{ChurchID: uuid.NewString(), Nome: "Igreja A"},
		{ChurchID: uuid.NewString(), Nome: "Igreja B"},
	}
	suite.mockService.On("ListChurches", mock.Anything).Return(churches, nil).Once()

	// No Authorization header: churches stay public for the signup form.
	req := httptest.NewRequest(http.MethodGet, "/api/igrejas", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.ChurchResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
}

func (suite *ChurchHandlerTestSuite) TestGetChurch_NotFound() {
	churchID := uuid.NewString()
	suite.mockService.On("GetChurchByID", mock.Anything, churchID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/igrejas/"+churchID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestChurchHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ChurchHandlerTestSuite))
}
