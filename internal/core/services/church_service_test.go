package services_test

import (
	"context"
	"testing"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/core/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ChurchServiceTestSuite struct {
	suite.Suite
	mockRepo *MockChurchRepository
	service  portssvc.ChurchSvcFacade
}

func (suite *ChurchServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockChurchRepository)
	suite.service = services.NewChurchService(suite.mockRepo)
}

func (suite *ChurchServiceTestSuite) TestCreateChurch_Success() {
	ctx := context.Background()
	req := dto.CreateChurchRequest{Nome: "Igreja do Bairro Novo"}

	suite.mockRepo.On("SaveChurch", ctx, mock.MatchedBy(func(c domain.Church) bool {
		return c.Nome == req.Nome && c.ChurchID != ""
	})).Return(nil).Once()

	church, err := suite.service.CreateChurch(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(req.Nome, church.Nome)
	suite.NotEmpty(church.ChurchID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChurchServiceTestSuite) TestCreateChurch_MissingNome() {
	ctx := context.Background()

	church, err := suite.service.CreateChurch(ctx, dto.CreateChurchRequest{Nome: "   "})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "o campo nome é obrigatório")
	suite.Nil(church)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveChurch", mock.Anything, mock.Anything)
}

func (suite *ChurchServiceTestSuite) TestUpdateChurch_MissingNome() {
	ctx := context.Background()

	church, err := suite.service.UpdateChurch(ctx, uuid.NewString(), dto.UpdateChurchRequest{Nome: ""})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(church)
}

func (suite *ChurchServiceTestSuite) TestUpdateChurch_NotFound() {
	ctx := context.Background()
	churchID := uuid.NewString()

	suite.mockRepo.On("UpdateChurch", ctx, mock.Anything).Return(apperrors.ErrNotFound).Once()

	church, err := suite.service.UpdateChurch(ctx, churchID, dto.UpdateChurchRequest{Nome: "Igreja Renomeada"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(church)
}

func (suite *ChurchServiceTestSuite) TestListChurches_Success() {
	ctx := context.Background()
	stored := []domain.Church{
		{ChurchID: uuid.NewString(), Nome: "Igreja A"},
		{ChurchID: uuid.NewString(), Nome: "Igreja B"},
	}

	suite.mockRepo.On("FindChurches", ctx).Return(stored, nil).Once()

	churches, err := suite.service.ListChurches(ctx)

	suite.Require().NoError(err)
	suite.Len(churches, 2)
}

func TestChurchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ChurchServiceTestSuite))
}
