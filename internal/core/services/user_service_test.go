package services_test

import (
	"context"
	"testing"

	"github.com/IpitingaJA/church_event_app/internal/apperrors"
	"github.com/IpitingaJA/church_event_app/internal/core/domain"
	portssvc "github.com/IpitingaJA/church_event_app/internal/core/ports/services"
	"github.com/IpitingaJA/church_event_app/internal/core/services"
	"github.com/IpitingaJA/church_event_app/internal/dto"
	"github.com/IpitingaJA/church_event_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	MockUserReader
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) validRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Nome:       "Ana Souza",
		Cargo:      string(domain.RoleAnciao),
		IDDistrito: uuid.NewString(),
		IDIgreja:   uuid.NewString(),
		Nascimento: "1985-07-20",
		Email:      "ana@example.com",
		Senha:      "senha-forte",
	}
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	req := suite.validRequest()

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.SenhaHash != req.Senha &&
			utils.CheckPasswordHash(req.Senha, u.SenhaHash)
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.Equal(domain.RoleAnciao, user.Cargo)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_InvalidCargo() {
	ctx := context.Background()
	req := suite.validRequest()
	req.Cargo = "secretário"

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(user)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := suite.validRequest()
	existing := &domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(existing, nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestUpdateUser_RejectsInvalidCargo() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &domain.User{UserID: userID, Cargo: domain.RoleAnciao}
	invalido := "pastor distrital"

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Cargo: &invalido})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(user)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_RereadsJoinedNames() {
	ctx := context.Background()
	userID := uuid.NewString()
	novaIgreja := uuid.NewString()
	stored := &domain.User{UserID: userID, Cargo: domain.RoleAnciao, IgrejaNome: "Igreja Antiga"}
	updated := &domain.User{UserID: userID, Cargo: domain.RoleAnciao, IgrejaID: novaIgreja, IgrejaNome: "Igreja Nova"}

	suite.mockRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.IgrejaID == novaIgreja
	})).Return(nil).Once()
	suite.mockRepo.On("FindUserByID", ctx, userID).Return(updated, nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{IDIgreja: &novaIgreja})

	suite.Require().NoError(err)
	suite.Equal("Igreja Nova", user.IgrejaNome)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("DeleteUser", ctx, userID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteUser(ctx, userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
