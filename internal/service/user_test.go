package service_test

import (
	"context"
	"errors"
	"testing"

	"cargodeploy-backend/internal/database/models"
	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/mocks"
	"cargodeploy-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	mockUsers     *mocks.MockUserRepositoryInterface
	mockProjects  *mocks.MockProjectRepositoryInterface
	mockInspector *mocks.MockInstallationInspector
	userService   *service.UserService
	owner         service.Owner
	user          *models.User
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUsers = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockProjects = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockInspector = mocks.NewMockInstallationInspector(suite.ctrl)
	suite.userService = service.NewUserService(suite.mockUsers, suite.mockProjects, suite.mockInspector, validator.New(), 2)

	suite.owner = service.Owner{ExternalID: "gh|1001", Email: "dev@example.com"}
	suite.user = &models.User{ExternalID: "gh|1001", Email: "dev@example.com", QuotaLimit: 2}
	suite.user.ID = uuid.New()
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserServiceTestSuite) expectExistingUser() {
	suite.mockUsers.EXPECT().GetByExternalID(suite.ctx, "gh|1001").Return(suite.user, nil)
}

func (suite *UserServiceTestSuite) TestGetCurrentUser_Existing() {
	suite.expectExistingUser()
	suite.mockProjects.EXPECT().CountByUserID(suite.ctx, suite.user.ID).Return(int64(1), nil)

	resp, err := suite.userService.GetCurrentUser(suite.ctx, suite.owner)

	suite.NoError(err)
	suite.Equal(suite.user.ID, resp.ID)
	suite.Equal(2, resp.QuotaLimit)
	suite.Equal(int64(1), resp.ProjectCount)
	suite.Nil(resp.GitHubInstallationID)
}

func (suite *UserServiceTestSuite) TestGetCurrentUser_ProvisionsOnFirstSignIn() {
	suite.mockUsers.EXPECT().GetByExternalID(suite.ctx, "gh|1001").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUsers.EXPECT().FirstOrCreate(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			suite.Equal("gh|1001", u.ExternalID)
			suite.Equal("dev@example.com", u.Email)
			suite.Equal(2, u.QuotaLimit)
			u.ID = suite.user.ID
			return nil
		})
	suite.mockProjects.EXPECT().CountByUserID(suite.ctx, suite.user.ID).Return(int64(0), nil)

	resp, err := suite.userService.GetCurrentUser(suite.ctx, suite.owner)

	suite.NoError(err)
	suite.Equal(suite.user.ID, resp.ID)
	suite.Zero(resp.ProjectCount)
}

func (suite *UserServiceTestSuite) TestGetCurrentUser_Errors() {
	suite.Run("missing identity", func() {
		_, err := suite.userService.GetCurrentUser(suite.ctx, service.Owner{})
		suite.True(apperrors.IsAuthentication(err))
	})

	suite.Run("repository failure", func() {
		suite.mockUsers.EXPECT().GetByExternalID(suite.ctx, "gh|1001").Return(nil, errors.New("connection reset"))

		_, err := suite.userService.GetCurrentUser(suite.ctx, suite.owner)

		suite.Error(err)
		suite.False(apperrors.IsNotFound(err))
	})
}

func (suite *UserServiceTestSuite) TestUpdateCurrentUser() {
	name := "Ada"
	suite.expectExistingUser()
	suite.mockUsers.EXPECT().Update(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			suite.Equal("Ada", u.Name)
			suite.Equal("dev@example.com", u.Email)
			return nil
		})
	suite.mockProjects.EXPECT().CountByUserID(suite.ctx, suite.user.ID).Return(int64(0), nil)

	resp, err := suite.userService.UpdateCurrentUser(suite.ctx, suite.owner, &service.UpdateUserRequest{Name: &name})

	suite.NoError(err)
	suite.Equal("Ada", resp.Name)
}

func (suite *UserServiceTestSuite) TestUpdateCurrentUser_InvalidEmail() {
	email := "not-an-email"

	_, err := suite.userService.UpdateCurrentUser(suite.ctx, suite.owner, &service.UpdateUserRequest{Email: &email})

	suite.True(apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestLinkInstallation() {
	suite.expectExistingUser()
	suite.mockInspector.EXPECT().ListRepositories(suite.ctx, int64(41000001)).
		Return([]service.InstallationRepository{{FullName: "acme/site"}}, nil)
	suite.mockUsers.EXPECT().Update(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			suite.Require().NotNil(u.GitHubInstallationID)
			suite.Equal(int64(41000001), *u.GitHubInstallationID)
			return nil
		})
	suite.mockProjects.EXPECT().CountByUserID(suite.ctx, suite.user.ID).Return(int64(0), nil)

	resp, err := suite.userService.LinkInstallation(suite.ctx, suite.owner, &service.LinkInstallationRequest{InstallationID: 41000001})

	suite.NoError(err)
	suite.Require().NotNil(resp.GitHubInstallationID)
	suite.Equal(int64(41000001), *resp.GitHubInstallationID)
}

func (suite *UserServiceTestSuite) TestLinkInstallation_Unverifiable() {
	suite.expectExistingUser()
	suite.mockInspector.EXPECT().ListRepositories(suite.ctx, int64(99)).Return(nil, errors.New("404 Not Found"))

	_, err := suite.userService.LinkInstallation(suite.ctx, suite.owner, &service.LinkInstallationRequest{InstallationID: 99})

	suite.True(apperrors.IsValidation(err))
	suite.Nil(suite.user.GitHubInstallationID)
}

func (suite *UserServiceTestSuite) TestLinkInstallation_InvalidID() {
	_, err := suite.userService.LinkInstallation(suite.ctx, suite.owner, &service.LinkInstallationRequest{})

	suite.True(apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestListRepositories() {
	installationID := int64(41000001)
	suite.user.GitHubInstallationID = &installationID
	suite.expectExistingUser()
	suite.mockInspector.EXPECT().ListRepositories(suite.ctx, installationID).
		Return([]service.InstallationRepository{{FullName: "acme/site"}, {FullName: "acme/api", Private: true}}, nil)

	resp, err := suite.userService.ListRepositories(suite.ctx, suite.owner)

	suite.NoError(err)
	suite.Equal(installationID, resp.InstallationID)
	suite.Len(resp.Repositories, 2)
}

func (suite *UserServiceTestSuite) TestListRepositories_NoInstallation() {
	suite.expectExistingUser()

	_, err := suite.userService.ListRepositories(suite.ctx, suite.owner)

	suite.ErrorIs(err, apperrors.ErrInstallationMissing)
}

func (suite *UserServiceTestSuite) TestGitHubAppNotConfigured() {
	svc := service.NewUserService(suite.mockUsers, suite.mockProjects, nil, validator.New(), 2)

	_, err := svc.ListRepositories(suite.ctx, suite.owner)
	suite.ErrorIs(err, apperrors.ErrGitHubAppNotConfigured)

	_, err = svc.LinkInstallation(suite.ctx, suite.owner, &service.LinkInstallationRequest{InstallationID: 1})
	suite.ErrorIs(err, apperrors.ErrGitHubAppNotConfigured)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
