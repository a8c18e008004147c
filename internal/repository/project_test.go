//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"cargodeploy-backend/internal/database/models"
	"cargodeploy-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	factories     *testutils.FactorySet
	ctx           context.Context
	user          *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.user = suite.factories.User.Create()
	suite.Require().NoError(NewUserRepository(suite.baseTestSuite.DB).FirstOrCreate(suite.ctx, suite.user))
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ProjectRepositoryTestSuite) TestCreateWithEnvVars() {
	project := suite.factories.Project.WithUser(suite.user.ID)
	envVars := []models.EnvironmentVariable{{Key: "B", Value: "2"}, {Key: "A", Value: "1"}}

	err := suite.repo.Create(suite.ctx, project, envVars)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, project.ID)

	stored, err := suite.repo.ListEnvVars(suite.ctx, project.ID)
	suite.NoError(err)
	suite.Require().Len(stored, 2)
	// declared order is kept
	suite.Equal("B", stored[0].Key)
	suite.Equal("A", stored[1].Key)
}

func (suite *ProjectRepositoryTestSuite) TestCreateDuplicateEnvKeyRollsBack() {
	project := suite.factories.Project.WithUser(suite.user.ID)
	envVars := []models.EnvironmentVariable{{Key: "A", Value: "1"}, {Key: "A", Value: "2"}}

	err := suite.repo.Create(suite.ctx, project, envVars)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
	_, err = suite.repo.GetBySlug(suite.ctx, project.SlugIdentifier)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ProjectRepositoryTestSuite) TestCreateDuplicateSlug() {
	first := suite.factories.Project.WithUser(suite.user.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, first, nil))

	second := suite.factories.Project.WithSlug(first.SlugIdentifier)
	second.UserID = suite.user.ID
	err := suite.repo.Create(suite.ctx, second, nil)

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

func (suite *ProjectRepositoryTestSuite) TestGetByUserIDAndCount() {
	for i := 0; i < 3; i++ {
		suite.Require().NoError(suite.repo.Create(suite.ctx, suite.factories.Project.WithUser(suite.user.ID), nil))
	}

	projects, total, err := suite.repo.GetByUserID(suite.ctx, suite.user.ID, 2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(projects, 2)

	count, err := suite.repo.CountByUserID(suite.ctx, suite.user.ID)
	suite.NoError(err)
	suite.Equal(int64(3), count)

	count, err = suite.repo.CountByUserID(suite.ctx, uuid.New())
	suite.NoError(err)
	suite.Zero(count)
}

func (suite *ProjectRepositoryTestSuite) TestSetDeployed() {
	project := suite.factories.Project.WithUser(suite.user.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, project, nil))

	suite.NoError(suite.repo.SetDeployed(suite.ctx, project.ID, true))
	stored, err := suite.repo.GetByID(suite.ctx, project.ID)
	suite.NoError(err)
	suite.True(stored.IsDeployed)

	suite.NoError(suite.repo.SetDeployed(suite.ctx, project.ID, false))
	stored, err = suite.repo.GetByID(suite.ctx, project.ID)
	suite.NoError(err)
	suite.False(stored.IsDeployed)

	suite.ErrorIs(suite.repo.SetDeployed(suite.ctx, uuid.New(), true), gorm.ErrRecordNotFound)
}

func (suite *ProjectRepositoryTestSuite) TestDeleteCascade() {
	project := suite.factories.Project.WithUser(suite.user.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, project, []models.EnvironmentVariable{{Key: "A", Value: "1"}}))

	deployments := NewDeploymentRepository(suite.baseTestSuite.DB)
	deployment := suite.factories.Deployment.WithProject(project.ID, models.DeploymentStatusInProgress)
	suite.Require().NoError(deployments.Create(suite.ctx, deployment))
	suite.Require().NoError(NewLogRepository(suite.baseTestSuite.DB).Append(suite.ctx, deployment.ID, "building"))

	suite.NoError(suite.repo.DeleteCascade(suite.ctx, project.ID))

	_, err := suite.repo.GetByID(suite.ctx, project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = deployments.GetByID(suite.ctx, deployment.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = NewLogRepository(suite.baseTestSuite.DB).GetByDeploymentID(suite.ctx, deployment.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	envVars, err := suite.repo.ListEnvVars(suite.ctx, project.ID)
	suite.NoError(err)
	suite.Empty(envVars)

	suite.ErrorIs(suite.repo.DeleteCascade(suite.ctx, project.ID), gorm.ErrRecordNotFound)
}

func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
