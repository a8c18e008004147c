package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cargodeploy-backend/internal/api/handlers"
	"cargodeploy-backend/internal/database/models"
	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/mocks"
	"cargodeploy-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testUserID = "gh|1001"

// authenticated stands in for the auth middleware
func authenticated(c *gin.Context) {
	c.Set("user_id", testUserID)
	c.Set("email", "dev@example.com")
	c.Next()
}

var testOwner = service.Owner{ExternalID: testUserID, Email: "dev@example.com"}

// ProjectHandlerTestSuite defines the test suite for ProjectHandler
type ProjectHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProjectServiceInterface
	handler     *handlers.ProjectHandler
	router      *gin.Engine
}

// SetupTest sets up the test suite
func (suite *ProjectHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.handler = handlers.NewProjectHandler(suite.mockService)
	suite.router = gin.New()
	suite.setupRoutes()
}

// TearDownTest cleans up after each test
func (suite *ProjectHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectHandlerTestSuite) setupRoutes() {
	suite.router.GET("/anonymous/projects", suite.handler.ListProjects)

	v1 := suite.router.Group("/", authenticated)
	v1.POST("/projects", suite.handler.CreateProject)
	v1.GET("/projects", suite.handler.ListProjects)
	v1.GET("/projects/slug-availability", suite.handler.CheckSlugAvailability)
	v1.GET("/projects/:id", suite.handler.GetProject)
	v1.DELETE("/projects/:id", suite.handler.DeleteProject)
	v1.POST("/projects/:id/deployments", suite.handler.Redeploy)
	v1.GET("/projects/:id/deployments", suite.handler.ListDeployments)
}

func (suite *ProjectHandlerTestSuite) do(method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProjectHandlerTestSuite) TestCreateProject() {
	suite.T().Run("Invalid JSON", func(t *testing.T) {
		w := suite.do(http.MethodPost, "/projects", []byte("invalid json"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "error")
	})

	suite.T().Run("Created", func(t *testing.T) {
		resp := &service.CreateProjectResponse{
			Project:    service.ProjectResponse{ID: uuid.New(), SlugIdentifier: "my-app"},
			Deployment: service.DeploymentResponse{ID: uuid.New(), Status: models.DeploymentStatusInProgress},
		}
		suite.mockService.EXPECT().
			CreateProject(gomock.Any(), testOwner, gomock.Any()).
			DoAndReturn(func(_ interface{}, _ service.Owner, req *service.CreateProjectRequest) (*service.CreateProjectResponse, error) {
				assert.Equal(t, "my-app", req.SlugIdentifier)
				assert.Len(t, req.EnvVars, 1)
				return resp, nil
			})

		body, _ := json.Marshal(map[string]interface{}{
			"name":            "My App",
			"slug_identifier": "my-app",
			"github_repo_url": "https://github.com/acme/my-app",
			"env_vars":        []map[string]string{{"key": "FOO", "value": "1"}},
			"commit":          map[string]string{"commit_id": "abc123"},
			"build_command":   "npm run build",
			"install_command": "npm ci",
			"is_private":      false,
			"root_dir":        "./",
			"branch":          "main",
		})
		w := suite.do(http.MethodPost, "/projects", body)

		require.Equal(t, http.StatusCreated, w.Code)
		var got service.CreateProjectResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, resp.Deployment.ID, got.Deployment.ID)
	})

	suite.T().Run("Error mapping", func(t *testing.T) {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{"quota", apperrors.ErrQuotaExceeded, http.StatusBadRequest},
			{"validation", apperrors.NewValidationError("slug_identifier", "is invalid"), http.StatusBadRequest},
			{"slug taken", apperrors.ErrSlugTaken, http.StatusConflict},
			{"trigger rejected", apperrors.NewRejectedError(422, "bad repo"), http.StatusBadGateway},
			{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				suite.mockService.EXPECT().CreateProject(gomock.Any(), testOwner, gomock.Any()).Return(nil, tc.err)

				w := suite.do(http.MethodPost, "/projects", []byte(`{"name":"x"}`))

				assert.Equal(t, tc.status, w.Code)
				if tc.status == http.StatusInternalServerError {
					assert.Contains(t, w.Body.String(), "Internal server error")
					assert.NotContains(t, w.Body.String(), "connection reset")
				}
			})
		}
	})
}

func (suite *ProjectHandlerTestSuite) TestListProjects() {
	suite.T().Run("Unauthenticated", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/anonymous/projects", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	suite.T().Run("Pagination forwarded", func(t *testing.T) {
		suite.mockService.EXPECT().ListProjects(gomock.Any(), testOwner, 2, 5).
			Return(&service.ProjectListResponse{Page: 2, PageSize: 5}, nil)

		w := suite.do(http.MethodGet, "/projects?page=2&page_size=5", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	suite.T().Run("Bad pagination falls back to defaults", func(t *testing.T) {
		suite.mockService.EXPECT().ListProjects(gomock.Any(), testOwner, 1, 20).
			Return(&service.ProjectListResponse{Page: 1, PageSize: 20}, nil)

		w := suite.do(http.MethodGet, "/projects?page=zero&page_size=-3", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func (suite *ProjectHandlerTestSuite) TestGetProject() {
	suite.T().Run("Invalid UUID", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/projects/invalid-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid project ID")
	})

	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetProject(gomock.Any(), testOwner, id).Return(nil, apperrors.ErrProjectNotFound)

		w := suite.do(http.MethodGet, "/projects/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	suite.T().Run("Other user's project", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetProject(gomock.Any(), testOwner, id).Return(nil, apperrors.ErrProjectAccessDenied)

		w := suite.do(http.MethodGet, "/projects/"+id.String(), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	suite.T().Run("Found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetProject(gomock.Any(), testOwner, id).
			Return(&service.ProjectResponse{ID: id, SlugIdentifier: "my-app"}, nil)

		w := suite.do(http.MethodGet, "/projects/"+id.String(), nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "my-app")
	})
}

func (suite *ProjectHandlerTestSuite) TestDeleteProject() {
	id := uuid.New()
	suite.mockService.EXPECT().DeleteProject(gomock.Any(), testOwner, id).Return(nil)

	w := suite.do(http.MethodDelete, "/projects/"+id.String(), nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *ProjectHandlerTestSuite) TestCheckSlugAvailability() {
	suite.T().Run("Missing slug", func(t *testing.T) {
		w := suite.do(http.MethodGet, "/projects/slug-availability", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	suite.T().Run("Available", func(t *testing.T) {
		suite.mockService.EXPECT().CheckSlugAvailability(gomock.Any(), "fresh-slug").Return(true, nil)

		w := suite.do(http.MethodGet, "/projects/slug-availability?slug=fresh-slug", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["available"])
		assert.Equal(t, "fresh-slug", body["slug"])
	})
}

func (suite *ProjectHandlerTestSuite) TestRedeploy() {
	id := uuid.New()
	path := "/projects/" + id.String() + "/deployments"

	suite.T().Run("Started without body", func(t *testing.T) {
		suite.mockService.EXPECT().Redeploy(gomock.Any(), testOwner, id, models.CommitMeta{}).
			Return(&service.DeploymentResponse{ID: uuid.New(), Status: models.DeploymentStatusInProgress}, nil)

		w := suite.do(http.MethodPost, path, nil)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	suite.T().Run("Queued", func(t *testing.T) {
		suite.mockService.EXPECT().Redeploy(gomock.Any(), testOwner, id, models.CommitMeta{CommitID: "def456"}).
			Return(&service.DeploymentResponse{ID: uuid.New(), Status: models.DeploymentStatusPending}, nil)

		w := suite.do(http.MethodPost, path, []byte(`{"commit_id":"def456"}`))
		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	suite.T().Run("Trigger failed keeps the failed deployment in the body", func(t *testing.T) {
		failed := &service.DeploymentResponse{ID: uuid.New(), Status: models.DeploymentStatusFailed}
		suite.mockService.EXPECT().Redeploy(gomock.Any(), testOwner, id, gomock.Any()).
			Return(failed, apperrors.NewTransportError(errors.New("dial tcp: refused")))

		w := suite.do(http.MethodPost, path, nil)
		require.Equal(t, http.StatusBadGateway, w.Code)
		var body struct {
			Error      string                     `json:"error"`
			Deployment service.DeploymentResponse `json:"deployment"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, failed.ID, body.Deployment.ID)
		assert.Equal(t, models.DeploymentStatusFailed, body.Deployment.Status)
	})

	suite.T().Run("Malformed body", func(t *testing.T) {
		w := suite.do(http.MethodPost, path, []byte("{"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (suite *ProjectHandlerTestSuite) TestListDeployments() {
	id := uuid.New()
	suite.mockService.EXPECT().ListDeployments(gomock.Any(), testOwner, id, 1, 20).
		Return(&service.DeploymentListResponse{Page: 1, PageSize: 20}, nil)

	w := suite.do(http.MethodGet, "/projects/"+id.String()+"/deployments", nil)
	suite.Equal(http.StatusOK, w.Code)
}

// TestProjectHandlerTestSuite runs the test suite
func TestProjectHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectHandlerTestSuite))
}
