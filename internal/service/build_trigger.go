package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cargodeploy-backend/internal/database/models"
	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/logger"
)

const maxRejectBody = 1024

// EnvVariable is the wire shape of one environment variable inside env_variables
type EnvVariable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// BuildJob is the job-creation payload accepted by the build-execution service
type BuildJob struct {
	GitURL         string `json:"git_url"`
	ProjectID      string `json:"project_id"`
	RootFolder     string `json:"root_folder"`
	EnvVariables   string `json:"env_variables"`
	Name           string `json:"name"`
	BuildCommand   string `json:"build_command"`
	InstallCommand string `json:"install_command"`
	AccessToken    string `json:"access_token"`
	Branch         string `json:"branch"`
	DeploymentID   string `json:"deployment_id"`
	CommitSHA      string `json:"commit_sha"`
}

// NewBuildJob assembles the payload for one deployment of a project.
// The project slug is the execution namespace and the deployment id is the callback correlation key.
func NewBuildJob(project *models.Project, deployment *models.Deployment, envVars []models.EnvironmentVariable, accessToken string) (*BuildJob, error) {
	encoded, err := EncodeEnvVariables(envVars)
	if err != nil {
		return nil, err
	}
	return &BuildJob{
		GitURL:         project.GitHubRepoURL,
		ProjectID:      project.SlugIdentifier,
		RootFolder:     project.RootDir,
		EnvVariables:   encoded,
		Name:           project.Name,
		BuildCommand:   project.BuildCommand,
		InstallCommand: project.InstallCommand,
		AccessToken:    accessToken,
		Branch:         project.Branch,
		DeploymentID:   deployment.ID.String(),
		CommitSHA:      deployment.CommitID,
	}, nil
}

// EncodeEnvVariables serializes variables as a JSON array of {name,value}, e.g. [{"name":"FOO","value":"1"}]
func EncodeEnvVariables(envVars []models.EnvironmentVariable) (string, error) {
	list := make([]EnvVariable, 0, len(envVars))
	for _, ev := range envVars {
		list = append(list, EnvVariable{Name: ev.Key, Value: ev.Value})
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(list); err != nil {
		return "", fmt.Errorf("encode environment variables: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// BuildService submits jobs to the build-execution service over HTTP
type BuildService struct {
	baseURL    string
	httpClient *http.Client
}

// NewBuildService creates a build service client for baseURL
func NewBuildService(baseURL string, timeout time.Duration) *BuildService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &BuildService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Submit posts the job to {baseURL}/jobs/create. It performs no retries.
func (s *BuildService) Submit(ctx context.Context, job *BuildJob) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"deployment_id": job.DeploymentID,
		"project":       job.ProjectID,
		"branch":        job.Branch,
	})

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode build job: %w", err)
	}

	fullURL := s.baseURL + "/jobs/create"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(body))
	if err != nil {
		return apperrors.NewTransportError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Log token presence without exposing it
	tokenPreview := "none"
	if len(job.AccessToken) >= 12 {
		tokenPreview = job.AccessToken[:4] + "..." + job.AccessToken[len(job.AccessToken)-4:]
	} else if job.AccessToken != "" {
		tokenPreview = "***"
	}
	log.Debugf("Build job request: url=%s, access_token=%s", fullURL, tokenPreview)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Errorf("Build job request failed: %v", err)
		return apperrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxRejectBody))
		reason := strings.TrimSpace(string(raw))
		log.Warnf("Build job rejected: status=%d, body=%s", resp.StatusCode, reason)
		return apperrors.NewRejectedError(resp.StatusCode, reason)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxRejectBody))

	log.Infof("Build job accepted: status=%d", resp.StatusCode)
	return nil
}
