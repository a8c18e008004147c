package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"cargodeploy-backend/internal/database/models"
	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// memStore holds projects, users, deployments and logs in memory and enforces the
// same rules as the Postgres schema: one IN_PROGRESS deployment per project and
// compare-and-set status updates.
type memStore struct {
	mu          sync.Mutex
	clock       time.Time
	users       map[uuid.UUID]*models.User
	projects    map[uuid.UUID]*models.Project
	envVars     map[uuid.UUID][]models.EnvironmentVariable
	deployments map[uuid.UUID]*models.Deployment
	logs        map[uuid.UUID]*models.Log
}

func newMemStore() *memStore {
	return &memStore{
		clock:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:       make(map[uuid.UUID]*models.User),
		projects:    make(map[uuid.UUID]*models.Project),
		envVars:     make(map[uuid.UUID][]models.EnvironmentVariable),
		deployments: make(map[uuid.UUID]*models.Deployment),
		logs:        make(map[uuid.UUID]*models.Log),
	}
}

// tick advances the store clock so creation order is strict. Caller holds mu.
func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

func (s *memStore) addUser(installationID *int64) *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &models.User{ExternalID: uuid.NewString(), QuotaLimit: 3, GitHubInstallationID: installationID}
	u.ID = uuid.New()
	s.users[u.ID] = u
	return u
}

func (s *memStore) addProject(owner *models.User, private bool, envVars ...models.EnvironmentVariable) *models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &models.Project{
		UserID:         owner.ID,
		Name:           "My App",
		SlugIdentifier: "my-app-" + uuid.NewString()[:8],
		GitHubRepoURL:  "https://github.com/acme/my-app",
		Branch:         "main",
		RootDir:        "./",
		BuildCommand:   "npm run build",
		InstallCommand: "npm install",
		IsPrivate:      private,
	}
	p.ID = uuid.New()
	p.CreatedAt = s.tick()
	s.projects[p.ID] = p
	for i := range envVars {
		envVars[i].ProjectID = p.ID
		envVars[i].Position = i
	}
	s.envVars[p.ID] = envVars
	return p
}

// addDeployment seeds a deployment directly, bypassing admission
func (s *memStore) addDeployment(projectID uuid.UUID, status models.DeploymentStatus) *models.Deployment {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := &models.Deployment{ProjectID: projectID, Status: status}
	d.ID = uuid.New()
	d.CreatedAt = s.tick()
	d.UpdatedAt = d.CreatedAt
	s.deployments[d.ID] = d
	return d
}

func (s *memStore) deployment(id uuid.UUID) models.Deployment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.deployments[id]
}

func (s *memStore) project(id uuid.UUID) models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.projects[id]
}

// byStatus returns the project's deployments in a status, oldest first
func (s *memStore) byStatus(projectID uuid.UUID, status models.DeploymentStatus) []models.Deployment {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Deployment
	for _, d := range s.deployments {
		if d.ProjectID == projectID && d.Status == status {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

type fakeUsers struct{ *memStore }

func (f fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f fakeUsers) GetByExternalID(_ context.Context, externalID string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ExternalID == externalID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeUsers) FirstOrCreate(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ExternalID == user.ExternalID {
			*user = *u
			return nil
		}
	}
	user.ID = uuid.New()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f fakeUsers) Update(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

type fakeProjects struct{ *memStore }

func (f fakeProjects) Create(_ context.Context, project *models.Project, envVars []models.EnvironmentVariable) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p.SlugIdentifier == project.SlugIdentifier {
			return gorm.ErrDuplicatedKey
		}
	}
	project.ID = uuid.New()
	project.CreatedAt = f.tick()
	cp := *project
	f.projects[project.ID] = &cp
	for i := range envVars {
		envVars[i].ProjectID = project.ID
		envVars[i].Position = i
	}
	f.envVars[project.ID] = append([]models.EnvironmentVariable(nil), envVars...)
	return nil
}

func (f fakeProjects) GetByID(_ context.Context, id uuid.UUID) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f fakeProjects) GetBySlug(_ context.Context, slug string) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.projects {
		if p.SlugIdentifier == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeProjects) GetByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]models.Project, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Project
	for _, p := range f.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (f fakeProjects) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, p := range f.projects {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (f fakeProjects) SetDeployed(_ context.Context, id uuid.UUID, deployed bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.projects[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.IsDeployed = deployed
	return nil
}

func (f fakeProjects) ListEnvVars(_ context.Context, projectID uuid.UUID) ([]models.EnvironmentVariable, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.EnvironmentVariable(nil), f.envVars[projectID]...), nil
}

func (f fakeProjects) DeleteCascade(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.projects[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for did, d := range f.deployments {
		if d.ProjectID == id {
			delete(f.logs, did)
			delete(f.deployments, did)
		}
	}
	delete(f.envVars, id)
	delete(f.projects, id)
	return nil
}

type fakeDeployments struct{ *memStore }

// inFlight reports whether another deployment of the project is IN_PROGRESS. Caller holds mu.
func (f fakeDeployments) inFlight(projectID, except uuid.UUID) bool {
	for _, d := range f.deployments {
		if d.ProjectID == projectID && d.ID != except && d.Status == models.DeploymentStatusInProgress {
			return true
		}
	}
	return false
}

func (f fakeDeployments) Create(_ context.Context, deployment *models.Deployment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if deployment.Status == "" {
		deployment.Status = models.DeploymentStatusPending
	}
	if deployment.Status == models.DeploymentStatusInProgress && f.inFlight(deployment.ProjectID, uuid.Nil) {
		return apperrors.ErrDeploymentInFlight
	}
	deployment.ID = uuid.New()
	deployment.CreatedAt = f.tick()
	deployment.UpdatedAt = deployment.CreatedAt
	cp := *deployment
	f.deployments[deployment.ID] = &cp
	return nil
}

func (f fakeDeployments) GetByID(_ context.Context, id uuid.UUID) (*models.Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.deployments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *d
	return &cp, nil
}

func (f fakeDeployments) SetStatus(_ context.Context, id uuid.UUID, status models.DeploymentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.deployments[id]
	if !ok {
		return apperrors.ErrDeploymentNotFound
	}
	if !d.Status.CanTransitionTo(status) {
		return apperrors.NewInvalidTransitionError(string(d.Status), string(status))
	}
	if status == models.DeploymentStatusInProgress && f.inFlight(d.ProjectID, d.ID) {
		return apperrors.ErrDeploymentInFlight
	}
	d.Status = status
	d.UpdatedAt = f.tick()
	return nil
}

func (f fakeDeployments) first(projectID uuid.UUID, status models.DeploymentStatus) *models.Deployment {
	var found *models.Deployment
	for _, d := range f.deployments {
		if d.ProjectID != projectID || d.Status != status {
			continue
		}
		if found == nil || d.CreatedAt.Before(found.CreatedAt) {
			found = d
		}
	}
	if found == nil {
		return nil
	}
	cp := *found
	return &cp
}

func (f fakeDeployments) FindOldestPending(_ context.Context, projectID uuid.UUID) (*models.Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.first(projectID, models.DeploymentStatusPending), nil
}

func (f fakeDeployments) FindInProgress(_ context.Context, projectID uuid.UUID) (*models.Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.first(projectID, models.DeploymentStatusInProgress), nil
}

func (f fakeDeployments) CountPending(_ context.Context, projectID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, d := range f.deployments {
		if d.ProjectID == projectID && d.Status == models.DeploymentStatusPending {
			n++
		}
	}
	return n, nil
}

func (f fakeDeployments) GetByProjectID(_ context.Context, projectID uuid.UUID, limit, offset int) ([]models.Deployment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Deployment
	for _, d := range f.deployments {
		if d.ProjectID == projectID {
			out = append(out, *d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	total := int64(len(out))
	if offset >= len(out) {
		return nil, total, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, total, nil
}

func (f fakeDeployments) Touch(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.deployments[id]; ok && d.Status == models.DeploymentStatusInProgress {
		d.UpdatedAt = f.tick()
	}
	return nil
}

func (f fakeDeployments) FindStaleInProgress(_ context.Context, updatedBefore time.Time) ([]models.Deployment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Deployment
	for _, d := range f.deployments {
		if d.Status == models.DeploymentStatusInProgress && d.UpdatedAt.Before(updatedBefore) {
			out = append(out, *d)
		}
	}
	return out, nil
}

// recordingTrigger records submitted jobs. fail decides the outcome per job.
type recordingTrigger struct {
	mu   sync.Mutex
	jobs []service.BuildJob
	fail func(job *service.BuildJob) error
}

func (t *recordingTrigger) Submit(_ context.Context, job *service.BuildJob) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.jobs = append(t.jobs, *job)
	if t.fail != nil {
		return t.fail(job)
	}
	return nil
}

func (t *recordingTrigger) submitted() []service.BuildJob {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]service.BuildJob(nil), t.jobs...)
}

// recordingSink records status notifications and appended log lines
type recordingSink struct {
	mu       sync.Mutex
	statuses map[uuid.UUID][]models.DeploymentStatus
	lines    map[uuid.UUID][]string
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		statuses: make(map[uuid.UUID][]models.DeploymentStatus),
		lines:    make(map[uuid.UUID][]string),
	}
}

func (s *recordingSink) AppendLines(_ context.Context, deploymentID uuid.UUID, lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[deploymentID] = append(s.lines[deploymentID], lines...)
	return nil
}

func (s *recordingSink) NotifyStatus(_ context.Context, deploymentID uuid.UUID, status models.DeploymentStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses[deploymentID] = append(s.statuses[deploymentID], status)
}

func (s *recordingSink) notified(deploymentID uuid.UUID) []models.DeploymentStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.DeploymentStatus(nil), s.statuses[deploymentID]...)
}

type staticCredentials struct {
	token string
	err   error
	calls int
	mu    sync.Mutex
}

func (c *staticCredentials) GetCloneToken(_ context.Context, _ int64) (string, time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.token, time.Now().Add(time.Hour), c.err
}

// pausingDeployments holds the first FindInProgress call that sees an in-flight
// deployment until release is closed, opening a window for other writers.
type pausingDeployments struct {
	fakeDeployments
	once    *sync.Once
	paused  chan struct{}
	release chan struct{}
}

func newPausingDeployments(store *memStore) pausingDeployments {
	return pausingDeployments{
		fakeDeployments: fakeDeployments{store},
		once:            &sync.Once{},
		paused:          make(chan struct{}),
		release:         make(chan struct{}),
	}
}

func (f pausingDeployments) FindInProgress(ctx context.Context, projectID uuid.UUID) (*models.Deployment, error) {
	d, err := f.fakeDeployments.FindInProgress(ctx, projectID)
	if d != nil {
		f.once.Do(func() {
			close(f.paused)
			<-f.release
		})
	}
	return d, err
}
