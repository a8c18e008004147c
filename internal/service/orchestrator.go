package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargodeploy-backend/internal/database/models"
	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/logger"
	"cargodeploy-backend/internal/metrics"
	"cargodeploy-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Orchestrator owns the deployment state machine, per-project admission control
// and the queue of pending deployments.
type Orchestrator struct {
	projects    repository.ProjectRepositoryInterface
	deployments repository.DeploymentRepositoryInterface
	users       repository.UserRepositoryInterface
	trigger     BuildTriggerClient
	credentials CredentialProvider
	sink        LogSink
	locker      ProjectLocker
	metrics     *metrics.Collector
}

// OrchestratorDeps groups the collaborators of an Orchestrator.
// Credentials may be nil when no private repository is deployed; Metrics may be nil.
type OrchestratorDeps struct {
	Projects    repository.ProjectRepositoryInterface
	Deployments repository.DeploymentRepositoryInterface
	Users       repository.UserRepositoryInterface
	Trigger     BuildTriggerClient
	Credentials CredentialProvider
	Sink        LogSink
	Locker      ProjectLocker
	Metrics     *metrics.Collector
}

// NewOrchestrator creates a new deployment orchestrator
func NewOrchestrator(deps OrchestratorDeps) *Orchestrator {
	locker := deps.Locker
	if locker == nil {
		locker = NewKeyedLocker()
	}
	return &Orchestrator{
		projects:    deps.Projects,
		deployments: deps.Deployments,
		users:       deps.Users,
		trigger:     deps.Trigger,
		credentials: deps.Credentials,
		sink:        deps.Sink,
		locker:      locker,
		metrics:     deps.Metrics,
	}
}

// CreateDeployment admits a new deployment for the project. When another deployment
// is in flight it is queued as PENDING and nothing is triggered. Otherwise it starts
// IN_PROGRESS and the build is triggered synchronously; on trigger failure the
// deployment ends FAILED and the TriggerError is returned alongside it.
func (o *Orchestrator) CreateDeployment(ctx context.Context, projectID uuid.UUID, meta models.CommitMeta) (*models.Deployment, error) {
	// Work after admission must finish even if the caller goes away
	ctx = context.WithoutCancel(ctx)
	log := logger.WithContext(ctx).WithField("project_id", projectID)

	project, err := o.loadProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	deployment, err := o.admit(ctx, projectID, meta)
	if err != nil {
		return nil, err
	}
	o.metrics.DeploymentCreated(string(deployment.Status))
	log = log.WithField("deployment_id", deployment.ID)

	if deployment.Status == models.DeploymentStatusPending {
		log.Info("Deployment queued behind in-flight build")
		o.sink.NotifyStatus(ctx, deployment.ID, deployment.Status)
		return deployment, nil
	}

	o.sink.NotifyStatus(ctx, deployment.ID, deployment.Status)
	if triggerErr := o.triggerBuild(ctx, deployment, project); triggerErr != nil {
		log.Warnf("Build trigger failed, marking deployment failed: %v", triggerErr)
		o.markFailed(ctx, deployment)

		// Deployments queued while this one was being triggered must not stall
		if err := o.AdvanceQueue(ctx, projectID); err != nil {
			log.Errorf("Failed to advance queue after trigger failure: %v", err)
		}
		return deployment, triggerErr
	}

	log.Info("Deployment started")
	return deployment, nil
}

// admit decides PENDING vs IN_PROGRESS and creates the row while holding the project lock.
// The partial unique index on IN_PROGRESS rows backs the decision up across replicas.
func (o *Orchestrator) admit(ctx context.Context, projectID uuid.UUID, meta models.CommitMeta) (*models.Deployment, error) {
	unlock, err := o.locker.Lock(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock project: %w", err)
	}
	defer unlock()

	inFlight, err := o.deployments.FindInProgress(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check in-flight deployment: %w", err)
	}

	deployment := &models.Deployment{
		ProjectID:    projectID,
		Status:       models.DeploymentStatusInProgress,
		CommitID:     meta.CommitID,
		CommitMsg:    meta.CommitMsg,
		CommitAuthor: meta.CommitAuthor,
	}
	if inFlight != nil {
		deployment.Status = models.DeploymentStatusPending
	}

	err = o.deployments.Create(ctx, deployment)
	if errors.Is(err, apperrors.ErrDeploymentInFlight) {
		deployment.Status = models.DeploymentStatusPending
		err = o.deployments.Create(ctx, deployment)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create deployment: %w", err)
	}
	return deployment, nil
}

// ResolveDeployment applies the build service's verdict to an IN_PROGRESS deployment,
// updates the project's deployed flag and advances the queue. A second callback for
// the same deployment fails with an InvalidTransitionError and changes nothing.
func (o *Orchestrator) ResolveDeployment(ctx context.Context, deploymentID uuid.UUID, result models.DeploymentStatus) error {
	if !result.IsTerminal() {
		return apperrors.NewValidationError("status", fmt.Sprintf("must be SUCCESS or FAILED, got %q", result))
	}
	ctx = context.WithoutCancel(ctx)
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"deployment_id": deploymentID,
		"status":        result,
	})

	deployment, err := o.deployments.GetByID(ctx, deploymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrDeploymentNotFound
		}
		return fmt.Errorf("failed to get deployment: %w", err)
	}
	if err := o.finish(ctx, deployment, result); err != nil {
		if apperrors.IsInvalidTransition(err) {
			log.Warnf("Ignoring callback: %v", err)
		}
		return err
	}
	o.metrics.DeploymentResolved(string(result))

	if err := o.projects.SetDeployed(ctx, deployment.ProjectID, result == models.DeploymentStatusSuccess); err != nil {
		log.Errorf("Failed to update project deployed flag: %v", err)
	}
	o.sink.NotifyStatus(ctx, deploymentID, result)
	log.Info("Deployment resolved")

	if err := o.AdvanceQueue(ctx, deployment.ProjectID); err != nil {
		return fmt.Errorf("deployment resolved but queue not advanced: %w", err)
	}
	return nil
}

// AdvanceQueue promotes the oldest PENDING deployment of the project and triggers it.
// If the trigger fails the deployment is FAILED and the next one is tried. Every
// iteration consumes one PENDING row, so the loop ends once the queue is empty,
// a build is accepted, or another deployment is already in flight.
func (o *Orchestrator) AdvanceQueue(ctx context.Context, projectID uuid.UUID) error {
	log := logger.WithContext(ctx).WithField("project_id", projectID)

	remaining, err := o.deployments.CountPending(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to count pending deployments: %w", err)
	}
	if remaining == 0 {
		o.metrics.QueueAdvanced("empty")
		return nil
	}

	project, err := o.loadProject(ctx, projectID)
	if err != nil {
		return err
	}

	for remaining > 0 {
		next, err := o.promoteNext(ctx, projectID)
		if err != nil {
			return err
		}
		if next == nil {
			o.metrics.QueueAdvanced("idle")
			return nil
		}
		remaining--

		o.sink.NotifyStatus(ctx, next.ID, models.DeploymentStatusInProgress)
		triggerErr := o.triggerBuild(ctx, next, project)
		if triggerErr == nil {
			o.metrics.QueueAdvanced("started")
			log.WithField("deployment_id", next.ID).Info("Started next queued deployment")
			return nil
		}

		o.metrics.QueueAdvanced("failed")
		log.WithField("deployment_id", next.ID).Warnf("Queued deployment failed to trigger: %v", triggerErr)
		o.markFailed(ctx, next)
		if err := o.projects.SetDeployed(ctx, projectID, false); err != nil {
			log.Errorf("Failed to update project deployed flag: %v", err)
		}

		if remaining == 0 {
			// Pick up deployments queued while this one was being triggered
			if remaining, err = o.deployments.CountPending(ctx, projectID); err != nil {
				return fmt.Errorf("failed to count pending deployments: %w", err)
			}
		}
	}

	o.metrics.QueueAdvanced("empty")
	return nil
}

// promoteNext moves the oldest PENDING deployment to IN_PROGRESS under the project lock.
// It returns nil when the queue is empty or another deployment is already in flight.
func (o *Orchestrator) promoteNext(ctx context.Context, projectID uuid.UUID) (*models.Deployment, error) {
	unlock, err := o.locker.Lock(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock project: %w", err)
	}
	defer unlock()

	inFlight, err := o.deployments.FindInProgress(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to check in-flight deployment: %w", err)
	}
	if inFlight != nil {
		return nil, nil
	}

	next, err := o.deployments.FindOldestPending(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find pending deployment: %w", err)
	}
	if next == nil {
		return nil, nil
	}

	if err := o.deployments.SetStatus(ctx, next.ID, models.DeploymentStatusInProgress); err != nil {
		if errors.Is(err, apperrors.ErrDeploymentInFlight) || apperrors.IsInvalidTransition(err) {
			// Another replica promoted first
			return nil, nil
		}
		return nil, fmt.Errorf("failed to promote deployment: %w", err)
	}
	next.Status = models.DeploymentStatusInProgress
	return next, nil
}

// triggerBuild assembles the job for deployment and submits it once
func (o *Orchestrator) triggerBuild(ctx context.Context, deployment *models.Deployment, project *models.Project) error {
	envVars, err := o.projects.ListEnvVars(ctx, project.ID)
	if err != nil {
		return &apperrors.TriggerError{Kind: apperrors.TriggerTransport, Reason: "load environment variables", Err: err}
	}

	token := ""
	if project.IsPrivate {
		token, err = o.cloneToken(ctx, project)
		if err != nil {
			return &apperrors.TriggerError{Kind: apperrors.TriggerRejected, Reason: "clone token unavailable", Err: err}
		}
	}

	job, err := NewBuildJob(project, deployment, envVars, token)
	if err != nil {
		return &apperrors.TriggerError{Kind: apperrors.TriggerRejected, Reason: "build job encoding", Err: err}
	}

	start := time.Now()
	err = o.trigger.Submit(ctx, job)
	outcome := "accepted"
	if err != nil {
		outcome = "rejected"
		if errors.Is(err, apperrors.ErrTriggerTransport) {
			outcome = "transport_error"
		}
	}
	o.metrics.TriggerObserved(outcome, time.Since(start))

	if err != nil && !apperrors.IsTriggerError(err) {
		return apperrors.NewTransportError(err)
	}
	return err
}

// cloneToken fetches a fresh token for the project owner's GitHub App installation
func (o *Orchestrator) cloneToken(ctx context.Context, project *models.Project) (string, error) {
	if o.credentials == nil {
		return "", apperrors.ErrGitHubAppNotConfigured
	}
	owner, err := o.users.GetByID(ctx, project.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to load project owner: %w", err)
	}
	if owner.GitHubInstallationID == nil {
		return "", apperrors.ErrInstallationMissing
	}
	token, _, err := o.credentials.GetCloneToken(ctx, *owner.GitHubInstallationID)
	return token, err
}

// finish moves an in-flight deployment to a terminal status under the project lock.
// Admission reads the in-flight row under the same lock, so a deployment it queues
// behind this one is always visible to the AdvanceQueue that follows.
func (o *Orchestrator) finish(ctx context.Context, deployment *models.Deployment, result models.DeploymentStatus) error {
	unlock, err := o.locker.Lock(ctx, deployment.ProjectID)
	if err != nil {
		return fmt.Errorf("failed to lock project: %w", err)
	}
	defer unlock()

	current, err := o.deployments.GetByID(ctx, deployment.ID)
	if err != nil {
		return fmt.Errorf("failed to get deployment: %w", err)
	}
	if current.Status != models.DeploymentStatusInProgress {
		return apperrors.NewInvalidTransitionError(string(current.Status), string(result))
	}
	// SetStatus is also compare-and-set, which covers replicas using the in-process locker
	return o.deployments.SetStatus(ctx, deployment.ID, result)
}

// markFailed moves a deployment whose trigger failed to FAILED
func (o *Orchestrator) markFailed(ctx context.Context, deployment *models.Deployment) {
	log := logger.WithContext(ctx).WithField("deployment_id", deployment.ID)
	if err := o.finish(ctx, deployment, models.DeploymentStatusFailed); err != nil {
		// A callback may already have resolved it
		log.Warnf("Failed to mark deployment failed: %v", err)
		return
	}
	deployment.Status = models.DeploymentStatusFailed
	o.metrics.DeploymentResolved(string(models.DeploymentStatusFailed))
	o.sink.NotifyStatus(ctx, deployment.ID, models.DeploymentStatusFailed)
}

func (o *Orchestrator) loadProject(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	project, err := o.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// GetDeployment retrieves a deployment by ID
func (o *Orchestrator) GetDeployment(ctx context.Context, deploymentID uuid.UUID) (*models.Deployment, error) {
	deployment, err := o.deployments.GetByID(ctx, deploymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDeploymentNotFound
		}
		return nil, fmt.Errorf("failed to get deployment: %w", err)
	}
	return deployment, nil
}
