package service

import (
	"context"
	"fmt"
	"time"

	"cargodeploy-backend/internal/database/models"
	apperrors "cargodeploy-backend/internal/errors"
	"cargodeploy-backend/internal/logger"
	"cargodeploy-backend/internal/repository"
)

// Reaper fails deployments whose build never called back, so their project's queue moves on
type Reaper struct {
	deployments  repository.DeploymentRepositoryInterface
	orchestrator OrchestratorInterface
	sink         LogSink
	timeout      time.Duration
	interval     time.Duration
	now          func() time.Time
}

// NewReaper creates a reaper failing IN_PROGRESS deployments untouched for longer than timeout
func NewReaper(deployments repository.DeploymentRepositoryInterface, orchestrator OrchestratorInterface, sink LogSink, timeout, interval time.Duration) *Reaper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Reaper{
		deployments:  deployments,
		orchestrator: orchestrator,
		sink:         sink,
		timeout:      timeout,
		interval:     interval,
		now:          time.Now,
	}
}

// Run sweeps on every tick until ctx is done. A zero timeout disables it.
func (r *Reaper) Run(ctx context.Context) {
	log := logger.WithContext(ctx).WithField("component", "reaper")
	if r.timeout <= 0 {
		log.Info("Stale deployment reaper disabled")
		return
	}
	log.Infof("Stale deployment reaper started: timeout=%s, interval=%s", r.timeout, r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("Stale deployment reaper stopped")
			return
		case <-ticker.C:
			if n, err := r.Sweep(ctx); err != nil {
				log.Errorf("Stale deployment sweep failed: %v", err)
			} else if n > 0 {
				log.Infof("Failed %d stale deployments", n)
			}
		}
	}
}

// Sweep fails every stale deployment once and returns how many it resolved
func (r *Reaper) Sweep(ctx context.Context) (int, error) {
	cutoff := r.now().Add(-r.timeout)
	stale, err := r.deployments.FindStaleInProgress(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to find stale deployments: %w", err)
	}

	resolved := 0
	for _, d := range stale {
		log := logger.WithContext(ctx).WithFields(map[string]interface{}{
			"deployment_id": d.ID,
			"project_id":    d.ProjectID,
		})

		if err := r.orchestrator.ResolveDeployment(ctx, d.ID, models.DeploymentStatusFailed); err != nil {
			if apperrors.IsInvalidTransition(err) {
				// The callback arrived between the query and now
				continue
			}
			log.Errorf("Failed to fail stale deployment: %v", err)
			continue
		}
		resolved++

		line := fmt.Sprintf("deployment timed out: no result from build service after %s", r.timeout)
		if err := r.sink.AppendLines(ctx, d.ID, []string{line}); err != nil {
			log.Warnf("Failed to record timeout in deployment log: %v", err)
		}
	}
	return resolved, nil
}
