package models

// DeploymentStatus is the lifecycle state of a single deployment
type DeploymentStatus string

const (
	DeploymentStatusPending    DeploymentStatus = "PENDING"
	DeploymentStatusInProgress DeploymentStatus = "IN_PROGRESS"
	DeploymentStatusSuccess    DeploymentStatus = "SUCCESS"
	DeploymentStatusFailed     DeploymentStatus = "FAILED"
)

// IsValid checks if the DeploymentStatus is valid
func (s DeploymentStatus) IsValid() bool {
	switch s {
	case DeploymentStatusPending, DeploymentStatusInProgress, DeploymentStatusSuccess, DeploymentStatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no transition may leave s
func (s DeploymentStatus) IsTerminal() bool {
	return s == DeploymentStatusSuccess || s == DeploymentStatusFailed
}

// Predecessors lists the states a deployment may move to s from.
// PENDING has none: once advanced, nothing returns to it.
func (s DeploymentStatus) Predecessors() []DeploymentStatus {
	switch s {
	case DeploymentStatusInProgress:
		return []DeploymentStatus{DeploymentStatusPending}
	case DeploymentStatusSuccess:
		return []DeploymentStatus{DeploymentStatusInProgress}
	case DeploymentStatusFailed:
		// PENDING -> FAILED covers an admitted item whose trigger was rejected before it was marked in progress
		return []DeploymentStatus{DeploymentStatusPending, DeploymentStatusInProgress}
	}
	return nil
}

// CanTransitionTo checks the forward-only state machine
func (s DeploymentStatus) CanTransitionTo(next DeploymentStatus) bool {
	for _, from := range next.Predecessors() {
		if from == s {
			return true
		}
	}
	return false
}
