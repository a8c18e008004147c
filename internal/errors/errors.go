package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this slug"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidTransitionError is returned when a deployment cannot move between two states,
// either because the move goes backwards or because another writer got there first.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	if e.From == "" {
		return fmt.Sprintf("invalid deployment transition to %s", e.To)
	}
	return fmt.Sprintf("invalid deployment transition from %s to %s", e.From, e.To)
}

// Is matches any InvalidTransitionError regardless of states
func (e *InvalidTransitionError) Is(target error) bool {
	_, ok := target.(*InvalidTransitionError)
	return ok
}

// TriggerKind distinguishes why a build job was not accepted
type TriggerKind string

const (
	TriggerRejected  TriggerKind = "rejected"
	TriggerTransport TriggerKind = "transport"
)

// TriggerError is returned when the build service did not accept a job
type TriggerError struct {
	Kind       TriggerKind
	StatusCode int
	Reason     string
	Err        error
}

func (e *TriggerError) Error() string {
	if e.Kind == TriggerRejected && e.StatusCode != 0 {
		return fmt.Sprintf("build trigger rejected: status=%d %s", e.StatusCode, e.Reason)
	}
	if e.Err != nil {
		return fmt.Sprintf("build trigger %s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("build trigger %s error: %s", e.Kind, e.Reason)
}

func (e *TriggerError) Unwrap() error {
	return e.Err
}

// Is matches on Kind; an empty Kind in the target matches any TriggerError
func (e *TriggerError) Is(target error) bool {
	t, ok := target.(*TriggerError)
	if !ok {
		return false
	}
	return t.Kind == "" || t.Kind == e.Kind
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound       = &NotFoundError{Entity: "user"}
	ErrProjectNotFound    = &NotFoundError{Entity: "project"}
	ErrDeploymentNotFound = &NotFoundError{Entity: "deployment"}
	ErrLogNotFound        = &NotFoundError{Entity: "log"}
)

// Already Exists Errors
var (
	ErrSlugTaken          = &AlreadyExistsError{Entity: "project", Context: "with this slug"}
	ErrDuplicateEnvVarKey = &AlreadyExistsError{Entity: "environment variable", Context: "with this key in the project"}
	ErrDeploymentInFlight = &AlreadyExistsError{Entity: "in-progress deployment", Context: "for this project"}
)

// Deployment Errors
var (
	ErrInvalidTransition = &InvalidTransitionError{}
	ErrTriggerRejected   = &TriggerError{Kind: TriggerRejected}
	ErrTriggerTransport  = &TriggerError{Kind: TriggerTransport}
	ErrInvalidStatus     = errors.New("invalid status")
)

// Business Logic Errors
var (
	ErrQuotaExceeded           = errors.New("project quota exceeded")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrMissingAPIKey       = &AuthenticationError{Message: "api key is required"}
	ErrInvalidAPIKey       = &AuthenticationError{Message: "invalid api key"}
	ErrMissingAuthHeader   = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken        = &AuthenticationError{Message: "invalid or expired token"}
	ErrMissingIdentity     = &AuthenticationError{Message: "request has no authenticated user"}
	ErrProjectAccessDenied = &AuthorizationError{Message: "project does not belong to the requesting user"}
)

// Configuration Errors
var (
	ErrGitHubAppNotConfigured = &ConfigurationError{Message: "GITHUB_APP_ID and GITHUB_APP_PRIVATE_KEY must be set"}
	ErrInstallationMissing    = &ConfigurationError{Message: "project owner has no GitHub App installation"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidTransition checks if an error is an InvalidTransitionError
func IsInvalidTransition(err error) bool {
	var transitionErr *InvalidTransitionError
	return errors.As(err, &transitionErr)
}

// IsTriggerError checks if an error is a TriggerError of any kind
func IsTriggerError(err error) bool {
	var triggerErr *TriggerError
	return errors.As(err, &triggerErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(from, to string) error {
	return &InvalidTransitionError{From: from, To: to}
}

// NewRejectedError reports a non-2xx answer from the build service
func NewRejectedError(statusCode int, reason string) error {
	return &TriggerError{Kind: TriggerRejected, StatusCode: statusCode, Reason: reason}
}

// NewTransportError reports that the build service could not be reached
func NewTransportError(err error) error {
	return &TriggerError{Kind: TriggerTransport, Err: err}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
