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
	Context string // Additional context like "for this organization"
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

// PreconditionError is returned when an operation is rejected because the
// current state of the entity does not allow it.
type PreconditionError struct {
	Operation string
	Reason    string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Operation, e.Reason)
}

// Is matches on operation and reason so sentinel values can be compared
func (e *PreconditionError) Is(target error) bool {
	t, ok := target.(*PreconditionError)
	if !ok {
		return false
	}
	return e.Operation == t.Operation && e.Reason == t.Reason
}

// GenerationFailure wraps an error coming from the content generator.
// Nothing is persisted when one of these is returned.
type GenerationFailure struct {
	Operation string
	Err       error
}

func (e *GenerationFailure) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("content generation failed during %s", e.Operation)
	}
	return fmt.Sprintf("content generation failed during %s: %v", e.Operation, e.Err)
}

func (e *GenerationFailure) Unwrap() error {
	return e.Err
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
	ErrOrganizationNotFound   = &NotFoundError{Entity: "organization"}
	ErrPhaseNotFound          = &NotFoundError{Entity: "phase"}
	ErrTaskNotFound           = &NotFoundError{Entity: "task"}
	ErrTaskCompletionNotFound = &NotFoundError{Entity: "task completion"}
	ErrKeyResultNotFound      = &NotFoundError{Entity: "key result"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrRoadmapExists      = &AlreadyExistsError{Entity: "roadmap", Context: "for this organization"}
	ErrCompletionExists   = &AlreadyExistsError{Entity: "task completion", Context: "for this user and task"}
)

// Precondition Errors
var (
	ErrNoRegenerationsRemaining = &PreconditionError{Operation: "regenerate phase", Reason: "no regenerations remaining"}
	ErrPhaseNotPending          = &PreconditionError{Operation: "activate phase", Reason: "phase is not pending"}
	ErrPhaseNotSkippable        = &PreconditionError{Operation: "skip phase", Reason: "phase is already completed or skipped"}
	ErrCompletionAlreadyValid   = &PreconditionError{Operation: "validate completion", Reason: "completion is already validated"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid status")
	ErrInvalidPhaseNumber      = errors.New("invalid phase number")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrMalformedContent        = errors.New("generator returned malformed content")
	ErrEmptyRoadmap            = errors.New("generator returned no phases")
)

// Authentication Errors
var (
	ErrMissingClaims        = &AuthenticationError{Message: "token claims not found in context"}
	ErrOrganizationMismatch = &AuthorizationError{Message: "token is not scoped to this organization"}
	ErrInsufficientRole     = &AuthorizationError{Message: "role is not allowed to perform this operation"}
)

// Configuration Errors
var (
	ErrGeneratorNotConfigured = &ConfigurationError{Message: "content generator is not configured: CONTENT_GENERATOR_URL"}
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

// IsPrecondition checks if an error is a PreconditionError
func IsPrecondition(err error) bool {
	var preconditionErr *PreconditionError
	return errors.As(err, &preconditionErr)
}

// IsGenerationFailure checks if an error is a GenerationFailure
func IsGenerationFailure(err error) bool {
	var genErr *GenerationFailure
	return errors.As(err, &genErr)
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

// NewPreconditionError creates a new PreconditionError
func NewPreconditionError(operation, reason string) error {
	return &PreconditionError{Operation: operation, Reason: reason}
}

// NewGenerationFailure wraps a generator error for the given operation
func NewGenerationFailure(operation string, err error) error {
	return &GenerationFailure{Operation: operation, Err: err}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
