package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"donorhub.app/api/internal/store"
)

// ValidationError is a user-correctable input problem.
type ValidationError struct {
	Field   string
	Message string
	IDs     []uuid.UUID
}

func (e *ValidationError) Error() string {
	if len(e.IDs) == 0 {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = id.String()
	}
	return fmt.Sprintf("%s: %s: %s", e.Field, e.Message, strings.Join(ids, ", "))
}

// InvalidStateError rejects a mutation of a record in a terminal state.
type InvalidStateError struct {
	Message string
}

func (e *InvalidStateError) Error() string {
	return e.Message
}

// ConfigurationError reports an organization without payment setup.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ConflictError is returned when a concurrent write won. Refetch and retry.
type ConflictError struct {
	Message string
	Err     error
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}

// NotFoundError covers both missing records and records the caller may not touch.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

func (e *NotFoundError) Is(target error) bool {
	return target == store.ErrNotFound
}

func validationErr(field, message string, ids ...uuid.UUID) error {
	return &ValidationError{Field: field, Message: message, IDs: ids}
}

func notFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func invalidState(format string, args ...any) error {
	return &InvalidStateError{Message: fmt.Sprintf(format, args...)}
}

// lookupErr turns store.ErrNotFound into a NotFoundError and wraps anything else.
func lookupErr(resource string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound(resource)
	}
	return fmt.Errorf("getting %s: %w", resource, err)
}

func conflictErr(message string, err error) error {
	if errors.Is(err, store.ErrConflict) {
		return &ConflictError{Message: message, Err: err}
	}
	return err
}
