package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fiscalia/case-tracker/repositories"
)

// ErrorKind distinguishes the failures a caller can render precisely
type ErrorKind string

const (
	KindNotFound            ErrorKind = "not_found"
	KindInvalidTransition   ErrorKind = "invalid_transition"
	KindReassignmentBlocked ErrorKind = "reassignment_blocked"
	KindValidation          ErrorKind = "validation_error"
	KindConflict            ErrorKind = "conflict"
	KindUnauthorized        ErrorKind = "unauthorized"
)

// ServiceError is a caller-visible failure with a kind and a human-readable message
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a ServiceError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Kind == kind
}

// KindOf returns the kind of err, or "" when err is not a ServiceError
func KindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

func newError(kind ErrorKind, format string, args ...any) *ServiceError {
	return &ServiceError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func validationError(messages []string) *ServiceError {
	return &ServiceError{Kind: KindValidation, Message: "validation failed: " + strings.Join(messages, ", ")}
}

// fromRepository converts repository sentinels into service errors and wraps anything else
func fromRepository(err error, action string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return &ServiceError{Kind: KindNotFound, Message: notFoundMessage(err), Err: err}
	case errors.Is(err, repositories.ErrStaleCase):
		return &ServiceError{Kind: KindConflict, Message: "case was modified by another request, reload and retry", Err: err}
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

// notFoundMessage strips the sentinel suffix so callers see "case with ID 4 not found"
func notFoundMessage(err error) string {
	msg := strings.TrimSuffix(err.Error(), ": "+repositories.ErrNotFound.Error())
	return msg + " not found"
}
