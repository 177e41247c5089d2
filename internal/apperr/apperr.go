// Package apperr holds the error kinds shared by the routine, calendar
// and profile packages, and their mapping to HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports a missing or malformed input field. Nothing
// has been written when it is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports a reference to a routine, exercise, set or other
// document that does not exist (anymore).
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s [%s] not found", e.Resource, e.ID)
}

// PersistenceError wraps a failed call to an external store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %s", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func Validation(field, format string, args ...any) error {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func NotFound(resource, id string) error {
	return &NotFoundError{
		Resource: resource,
		ID:       id,
	}
}

// Persistence wraps err unless it is nil or already one of the app error kinds.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	if IsValidation(err) || IsNotFound(err) || IsPersistence(err) {
		return err
	}
	return &PersistenceError{
		Op:  op,
		Err: err,
	}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

// HTTPStatus maps an error to the status code a handler should respond with.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsNotFound(err):
		return http.StatusNotFound
	case IsPersistence(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text that is safe to show to the client.
func PublicMessage(err error) string {
	switch {
	case IsValidation(err), IsNotFound(err):
		return err.Error()
	case IsPersistence(err):
		return "storage unavailable, try again"
	default:
		return "internal error"
	}
}
