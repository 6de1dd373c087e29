// Package apperr defines the error kinds the domain surfaces to callers.
// Handlers map them to HTTP statuses with errors.Is/errors.As; services wrap
// them with context via fmt.Errorf("...: %w", ...).
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers absent titles, reviews, categories, genres and users.
	ErrNotFound = errors.New("not found")

	// ErrReviewExists is the duplicate signal for a second review by the
	// same author on the same title.
	ErrReviewExists = errors.New("review already exists for this title and author")

	// ErrInvalidCredentials is a failed (username, confirmation code) exchange.
	ErrInvalidCredentials = errors.New("invalid username or confirmation code")

	// ErrPermissionDenied is a failed role or ownership check.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrConflict is a uniqueness clash on create (slug, name, username, email).
	ErrConflict = errors.New("already exists")

	// ErrProtected blocks deletion of an entity that is still referenced.
	ErrProtected = errors.New("still referenced by dependent records")
)

// ValidationError carries a human-readable description of malformed or
// out-of-range input.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
