package apperrors

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates missing, invalid or expired credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates that the presented refresh token is past its expiry.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// ErrInvalidThreshold indicates a threshold that cannot be used as a divisor (threshold <= 0).
var ErrInvalidThreshold = errors.New("threshold must be a positive integer")

// ErrUpstreamFetch indicates that the remote rate feed was unreachable or returned unusable data.
// It is only ever logged; it never reaches an API caller.
var ErrUpstreamFetch = errors.New("upstream fetch failed")

// FieldErrors maps a request field name to its validation messages.
// It satisfies error and unwraps to ErrValidation so handlers can match it with errors.Is.
type FieldErrors map[string][]string

// Add appends a message for the given field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Error renders the field errors in a stable order.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(fe[f], "; "))
	}
	return "validation error: " + strings.Join(parts, ", ")
}

// Unwrap lets errors.Is(err, ErrValidation) succeed for field errors.
func (fe FieldErrors) Unwrap() error {
	return ErrValidation
}

// OrNil returns nil when no field failed, so callers can `return fe.OrNil()`.
func (fe FieldErrors) OrNil() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}
