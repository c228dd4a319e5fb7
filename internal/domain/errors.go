package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinels, matched with errors.Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// Field messages reused across validators.
const (
	MsgRequired       = "is required"
	MsgMustBePositive = "must be positive"
)

// ValidationError carries one message per offending field. It matches
// ErrValidation; use errors.As to reach the fields.
type ValidationError struct {
	Fields map[string]string
}

// Invalid reports a single bad field.
func Invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Error lists the fields in name order so the message is stable.
func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
