package newsportal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrSlugTaken         = errors.New("slug is already taken")
	ErrEmailTaken        = errors.New("email is already taken")
	ErrInUse             = errors.New("entity is still referenced")
	ErrTooManyItems      = fmt.Errorf("featured list holds at most %d items", MaxFeatured)
	ErrDuplicateItem     = errors.New("featured list already contains the item")
	ErrVersionConflict   = errors.New("featured list was changed by someone else")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError carries per-field messages. It is returned before any store call.
type ValidationError struct {
	Errors map[string]string `json:"errors"`

	cause error
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	messages := make([]string, len(fields))
	for i, field := range fields {
		messages[i] = field + ": " + e.Errors[field]
	}

	return "validation failed: " + strings.Join(messages, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

func fieldError(field, message string, cause error) *ValidationError {
	return &ValidationError{
		Errors: map[string]string{field: message},
		cause:  cause,
	}
}
