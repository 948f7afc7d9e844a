package episodes

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrEpisodeNotFound = errors.New("episode not found")
	ErrDuplicateSlug   = errors.New("duplicate slug")
	ErrInvalidInput    = errors.New("invalid input")
	ErrStore           = errors.New("store failure")
)

// NotFoundError reports an operation on a slug with no matching episode.
type NotFoundError struct {
	Slug string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("episode %q not found", e.Slug)
}

func (e NotFoundError) Is(target error) bool {
	return target == ErrEpisodeNotFound
}

// DuplicateSlugError reports a create colliding with an existing slug.
type DuplicateSlugError struct {
	Slug string
}

func (e DuplicateSlugError) Error() string {
	return fmt.Sprintf("episode %q already exists", e.Slug)
}

func (e DuplicateSlugError) Is(target error) bool {
	return target == ErrDuplicateSlug
}

// ValidationError reports a missing or malformed episode field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// StoreError reports a backing-store communication failure. It is never
// retried here; callers surface it as a failed response.
type StoreError struct {
	Op    string
	Cause error
}

func (e StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Cause)
}

func (e StoreError) Is(target error) bool {
	return target == ErrStore
}

func (e StoreError) Unwrap() error {
	return e.Cause
}

// Helper functions for creating errors

func NewNotFoundError(slug string) error {
	return NotFoundError{Slug: slug}
}

func NewDuplicateSlugError(slug string) error {
	return DuplicateSlugError{Slug: slug}
}

func NewValidationError(field, message string) error {
	return ValidationError{Field: field, Message: message}
}

func NewStoreError(op string, cause error) error {
	return StoreError{Op: op, Cause: cause}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrEpisodeNotFound)
}

// IsDuplicateSlug checks if an error is a duplicate slug error
func IsDuplicateSlug(err error) bool {
	return errors.Is(err, ErrDuplicateSlug)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
