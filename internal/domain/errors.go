package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrFeatureDisabled means the account's plan lacks the capability.
	ErrFeatureDisabled = errors.New("feature disabled")
	// ErrQuotaExceeded means the account used up today's AI calls.
	ErrQuotaExceeded = errors.New("quota exceeded")
	// ErrEmbeddingUnavailable wraps any failure of the embedding service.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")
	// ErrReasoningUnavailable wraps any failure of the reasoning service.
	ErrReasoningUnavailable = errors.New("reasoning service unavailable")
	// ErrMalformedUpstreamResponse means the reasoning service answered
	// with text that does not follow the structured contract.
	ErrMalformedUpstreamResponse = errors.New("malformed upstream response")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

// Error lists every field as "field: message", separated by semicolons.
func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// FeatureDisabledError names the feature the plan does not include.
type FeatureDisabledError struct {
	Feature Feature
}

func (e *FeatureDisabledError) Error() string {
	return fmt.Sprintf("feature %q is not enabled for this plan", e.Feature)
}

func (e *FeatureDisabledError) Unwrap() error { return ErrFeatureDisabled }

// NewFeatureDisabledError creates a FeatureDisabledError for the given feature.
func NewFeatureDisabledError(f Feature) *FeatureDisabledError {
	return &FeatureDisabledError{Feature: f}
}
