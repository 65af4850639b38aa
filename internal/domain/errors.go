package domain

import "fmt"

// Error types for consistent error handling across the desking service.

// ErrNotFound indicates a resource was not found.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates a validation error (bad input).
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error on '%s': %s", e.Field, e.Message)
}

// ErrUnknownJurisdiction indicates no tax rule exists for a state code.
type ErrUnknownJurisdiction struct {
	Code string
}

func (e *ErrUnknownJurisdiction) Error() string {
	return fmt.Sprintf("no tax rule for jurisdiction: %s", e.Code)
}

// ErrTemplateNotFound indicates a form template ID has no backing file.
type ErrTemplateNotFound struct {
	TemplateID string
}

func (e *ErrTemplateNotFound) Error() string {
	return fmt.Sprintf("form template not found: %s", e.TemplateID)
}

// ErrDocumentGeneration indicates a document failed to render.
type ErrDocumentGeneration struct {
	Kind DocumentKind
	Err  error
}

func (e *ErrDocumentGeneration) Error() string {
	return fmt.Sprintf("document generation failed [%s]: %v", e.Kind, e.Err)
}

func (e *ErrDocumentGeneration) Unwrap() error {
	return e.Err
}

// ErrTimeout indicates an operation exceeded its deadline.
type ErrTimeout struct {
	Operation string
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("operation timed out: %s", e.Operation)
}
