package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios
var (
	// Model errors
	ErrMissingRequired = errors.New("missing required field")
	ErrInvalidCategory = errors.New("invalid trait category")

	// Store errors
	ErrPersonaNotFound = errors.New("persona not found")
	ErrCorruptData     = errors.New("corrupt persona document")

	// Template errors
	ErrTemplateNotFound = errors.New("template not found")

	// Export/import errors
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// CategoryError reports a trait category that is not in the allow-list
type CategoryError struct {
	Category string
	Allowed  []string
}

func (e *CategoryError) Error() string {
	return fmt.Sprintf("invalid category %q, must be one of: %s",
		e.Category, strings.Join(e.Allowed, ", "))
}

func (e *CategoryError) Unwrap() error {
	return ErrInvalidCategory
}

// NewCategoryError creates a new category error
func NewCategoryError(category string, allowed []string) error {
	return &CategoryError{Category: category, Allowed: allowed}
}

// StoreError represents a persona store operation error with context
type StoreError struct {
	Op   string // Operation that failed (e.g., "save", "load", "delete")
	Path string // File involved
	Err  error  // Underlying error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s operation on %s: %v", e.Op, e.Path, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new store error
func NewStoreError(op, path string, err error) error {
	return &StoreError{Op: op, Path: path, Err: err}
}

// ValidationError represents input validation errors
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation failed for %s (value: %v): %s",
			e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrMissingRequired
}

// Helper functions for common error patterns

// IsNotFound checks if error indicates a missing persona or template
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPersonaNotFound) ||
		errors.Is(err, ErrTemplateNotFound)
}

// IsCorrupt checks if error indicates an unreadable stored document
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrCorruptData)
}

// IsInvalidCategory checks if error indicates an off-list trait category
func IsInvalidCategory(err error) bool {
	return errors.Is(err, ErrInvalidCategory)
}

// WrapWithContext adds context to an error
func WrapWithContext(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
