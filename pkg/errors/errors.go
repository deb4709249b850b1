package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrLoadTimeout is wrapped by LoadError when a lazy loader exceeds its deadline.
var ErrLoadTimeout = errors.New("adapter load timed out")

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures definition or configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LoadError reports a lazy adapter whose loader failed, panicked or timed out.
type LoadError struct {
	Component string
	Library   string
	Elapsed   time.Duration
	Err       error
}

// NewLoadError constructs a LoadError.
func NewLoadError(component, library string, elapsed time.Duration, err error) error {
	return &LoadError{Component: component, Library: library, Elapsed: elapsed, Err: err}
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("load error [%s/%s] after %s: %v", e.Component, e.Library, e.Elapsed.Round(time.Millisecond), e.Err)
}

// Unwrap exposes the loader error.
func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsTimeout reports whether the load was abandoned because of its deadline.
func (e *LoadError) IsTimeout() bool {
	return e != nil && errors.Is(e.Err, ErrLoadTimeout)
}
