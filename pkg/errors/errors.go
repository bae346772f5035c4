package errors

import (
	"fmt"
)

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

// ValidationError captures configuration and content validation issues.
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

// AssetError reports a static asset reference that could not be resolved.
type AssetError struct {
	Ref string
	Err error
}

// NewAssetError constructs an AssetError for ref.
func NewAssetError(ref string, err error) error {
	return &AssetError{Ref: ref, Err: err}
}

func (e *AssetError) Error() string {
	if e == nil {
		return ""
	}
	if e.Ref != "" {
		return fmt.Sprintf("asset error [%s]: %v", e.Ref, e.Err)
	}
	return fmt.Sprintf("asset error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *AssetError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// TerminalError indicates the host terminal cannot run the interactive page,
// for example when stdout is not a TTY.
type TerminalError struct {
	Reason string
	Err    error
}

// NewTerminalError constructs a TerminalError.
func NewTerminalError(reason string, err error) error {
	return &TerminalError{Reason: reason, Err: err}
}

func (e *TerminalError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("terminal error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("terminal error: %s", e.Reason)
}

// Unwrap exposes the underlying error.
func (e *TerminalError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
