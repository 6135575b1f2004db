package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidGraph indicates a type metadata error.
	ErrInvalidGraph = errors.New("typemill: invalid type graph")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("typemill: missing configuration")
	// ErrEmitFailed indicates an artifact emission failure.
	ErrEmitFailed = errors.New("typemill: emission failed")
	// ErrPathConflict indicates two artifacts resolving to one output path.
	ErrPathConflict = errors.New("typemill: artifact path conflict")
)

// ExtractError represents a type metadata extraction error.
type ExtractError struct {
	Type     string // qualified type name
	Property string // property name, if applicable
	Message  string
	Cause    error
}

// Error implements the error interface.
func (e *ExtractError) Error() string {
	var b strings.Builder
	b.WriteString("typemill: extract error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Property != "" {
		b.WriteString(" property ")
		b.WriteString(e.Property)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for ExtractError.
func (e *ExtractError) Is(target error) bool {
	return target == ErrInvalidGraph
}

// NewExtractError creates a new ExtractError.
func NewExtractError(typeName, property, message string, cause error) *ExtractError {
	return &ExtractError{
		Type:     typeName,
		Property: property,
		Message:  message,
		Cause:    cause,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("typemill: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("typemill: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// EmitError represents an artifact emission error.
type EmitError struct {
	Unit    UnitKind
	Kind    ItemKind
	Type    string // qualified descriptor name
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *EmitError) Error() string {
	var b strings.Builder
	b.WriteString("typemill: emit error")
	if e.Unit != "" {
		fmt.Fprintf(&b, " in unit %s", e.Unit)
	}
	if e.Kind != "" {
		fmt.Fprintf(&b, " (%s)", e.Kind)
	}
	if e.Type != "" {
		b.WriteString(" for type ")
		b.WriteString(e.Type)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *EmitError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for EmitError.
func (e *EmitError) Is(target error) bool {
	return target == ErrEmitFailed
}

// NewEmitError creates a new EmitError.
func NewEmitError(unit UnitKind, kind ItemKind, typeName, message string, cause error) *EmitError {
	return &EmitError{
		Unit:    unit,
		Kind:    kind,
		Type:    typeName,
		Message: message,
		Cause:   cause,
	}
}

// PathConflictError reports two artifacts of one run resolving to the same
// output path. This is the only fatal per-artifact condition: a silent
// overwrite would destroy the custom regions of whichever artifact was
// written first.
type PathConflictError struct {
	Path   string
	First  string // full name of the artifact that claimed the path
	Second string // full name of the artifact that collided
}

// Error implements the error interface.
func (e *PathConflictError) Error() string {
	return fmt.Sprintf("typemill: path conflict at %q between %s and %s", e.Path, e.First, e.Second)
}

// Is reports whether the target matches the sentinel error for PathConflictError.
func (e *PathConflictError) Is(target error) bool {
	return target == ErrPathConflict
}

// NewPathConflictError creates a new PathConflictError.
func NewPathConflictError(path, first, second string) *PathConflictError {
	return &PathConflictError{
		Path:   path,
		First:  first,
		Second: second,
	}
}

// IsExtractError reports whether the error is an ExtractError.
func IsExtractError(err error) bool {
	var extractErr *ExtractError
	return errors.As(err, &extractErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsEmitError reports whether the error is an EmitError.
func IsEmitError(err error) bool {
	var emitErr *EmitError
	return errors.As(err, &emitErr)
}

// IsPathConflictError reports whether the error is a PathConflictError.
func IsPathConflictError(err error) bool {
	var pathErr *PathConflictError
	return errors.As(err, &pathErr)
}
