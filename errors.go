package pluck

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidCaseMode indicates a transformation uses an unknown CaseMode.
	ErrInvalidCaseMode = errors.New("invalid case mode")

	// ErrEmptyDelimiter indicates a path delimiter of zero length.
	ErrEmptyDelimiter = errors.New("empty delimiter")

	// ErrEmptyTag indicates a struct tag name of zero length.
	ErrEmptyTag = errors.New("empty tag")

	// ErrNilStrategy indicates a nil extractor, injector or caser was configured.
	ErrNilStrategy = errors.New("nil strategy")

	// ErrUnresolved indicates one or more values could not be assigned.
	ErrUnresolved = errors.New("unresolved fields")

	// ErrUnmarshal indicates the codec failed to decode a document.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to encode a document.
	ErrMarshal = errors.New("marshal failed")
)

// ConfigError represents an engine configuration error.
// It wraps a sentinel error with the option and value that caused it.
type ConfigError struct {
	Err    error  // Underlying sentinel error (ErrInvalidCaseMode, etc.)
	Option string // Option that was being applied
	Value  string // Offending value, if any
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s %q", e.Option, e.Err.Error(), e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Option, e.Err.Error())
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// UnresolvedError lists the names an assignment could not place.
type UnresolvedError struct {
	Names []string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("unable to set fields [%s]", strings.Join(e.Names, ", "))
}

func (e *UnresolvedError) Unwrap() error {
	return ErrUnresolved
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err         error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	ContentType string
	Cause       error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Err.Error(), e.ContentType, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.ContentType)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConfigError creates a ConfigError for invalid options.
func newConfigError(sentinel error, option, value string) error {
	return &ConfigError{
		Err:    sentinel,
		Option: option,
		Value:  value,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, contentType string, cause error) error {
	return &CodecError{
		Err:         sentinel,
		ContentType: contentType,
		Cause:       cause,
	}
}
