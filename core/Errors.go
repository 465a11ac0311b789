package core

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when a searcher or scanner is built with invalid settings.
	ErrConfiguration = errors.New("configuration error")
	// ErrFileAccess marks a file that could not be opened, read or decoded.
	ErrFileAccess = errors.New("file access error")
	// ErrBinaryContent marks a file skipped because its content looks binary.
	ErrBinaryContent = fmt.Errorf("binary content: %w", ErrFileAccess)
	// ErrUnexpected wraps anything else escaping a search run.
	ErrUnexpected = errors.New("unexpected error")
)

type ConfigurationError struct {
	Reason string
}

func NewConfigurationError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// FileAccessError records why a single file contributed nothing to a search.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("error opening or reading file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

func (e *FileAccessError) Is(target error) bool {
	return target == ErrFileAccess
}
