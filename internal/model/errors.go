package model

import "fmt"

// ErrorKind classifies conversion failures
type ErrorKind string

const (
	// ErrMissingInput means no input file was selected
	ErrMissingInput ErrorKind = "missing-input"
	// ErrMissingFormat means no valid output format was selected
	ErrMissingFormat ErrorKind = "missing-format"
	// ErrBusy means a conversion is already running
	ErrBusy ErrorKind = "busy"
	// ErrExportFailure covers anything ffmpeg or the filesystem reported
	ErrExportFailure ErrorKind = "export-failure"
)

// ConversionError is the error carried by a failed Result or returned by
// session validation.
type ConversionError struct {
	Kind    ErrorKind
	Message string
}

// NewConversionError builds a ConversionError with a formatted message
func NewConversionError(kind ErrorKind, format string, args ...any) *ConversionError {
	return &ConversionError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *ConversionError) Error() string {
	return e.Message
}

// IsValidation reports whether the error was raised before any work started
func (e *ConversionError) IsValidation() bool {
	return e.Kind == ErrMissingInput || e.Kind == ErrMissingFormat || e.Kind == ErrBusy
}
