// Package tmerrors holds the compiler's operational-failure channel: file
// I/O problems and internal invariant violations. These are distinct from
// the diagnostic package's semantic Diagnostic values — operational
// failures abort compilation outright rather than accumulating alongside a
// best-effort Document, per the two-channel error model described by the
// front end's design.
package tmerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrFileNotFound indicates a source or imported file could not be opened.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvariant indicates an internal invariant was violated — a bug in
	// the compiler itself rather than a problem with the input source.
	ErrInvariant = errors.New("internal invariant violation")
)

// FileNotFoundError reports that a Toolman source file could not be read,
// either as the compilation root or as the target of an import statement.
type FileNotFoundError struct {
	// Path is the file path that failed to open.
	Path string
	// Cause is the underlying os error, if any.
	Cause error
}

func (e *FileNotFoundError) Error() string {
	msg := fmt.Sprintf("file not found: %s", e.Path)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *FileNotFoundError) Unwrap() error { return e.Cause }

func (e *FileNotFoundError) Is(target error) bool { return target == ErrFileNotFound }

// InvariantViolationError reports a condition the compiler assumes can
// never happen — e.g. a scope claiming to hold a name whose lookup then
// fails, or a module cache slot observed without ever being inserted.
// These are bugs, not user-facing diagnostics.
type InvariantViolationError struct {
	// Component names the subsystem that detected the violation
	// (e.g. "scope", "compiler", "builder").
	Component string
	// Message describes what was expected versus what was observed.
	Message string
}

func (e *InvariantViolationError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("internal invariant violation in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("internal invariant violation: %s", e.Message)
}

func (e *InvariantViolationError) Is(target error) bool { return target == ErrInvariant }
