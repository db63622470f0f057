package builder

import (
	"fmt"
	"strings"

	"github.com/toolman-lang/toolman/tmerrors"
)

// ComponentType identifies which builder state machine an error came from.
type ComponentType string

const (
	ComponentFieldType  ComponentType = "field_type"
	ComponentCustomType ComponentType = "custom_type"
	ComponentApi        ComponentType = "api"
)

// BuilderError is a structured error describing a builder invariant
// violation — a malformed sequence of Start*/End* calls, never a semantic
// problem with the source (those are diagnostic.Diagnostic, not this).
type BuilderError struct {
	Component ComponentType
	Name      string
	Message   string
	Cause     error
}

func (e *BuilderError) Error() string {
	var sb strings.Builder
	sb.WriteString("builder")
	if e.Component != "" {
		sb.WriteString(": ")
		sb.WriteString(string(e.Component))
	}
	if e.Name != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Name)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

func (e *BuilderError) Unwrap() error { return e.Cause }

func (e *BuilderError) Is(target error) bool {
	return target == tmerrors.ErrInvariant
}

func newInvariantError(component ComponentType, name, message string) *BuilderError {
	return &BuilderError{Component: component, Name: name, Message: message}
}

// errNoCurrentField builds the error describing an End* call made without a
// matching Start*. The builders' End* methods do not return it: they ignore
// such a call.
func errNoCurrentField(component ComponentType) *BuilderError {
	return newInvariantError(component, "", fmt.Sprintf("no field currently open on this %s builder", component))
}
