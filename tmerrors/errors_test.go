package tmerrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileNotFoundErrorIs(t *testing.T) {
	err := &FileNotFoundError{Path: "a.tm"}
	assert.True(t, errors.Is(err, ErrFileNotFound))
	assert.False(t, errors.Is(err, ErrInvariant))
	assert.Contains(t, err.Error(), "a.tm")
}

func TestFileNotFoundErrorUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := &FileNotFoundError{Path: "a.tm", Cause: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestInvariantViolationErrorIs(t *testing.T) {
	err := &InvariantViolationError{Component: "scope", Message: "lookup after declare returned false"}
	assert.True(t, errors.Is(err, ErrInvariant))
	assert.Contains(t, err.Error(), "scope")
	assert.Contains(t, err.Error(), "lookup after declare returned false")
}

func TestInvariantViolationErrorNoComponent(t *testing.T) {
	err := &InvariantViolationError{Message: "unreachable"}
	assert.Equal(t, "internal invariant violation: unreachable", err.Error())
}
