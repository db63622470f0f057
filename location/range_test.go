package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	r := New(4, 7, "a.tm")
	assert.Equal(t, 4, r.StartLine)
	assert.Equal(t, 4, r.EndLine)
	assert.Equal(t, 7, r.StartCol)
	assert.Equal(t, 7, r.EndCol)
	assert.Equal(t, "a.tm", r.Source)
}

func TestWithEnd(t *testing.T) {
	r := New(1, 1, "a.tm").WithEnd(3, 9)
	assert.Equal(t, 1, r.StartLine)
	assert.Equal(t, 3, r.EndLine)
	assert.Equal(t, 1, r.StartCol)
	assert.Equal(t, 9, r.EndCol)
}

func TestString(t *testing.T) {
	assert.Equal(t, "a.tm:4:7", New(4, 7, "a.tm").String())
	assert.Equal(t, "4:7", New(4, 7, "").String())
}

func TestIsZero(t *testing.T) {
	var r Range
	assert.True(t, r.IsZero())
	assert.False(t, New(1, 1, "x").IsZero())
}
