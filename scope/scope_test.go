package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeclareAndLookup(t *testing.T) {
	s := New[int]()
	assert.True(t, s.Declare("a", 1))
	v, ok := s.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestDeclareConflictKeepsFirst(t *testing.T) {
	s := New[int]()
	assert.True(t, s.Declare("a", 1))
	assert.False(t, s.Declare("a", 2))
	v, _ := s.Lookup("a")
	assert.Equal(t, 1, v)
}

func TestLookupMissing(t *testing.T) {
	s := New[int]()
	_, ok := s.Lookup("missing")
	assert.False(t, ok)
}

func TestIterationOrderIsFirstDeclare(t *testing.T) {
	s := New[int]()
	s.Declare("b", 2)
	s.Declare("a", 1)
	s.Declare("b", 99) // rejected, must not move b

	var seen []string
	s.Iterate(func(name string, item int) bool {
		seen = append(seen, name)
		return true
	})
	assert.Equal(t, []string{"b", "a"}, seen)
}

func TestIterateStopsEarly(t *testing.T) {
	s := New[int]()
	s.Declare("a", 1)
	s.Declare("b", 2)
	s.Declare("c", 3)

	var seen []string
	s.Iterate(func(name string, item int) bool {
		seen = append(seen, name)
		return name != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestDeclareAs(t *testing.T) {
	s := New[string]()
	assert.True(t, s.DeclareAs("U", "User"))
	v, ok := s.Lookup("U")
	assert.True(t, ok)
	assert.Equal(t, "User", v)
}

func TestLenAndNames(t *testing.T) {
	s := New[int]()
	s.Declare("a", 1)
	s.Declare("b", 2)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"a", "b"}, s.Names())
}
