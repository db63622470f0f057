package tmtype

import (
	"strconv"
	"sync/atomic"

	"github.com/toolman-lang/toolman/location"
)

var listSeq int64

// ListType is `[T]`. Its element type is set after construction by the
// FieldTypeBuilder as it discovers the inner type while walking the CST,
// then frozen.
type ListType struct {
	base
	elem   Type
	frozen bool
}

// NewList constructs an empty ListType with a synthesized, unique name;
// SetElem must be called (typically once) before the builder freezes it.
func NewList(loc location.Range) *ListType {
	n := atomic.AddInt64(&listSeq, 1)
	return &ListType{base: base{name: syntheticName("list", n), loc: loc}}
}

func (l *ListType) IsList() bool { return true }

// Elem returns the element type, which may be nil if SetElem has not yet
// been called (only possible while the builder is still assembling it).
func (l *ListType) Elem() Type { return l.elem }

// SetElem sets the element type. Returns an error if the list has already
// been frozen.
func (l *ListType) SetElem(t Type) error {
	if l.frozen {
		return errFrozen("tmtype.ListType")
	}
	l.elem = t
	return nil
}

// Freeze marks the list immutable; called by the builder once the type
// leaves it.
func (l *ListType) Freeze() { l.frozen = true }

func (l *ListType) String() string {
	if l.elem == nil {
		return "[]"
	}
	return "[" + l.elem.String() + "]"
}

func (l *ListType) Equal(other Type) bool {
	if !sameVariant(l, other) {
		return false
	}
	o := other.(*ListType)
	if l.elem == nil || o.elem == nil {
		return l.elem == o.elem
	}
	return l.elem.Equal(o.elem)
}

// syntheticName builds a stable-within-process, non-user-facing name for
// anonymous composite types (List/Map/Oneof).
func syntheticName(prefix string, n int64) string {
	return prefix + "#" + strconv.FormatInt(n, 10)
}
