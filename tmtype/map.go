package tmtype

import (
	"sync/atomic"

	"github.com/toolman-lang/toolman/location"
)

var mapSeq int64

// MapType is `{K, V}`. In Toolman, K is always required to be a primitive
// type — enforced by the ref-phase walker, which emits MapKeyNotPrimitive
// rather than rejecting construction here, since a best-effort Document is
// still produced when a diagnostic fires.
type MapType struct {
	base
	key    *PrimitiveType
	value  Type
	frozen bool
}

// NewMap constructs an empty MapType with a synthesized name.
func NewMap(loc location.Range) *MapType {
	n := atomic.AddInt64(&mapSeq, 1)
	return &MapType{base: base{name: syntheticName("map", n), loc: loc}}
}

func (m *MapType) IsMap() bool { return true }

// Key returns the key type, or nil if not yet set.
func (m *MapType) Key() *PrimitiveType { return m.key }

// Value returns the value type, or nil if not yet set.
func (m *MapType) Value() Type { return m.value }

// SetKey sets the map's key type. Returns an error if frozen.
func (m *MapType) SetKey(k *PrimitiveType) error {
	if m.frozen {
		return errFrozen("tmtype.MapType")
	}
	m.key = k
	return nil
}

// SetValue sets the map's value type. Returns an error if frozen.
func (m *MapType) SetValue(v Type) error {
	if m.frozen {
		return errFrozen("tmtype.MapType")
	}
	m.value = v
	return nil
}

// Freeze marks the map immutable.
func (m *MapType) Freeze() { m.frozen = true }

func (m *MapType) String() string {
	keyStr, valStr := "?", "?"
	if m.key != nil {
		keyStr = m.key.String()
	}
	if m.value != nil {
		valStr = m.value.String()
	}
	return "{" + keyStr + ", " + valStr + "}"
}

func (m *MapType) Equal(other Type) bool {
	if !sameVariant(m, other) {
		return false
	}
	o := other.(*MapType)
	if (m.key == nil) != (o.key == nil) {
		return false
	}
	if m.key != nil && !m.key.Equal(o.key) {
		return false
	}
	if (m.value == nil) != (o.value == nil) {
		return false
	}
	if m.value == nil {
		return true
	}
	return m.value.Equal(o.value)
}
