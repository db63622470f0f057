// Package tmtype is the Toolman type model: the Primitive / List / Map /
// Struct / Enum / Oneof sum, shared behind the Type interface so fields,
// scopes, and builders can hold any of them uniformly.
//
// List and Map support post-construction mutation of their element/key/value
// types — the builder discovers inner types after creating the outer
// container while walking the CST top-down — via SetElem/SetKey/SetValue. Once
// Freeze is called (done by the builder as the type leaves it), further
// mutation returns an InvariantViolationError rather than silently
// succeeding.
package tmtype

import (
	"github.com/toolman-lang/toolman/location"
	"github.com/toolman-lang/toolman/tmerrors"
)

// Type is the common contract every Toolman type variant implements.
type Type interface {
	// Name returns the type's name. For List, Map, and Oneof this is a
	// synthesized, non-user-facing identifier.
	Name() string

	// Location returns the source range where this type was declared or,
	// for composite types built during field-type parsing, where its
	// outermost token appeared.
	Location() location.Range

	// IsPrimitive, IsEnum, IsStruct, IsList, IsMap, IsOneof are mutually
	// exclusive kind predicates: exactly one returns true for any Type.
	IsPrimitive() bool
	IsEnum() bool
	IsStruct() bool
	IsList() bool
	IsMap() bool
	IsOneof() bool

	// String renders the type's display form (e.g. "i32", "[string]",
	// "{string, i32}", "struct Pet {...}").
	String() string

	// Equal reports structural equality per the rules in the package doc:
	// same variant, and same primitive kind | same element type | same
	// key+value types | same name (struct/enum/oneof).
	Equal(other Type) bool
}

// base centralizes the fields common to every variant and the
// kind-predicate defaults (all false; each variant overrides exactly one).
type base struct {
	name string
	loc  location.Range
}

func (b *base) Name() string            { return b.name }
func (b *base) Location() location.Range { return b.loc }
func (b *base) IsPrimitive() bool        { return false }
func (b *base) IsEnum() bool             { return false }
func (b *base) IsStruct() bool           { return false }
func (b *base) IsList() bool             { return false }
func (b *base) IsMap() bool              { return false }
func (b *base) IsOneof() bool            { return false }

// sameVariant reports whether a and b are the same concrete Type
// implementation, the first test every Equal implementation performs.
func sameVariant(a, b Type) bool {
	switch a.(type) {
	case *PrimitiveType:
		_, ok := b.(*PrimitiveType)
		return ok
	case *ListType:
		_, ok := b.(*ListType)
		return ok
	case *MapType:
		_, ok := b.(*MapType)
		return ok
	case *StructType:
		_, ok := b.(*StructType)
		return ok
	case *EnumType:
		_, ok := b.(*EnumType)
		return ok
	case *OneofType:
		_, ok := b.(*OneofType)
		return ok
	default:
		return false
	}
}

// errFrozen is returned when a builder attempts to mutate a List/Map type
// after it has left the builder and been frozen.
func errFrozen(component string) error {
	return &tmerrors.InvariantViolationError{
		Component: component,
		Message:   "attempted to mutate a type after it was frozen",
	}
}
