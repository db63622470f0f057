// Package builder holds the three small state machines the ref-phase
// walker drives while it turns a stream of CST enter/exit events into
// linked tmtype/tmapi values: FieldTypeBuilder for nested List/Map field
// types, StructFieldBuilder/EnumFieldBuilder/OneofFieldBuilder for struct,
// enum and oneof bodies, and ApiBuilder for api group/method/path/returns
// declarations.
package builder

import (
	"github.com/toolman-lang/toolman/diagnostic"
	"github.com/toolman-lang/toolman/tmtype"
)

// FieldPosition identifies where, relative to the composite type currently
// on top of the stack, the next resolved type belongs.
type FieldPosition int

const (
	Top FieldPosition = iota
	ListElement
	MapKey
	MapValue
)

// FieldTypeBuilder assembles a (possibly deeply nested) List/Map/Primitive/
// CustomTypeName field type out of the linear enter/exit event stream the
// ref-phase walker emits while it walks one FieldType production.
type FieldTypeBuilder struct {
	stack         []tmtype.Type // List or Map nodes currently being filled
	currentSingle tmtype.Type
	position      FieldPosition
	diags         *diagnostic.Bag
}

// NewFieldTypeBuilder creates a builder that reports invariant violations
// (a map key that turns out not to be primitive) into diags.
func NewFieldTypeBuilder(diags *diagnostic.Bag) *FieldTypeBuilder {
	return &FieldTypeBuilder{diags: diags, position: Top}
}

// SetPosition is called by the walker on entering a position node (the
// element slot of a List, or the key/value slot of a Map) to steer the
// next StartType call.
func (b *FieldTypeBuilder) SetPosition(p FieldPosition) {
	b.position = p
}

// StartType is called with every resolved type the walker produces,
// whether a freshly-pushed List/Map shell, a Primitive, or a resolved
// CustomTypeName. It wires t into whatever composite is on top of the
// stack, pushes it if t is itself a List or Map awaiting its own contents,
// and otherwise records it as the completed single type.
func (b *FieldTypeBuilder) StartType(t tmtype.Type) {
	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		switch b.position {
		case ListElement:
			if l, ok := top.(*tmtype.ListType); ok {
				_ = l.SetElem(t)
			}
		case MapKey:
			if m, ok := top.(*tmtype.MapType); ok {
				prim, isPrim := t.(*tmtype.PrimitiveType)
				if !isPrim {
					b.diags.Push(diagnostic.NewMapKeyNotPrimitive(t.String(), t.Location()))
				} else {
					_ = m.SetKey(prim)
				}
			}
		case MapValue:
			if m, ok := top.(*tmtype.MapType); ok {
				_ = m.SetValue(t)
			}
		}
	}

	switch t.(type) {
	case *tmtype.ListType, *tmtype.MapType:
		b.stack = append(b.stack, t)
	default:
		if len(b.stack) == 0 {
			b.currentSingle = t
		}
	}
}

// EndMapOrList pops the composite on top of the stack (freezing it) and,
// if the stack is now empty, returns it as the completed field type.
func (b *FieldTypeBuilder) EndMapOrList() tmtype.Type {
	if len(b.stack) == 0 {
		return nil
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	switch c := top.(type) {
	case *tmtype.ListType:
		c.Freeze()
	case *tmtype.MapType:
		c.Freeze()
	}

	if len(b.stack) == 0 {
		return top
	}
	return nil
}

// EndSingle returns the last non-composite type seen, but only once the
// stack has fully unwound — a single type nested inside a List/Map was
// already stitched into its parent by StartType and has nothing left to
// return here.
func (b *FieldTypeBuilder) EndSingle() tmtype.Type {
	if len(b.stack) != 0 {
		return nil
	}
	return b.currentSingle
}
