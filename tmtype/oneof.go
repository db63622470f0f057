package tmtype

import (
	"sync/atomic"

	"github.com/toolman-lang/toolman/location"
)

var oneofSeq int64

// OneofType is an anonymous tagged union: `oneof { ... }`, only ever found
// as the type of a single struct field. Oneofs do not nest — the ref phase
// rejects a oneof found while already inside one and emits RecursiveOneof.
type OneofType struct {
	base
	fields []Field
}

// NewOneof constructs an empty oneof shell with a synthesized name.
func NewOneof(loc location.Range) *OneofType {
	n := atomic.AddInt64(&oneofSeq, 1)
	return &OneofType{base: base{name: syntheticName("oneof", n), loc: loc}}
}

func (o *OneofType) IsOneof() bool { return true }

// Fields returns the declared arms in declaration order.
func (o *OneofType) Fields() []Field { return o.fields }

// FieldByName returns the arm with the given name, if any.
func (o *OneofType) FieldByName(name string) (Field, bool) {
	for _, f := range o.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// AppendField adds f, returning false without modifying the oneof if a
// field with the same name is already present.
func (o *OneofType) AppendField(f Field) bool {
	if _, exists := o.FieldByName(f.Name); exists {
		return false
	}
	o.fields = append(o.fields, f)
	return true
}

func (o *OneofType) String() string {
	out := "oneof("
	for i, f := range o.fields {
		if i > 0 {
			out += ", "
		}
		typeStr := "?"
		if f.Type != nil {
			typeStr = f.Type.String()
		}
		out += f.Name + ": " + typeStr
	}
	return out + ")"
}

// Equal compares oneof types by (synthesized) name, consistent with
// struct/enum, though in practice two distinct oneofs never share one.
func (o *OneofType) Equal(other Type) bool {
	if !sameVariant(o, other) {
		return false
	}
	return o.name == other.(*OneofType).name
}
