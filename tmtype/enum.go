package tmtype

import (
	"strconv"

	"github.com/toolman-lang/toolman/location"
)

// EnumType is an `enum Name { ... }` declaration.
type EnumType struct {
	base
	IsPublic bool
	fields   []EnumField
}

// NewEnum constructs an empty, named enum shell.
func NewEnum(name string, isPublic bool, loc location.Range) *EnumType {
	return &EnumType{base: base{name: name, loc: loc}, IsPublic: isPublic}
}

func (e *EnumType) IsEnum() bool { return true }

// Fields returns the declared enum fields in declaration order.
func (e *EnumType) Fields() []EnumField { return e.fields }

// HasValue reports whether value is already used by a field in this enum.
func (e *EnumType) HasValue(value int32) bool {
	for _, f := range e.fields {
		if f.Value == value {
			return true
		}
	}
	return false
}

// FieldByName returns the field with the given name, if any.
func (e *EnumType) FieldByName(name string) (EnumField, bool) {
	for _, f := range e.fields {
		if f.Name == name {
			return f, true
		}
	}
	return EnumField{}, false
}

// AppendField adds f, returning false without modifying the enum if its
// value is already used by another field. Field names are not checked for
// duplication here — the grammar guarantees unique identifiers per block
// the way the declare phase already guarantees unique type names; only the
// discriminant value needs the runtime check (base spec §4.10).
func (e *EnumType) AppendField(f EnumField) bool {
	if e.HasValue(f.Value) {
		return false
	}
	e.fields = append(e.fields, f)
	return true
}

func (e *EnumType) String() string {
	out := "enum " + e.name + " {"
	for i, f := range e.fields {
		if i > 0 {
			out += ", "
		}
		out += f.Name + " = " + strconv.FormatInt(int64(f.Value), 10)
	}
	return out + "}"
}

// Equal compares enum types by name only (see StructType.Equal).
func (e *EnumType) Equal(other Type) bool {
	if !sameVariant(e, other) {
		return false
	}
	return e.name == other.(*EnumType).name
}
