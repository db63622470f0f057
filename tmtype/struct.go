package tmtype

import "github.com/toolman-lang/toolman/location"

// StructType is a `struct Name { ... }` declaration. Declared empty by the
// declare phase and populated field-by-field by the ref phase via
// AppendField.
type StructType struct {
	base
	IsPublic bool
	fields   []Field
}

// NewStruct constructs an empty, named struct shell — what the declare
// phase inserts into the type scope before any field is resolved.
func NewStruct(name string, isPublic bool, loc location.Range) *StructType {
	return &StructType{base: base{name: name, loc: loc}, IsPublic: isPublic}
}

func (s *StructType) IsStruct() bool { return true }

// Fields returns the declared fields in declaration order.
func (s *StructType) Fields() []Field { return s.fields }

// FieldByName returns the field with the given name, if any.
func (s *StructType) FieldByName(name string) (Field, bool) {
	for _, f := range s.fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// AppendField adds f, returning false without modifying the struct if a
// field with the same name is already present.
func (s *StructType) AppendField(f Field) bool {
	if _, exists := s.FieldByName(f.Name); exists {
		return false
	}
	s.fields = append(s.fields, f)
	return true
}

func (s *StructType) String() string {
	out := "struct " + s.name + " {"
	for i, f := range s.fields {
		if i > 0 {
			out += ", "
		}
		typeStr := "?"
		if f.Type != nil {
			typeStr = f.Type.String()
		}
		out += f.Name + ": " + typeStr
	}
	return out + "}"
}

// Equal compares struct types by name only, per the base spec's kept
// open-question behavior: within one scope names are unique by
// construction, so this is sound there, but two differently-shaped
// structs with the same name from different scopes would compare equal.
func (s *StructType) Equal(other Type) bool {
	if !sameVariant(s, other) {
		return false
	}
	return s.name == other.(*StructType).name
}
