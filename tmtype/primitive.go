package tmtype

import "github.com/toolman-lang/toolman/location"

// PrimitiveKind enumerates Toolman's scalar kinds. Any is a superset kept
// from the original compiler's later grammar revisions, for free-form
// fields.
type PrimitiveKind int

const (
	Bool PrimitiveKind = iota
	I32
	U32
	I64
	U64
	Float
	StringKind
	Any
)

// String returns the DSL spelling of the kind, which doubles as the
// PrimitiveType's display name.
func (k PrimitiveKind) String() string {
	switch k {
	case Bool:
		return "bool"
	case I32:
		return "i32"
	case U32:
		return "u32"
	case I64:
		return "i64"
	case U64:
		return "u64"
	case Float:
		return "float"
	case StringKind:
		return "string"
	case Any:
		return "any"
	default:
		return "unknown"
	}
}

// PrimitiveType is a scalar type. Its name is always its kind's spelling.
type PrimitiveType struct {
	base
	Kind PrimitiveKind
}

// NewPrimitive constructs a PrimitiveType of the given kind.
func NewPrimitive(kind PrimitiveKind, loc location.Range) *PrimitiveType {
	return &PrimitiveType{base: base{name: kind.String(), loc: loc}, Kind: kind}
}

func (p *PrimitiveType) IsPrimitive() bool { return true }
func (p *PrimitiveType) String() string    { return p.Kind.String() }

func (p *PrimitiveType) Equal(other Type) bool {
	if !sameVariant(p, other) {
		return false
	}
	return p.Kind == other.(*PrimitiveType).Kind
}
