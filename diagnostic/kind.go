package diagnostic

// Kind identifies the category of a Diagnostic. Values are non-exhaustive;
// new kinds may be added as the semantic layer grows.
type Kind int

const (
	// DuplicateTypeDecl: a struct/enum name was declared more than once.
	DuplicateTypeDecl Kind = iota
	// DuplicateFieldDecl: a field name repeats within one struct/oneof.
	DuplicateFieldDecl
	// DuplicateEnumFieldValue: an enum discriminant value repeats.
	DuplicateEnumFieldValue
	// DuplicatePathParamDecl: a path parameter name repeats within one API.
	DuplicatePathParamDecl
	// MapKeyNotPrimitive: a map field type's key is not a primitive.
	MapKeyNotPrimitive
	// CustomTypeNotFound: a referenced type name has no declaration.
	CustomTypeNotFound
	// RecursiveOneof: a oneof was nested inside another oneof.
	RecursiveOneof
	// UnknownOption: an option statement names an option that isn't built-in.
	UnknownOption
	// OptionTypeMismatch: an option statement's literal doesn't match the
	// option's declared value kind.
	OptionTypeMismatch
	// UnresolvedImport: an import statement's file could not be compiled.
	UnresolvedImport
	// ImportNameNotFound: a selective import name isn't declared in the
	// imported module.
	ImportNameNotFound
	// AmbiguousTypeCasing: a declared type's name differs from an existing
	// one only in case, inviting cross-platform (TS/Java) collisions in
	// generated code. Warning-level; see internal/identname.
	AmbiguousTypeCasing
)

// String returns the kind's identifier name.
func (k Kind) String() string {
	switch k {
	case DuplicateTypeDecl:
		return "DuplicateTypeDecl"
	case DuplicateFieldDecl:
		return "DuplicateFieldDecl"
	case DuplicateEnumFieldValue:
		return "DuplicateEnumFieldValue"
	case DuplicatePathParamDecl:
		return "DuplicatePathParamDecl"
	case MapKeyNotPrimitive:
		return "MapKeyNotPrimitive"
	case CustomTypeNotFound:
		return "CustomTypeNotFound"
	case RecursiveOneof:
		return "RecursiveOneof"
	case UnknownOption:
		return "UnknownOption"
	case OptionTypeMismatch:
		return "OptionTypeMismatch"
	case UnresolvedImport:
		return "UnresolvedImport"
	case ImportNameNotFound:
		return "ImportNameNotFound"
	case AmbiguousTypeCasing:
		return "AmbiguousTypeCasing"
	default:
		return "Unknown"
	}
}

// DefaultLevel returns the level a kind carries unless overridden by the
// caller (all kinds are Fatal except AmbiguousTypeCasing, which is a
// Warning per §3 of the domain-stack expansion).
func (k Kind) DefaultLevel() Level {
	if k == AmbiguousTypeCasing {
		return Warning
	}
	return Fatal
}
