package diagnostic

import (
	"fmt"

	"github.com/toolman-lang/toolman/location"
)

// Diagnostic is a single semantic or syntactic problem found while
// compiling a Toolman source file. Diagnostics never interrupt the
// declare/ref walk; they accumulate in a Bag and are returned alongside
// the best-effort Document.
type Diagnostic struct {
	Kind     Kind
	Level    Level
	Message  string
	Location location.Range
}

// String renders "level: message (location)".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (%s)", d.Level, d.Message, d.Location)
}

// New builds a Diagnostic at the kind's default level.
func New(kind Kind, message string, loc location.Range) Diagnostic {
	return Diagnostic{Kind: kind, Level: kind.DefaultLevel(), Message: message, Location: loc}
}

// The constructors below render the default messages specified for each
// diagnostic kind. Callers that want custom wording can build a Diagnostic
// literal directly; these exist so the common path never has to repeat the
// exact wording (including the original compiler's deliberately repeated
// type name in OptionTypeMismatch, kept verbatim per §9 of the base spec).

// NewDuplicateTypeDecl: "A type <T> has been defined more than once."
func NewDuplicateTypeDecl(typeDesc string, loc location.Range) Diagnostic {
	return New(DuplicateTypeDecl, fmt.Sprintf("A type %s has been defined more than once.", typeDesc), loc)
}

// NewMapKeyNotPrimitive: "The key of the map must be a primitive type. give <T>"
func NewMapKeyNotPrimitive(keyTypeDesc string, loc location.Range) Diagnostic {
	return New(MapKeyNotPrimitive, fmt.Sprintf("The key of the map must be a primitive type. give %s", keyTypeDesc), loc)
}

// NewCustomTypeNotFound: "cannot find type `<N>`"
func NewCustomTypeNotFound(name string, loc location.Range) Diagnostic {
	return New(CustomTypeNotFound, fmt.Sprintf("cannot find type `%s`", name), loc)
}

// NewDuplicateFieldDecl: "field `<N>` is already declared"
func NewDuplicateFieldDecl(name string, loc location.Range) Diagnostic {
	return New(DuplicateFieldDecl, fmt.Sprintf("field `%s` is already declared", name), loc)
}

// NewDuplicatePathParamDecl: "path parameter `<N>` is already declared"
func NewDuplicatePathParamDecl(name string, loc location.Range) Diagnostic {
	return New(DuplicatePathParamDecl, fmt.Sprintf("path parameter `%s` is already declared", name), loc)
}

// NewDuplicateEnumFieldValue: "discriminant value `<V>` already exists"
func NewDuplicateEnumFieldValue(value int32, loc location.Range) Diagnostic {
	return New(DuplicateEnumFieldValue, fmt.Sprintf("discriminant value `%d` already exists", value), loc)
}

// NewRecursiveOneof: "oneof type does not allow recursion"
func NewRecursiveOneof(loc location.Range) Diagnostic {
	return New(RecursiveOneof, "oneof type does not allow recursion", loc)
}

// NewUnknownOption: `Option "<N>" unknown.`
func NewUnknownOption(name string, loc location.Range) Diagnostic {
	return New(UnknownOption, fmt.Sprintf("Option %q unknown.", name), loc)
}

// NewOptionTypeMismatch: `Value must be <T> for <T> option "<N>".`
// The type name is intentionally rendered twice, preserving the original
// compiler's message verbatim (see SPEC_FULL.md §8, open question 2).
func NewOptionTypeMismatch(typeName, optionName string, loc location.Range) Diagnostic {
	return New(OptionTypeMismatch, fmt.Sprintf("Value must be %s for %s option %q.", typeName, typeName, optionName), loc)
}

// NewUnresolvedImport: "ModuleNotFoundError: unresolved import `<F>`"
func NewUnresolvedImport(file string, loc location.Range) Diagnostic {
	return New(UnresolvedImport, fmt.Sprintf("ModuleNotFoundError: unresolved import `%s`", file), loc)
}

// NewImportNameNotFound: "ImportError: cannot import name `<N>` from `<F>`"
func NewImportNameNotFound(name, file string, loc location.Range) Diagnostic {
	return New(ImportNameNotFound, fmt.Sprintf("ImportError: cannot import name `%s` from `%s`", name, file), loc)
}

// NewAmbiguousTypeCasing warns that name and existing differ only in case.
func NewAmbiguousTypeCasing(name, existing string, loc location.Range) Diagnostic {
	return New(AmbiguousTypeCasing, fmt.Sprintf("type name `%s` differs from `%s` only in case", name, existing), loc)
}

// HasFatal reports whether any diagnostic in diags is at Fatal level.
func HasFatal(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Level == Fatal {
			return true
		}
	}
	return false
}
