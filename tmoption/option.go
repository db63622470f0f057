// Package tmoption models Toolman's `option name = value` build options: a
// pre-declared built-in set, each with a fixed value kind, that back-end
// code generators read as hints (e.g. the Java back end's handling of
// optional fields and its package name).
package tmoption

import "github.com/toolman-lang/toolman/location"

// Kind is the tagged value kind an Option holds.
type Kind int

const (
	Bool Kind = iota
	Numeric
	String
)

func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Numeric:
		return "numeric"
	case String:
		return "string"
	default:
		return "unknown"
	}
}

// Option is a single compile-time build option with a tagged value. Only
// one of BoolValue/NumericValue/StringValue is meaningful, selected by
// Kind.
type Option struct {
	Name         string
	Kind         Kind
	BoolValue    bool
	NumericValue float64
	StringValue  string
	Location     location.Range
}

// IsBool, IsNumeric, IsString report the option's declared value kind.
func (o *Option) IsBool() bool    { return o.Kind == Bool }
func (o *Option) IsNumeric() bool { return o.Kind == Numeric }
func (o *Option) IsString() bool  { return o.Kind == String }

// Builtin returns a fresh copy of the named built-in option with its
// default value, or (nil, false) if name isn't a recognised built-in.
// Copies are returned so each module's option scope owns an independent
// instance to mutate when a matching `option` statement is resolved.
func Builtin(name string) (*Option, bool) {
	def, ok := builtins[name]
	if !ok {
		return nil, false
	}
	cp := def
	return &cp, true
}

// Builtins returns the names of all pre-declared built-in options, in a
// stable order, for seeding a fresh option scope.
func Builtins() []string {
	return []string{"use_java8_optional", "java_package"}
}

var builtins = map[string]Option{
	"use_java8_optional": {Name: "use_java8_optional", Kind: Bool, BoolValue: false},
	"java_package":       {Name: "java_package", Kind: String, StringValue: ""},
}
