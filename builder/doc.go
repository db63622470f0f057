// Package builder implements the small, stateful assemblers the ref-phase
// walker drives while turning one CST into tmtype/tmapi values:
// FieldTypeBuilder for nested List/Map field types, StructFieldBuilder /
// EnumFieldBuilder / OneofFieldBuilder for custom-type bodies, and
// ApiBuilder for api group/method/path/returns declarations. None of these
// parse source text themselves — they only react to the walker's
// start/end calls, which is what keeps the walker package free of any
// nested-assembly bookkeeping of its own.
package builder
