package tmtype

import "github.com/toolman-lang/toolman/location"

// Field is a named, typed member of a Struct or Oneof. Field names are
// unique within their owning custom type (enforced by StructType.AppendField
// and OneofType.AppendField).
type Field struct {
	Name        string
	Type        Type
	Optional    bool
	Location    location.Range
	DocComments []string
}
