package tmtype

import "github.com/toolman-lang/toolman/location"

// EnumField is a single `name = value` member of an Enum. Values must be
// globally unique within the owning enum (enforced by Enum.AppendField).
type EnumField struct {
	Name        string
	Value       int32
	Location    location.Range
	DocComments []string
}
