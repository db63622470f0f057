// Package identname normalizes and compares Toolman type identifiers. The
// declare phase runs every new type name through Normalize before it
// touches the type scope, and through CasingConflict against the names
// already declared, so that visually identical-but-differently-encoded
// identifiers (combining marks written in a different order) are treated
// as the same name, and names that differ only in case are still declared
// distinctly but flagged.
package identname

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var fold = cases.Fold()

// Normalize returns name in Unicode Normalization Form C, the form every
// type name is declared and looked up under.
func Normalize(name string) string {
	return norm.NFC.String(name)
}

// CasingConflict reports whether name and existing are the same identifier
// once case is folded, but not identical as written — the condition the
// declare phase reports as AmbiguousTypeCasing rather than silently
// accepting as a distinct declaration. Case folding goes through
// golang.org/x/text/cases rather than strings.EqualFold so casing
// equivalence for non-ASCII identifiers follows the same Unicode tables as
// Normalize, instead of ASCII-centric stdlib case folding.
func CasingConflict(name, existing string) bool {
	if name == existing {
		return false
	}
	return fold.String(name) == fold.String(existing)
}
