// Package optvalidate holds the small option-value validation helper the
// ref-phase walker uses when it resolves an `option name = value` statement
// against the option's declared kind.
package optvalidate

import "github.com/toolman-lang/toolman/tmoption"

// MatchesKind reports whether a literal of kind lit can be assigned to an
// option declared as decl. Toolman's three option kinds (bool, numeric,
// string) never coerce between each other — the literal grammar itself
// already distinguishes them, so this is an exact match, not a numeric
// widening check.
func MatchesKind(decl, lit tmoption.Kind) bool {
	return decl == lit
}
