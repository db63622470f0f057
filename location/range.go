// Package location carries source positions through the compiler.
//
// Every declared entity (type, field, enum value, option, API) and every
// diagnostic is stamped with a Range so downstream consumers — the
// diagnostic renderer, an editor integration, a code generator emitting
// `//line` directives — can point back at the Toolman source that produced
// them.
package location

import "fmt"

// Range is the source span of a declared entity, equivalent to the
// original compiler's StmtInfo: a start/end line pair, a start/end column
// pair, and the source file the span belongs to.
type Range struct {
	StartLine int
	EndLine   int
	StartCol  int
	EndCol    int
	Source    string
}

// New builds a single-point range (start == end) at the given position.
func New(line, col int, source string) Range {
	return Range{StartLine: line, EndLine: line, StartCol: col, EndCol: col, Source: source}
}

// WithEnd returns a copy of r with its end line/column set.
func (r Range) WithEnd(endLine, endCol int) Range {
	r.EndLine = endLine
	r.EndCol = endCol
	return r
}

// String renders "source:startLine:startCol" for use in diagnostic output.
func (r Range) String() string {
	if r.Source == "" {
		return fmt.Sprintf("%d:%d", r.StartLine, r.StartCol)
	}
	return fmt.Sprintf("%s:%d:%d", r.Source, r.StartLine, r.StartCol)
}

// IsZero reports whether r carries no position information.
func (r Range) IsZero() bool {
	return r == Range{}
}
