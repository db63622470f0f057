package walker

import (
	"github.com/toolman-lang/toolman/cst"
	"github.com/toolman-lang/toolman/location"
)

// fakeNode is a minimal hand-built cst.Node used to drive the walkers in
// tests without a real lexer/parser.
type fakeNode struct {
	kind     cst.Kind
	text     string
	rng      location.Range
	children []cst.Node
}

func node(kind cst.Kind, text string, children ...cst.Node) *fakeNode {
	return &fakeNode{kind: kind, text: text, rng: location.New(1, 1, "t.tm"), children: children}
}

func (f *fakeNode) Kind() cst.Kind        { return f.kind }
func (f *fakeNode) Text() string          { return f.text }
func (f *fakeNode) Range() location.Range { return f.rng }
func (f *fakeNode) Children() []cst.Node  { return f.children }
