package cst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toolman-lang/toolman/location"
)

type fakeNode struct {
	kind     Kind
	text     string
	rng      location.Range
	children []Node
}

func (f *fakeNode) Kind() Kind            { return f.kind }
func (f *fakeNode) Text() string          { return f.text }
func (f *fakeNode) Range() location.Range { return f.rng }
func (f *fakeNode) Children() []Node      { return f.children }

type recordingListener struct {
	BaseListener
	entered []string
	exited  []string
}

func (r *recordingListener) Enter(n Node) { r.entered = append(r.entered, n.Text()) }
func (r *recordingListener) Exit(n Node)  { r.exited = append(r.exited, n.Text()) }

func TestWalkVisitsDepthFirst(t *testing.T) {
	loc := location.New(1, 1, "t.tm")
	leaf1 := &fakeNode{text: "leaf1", rng: loc}
	leaf2 := &fakeNode{text: "leaf2", rng: loc}
	root := &fakeNode{text: "root", rng: loc, children: []Node{leaf1, leaf2}}

	rec := &recordingListener{}
	Walk(root, rec)

	assert.Equal(t, []string{"root", "leaf1", "leaf2"}, rec.entered)
	assert.Equal(t, []string{"leaf1", "leaf2", "root"}, rec.exited)
}

func TestWalkNilTreeIsNoop(t *testing.T) {
	rec := &recordingListener{}
	assert.NotPanics(t, func() { Walk(nil, rec) })
	assert.Empty(t, rec.entered)
}
