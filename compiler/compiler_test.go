package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolman-lang/toolman/cst"
	"github.com/toolman-lang/toolman/location"
	"github.com/toolman-lang/toolman/walker"
)

// fakeNode/node mirror the walker package's test doubles — compiler needs
// its own since it drives Parser, not the walker API directly.
type fakeNode struct {
	kind     cst.Kind
	text     string
	children []cst.Node
}

func (f *fakeNode) Kind() cst.Kind            { return f.kind }
func (f *fakeNode) Text() string              { return f.text }
func (f *fakeNode) Range() location.Range     { return location.New(1, 1, "") }
func (f *fakeNode) Children() []cst.Node      { return f.children }

func n(kind cst.Kind, text string, children ...cst.Node) *fakeNode {
	return &fakeNode{kind: kind, text: text, children: children}
}

// fakeParse builds a tiny tree per source file based on its basename,
// standing in for a real lexer/parser: "root.tm" declares Pet with a field
// importing Toy from "other.tm"; "other.tm" declares Toy.
func fakeParse(path string, _ []byte) (cst.Node, error) {
	switch filepath.Base(path) {
	case "other.tm":
		return n(walker.KindDocument, "",
			n(walker.KindStructDecl, "Toy"),
		), nil
	default:
		return n(walker.KindDocument, "",
			n(walker.KindImportStatement, "other.tm",
				n(walker.KindImportName, "Toy"),
			),
			n(walker.KindStructDecl, "Pet",
				n(walker.KindStructField, "toy",
					n(walker.KindCustomTypeName, "Toy"),
				),
			),
		), nil
	}
}

func writeTempFiles(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "root.tm"), []byte("// root"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.tm"), []byte("// other"), 0o644))
	return dir
}

// fakeCycleParse builds a two-file import cycle: "a.tm" declares Foo before
// importing Bar from "b.tm"; "b.tm" imports Foo from "a.tm" before declaring
// Bar. Foo is declared ahead of the back-reference, so a correct
// insert-before-recurse cache must let b.tm's reentrant compile of a.tm see
// Foo already declared, even though a.tm's own walk hasn't finished.
func fakeCycleParse(path string, _ []byte) (cst.Node, error) {
	switch filepath.Base(path) {
	case "b.tm":
		return n(walker.KindDocument, "",
			n(walker.KindImportStatement, "a.tm",
				n(walker.KindImportName, "Foo"),
			),
			n(walker.KindStructDecl, "Bar",
				n(walker.KindStructField, "foo",
					n(walker.KindCustomTypeName, "Foo"),
				),
			),
		), nil
	default:
		return n(walker.KindDocument, "",
			n(walker.KindStructDecl, "Foo"),
			n(walker.KindImportStatement, "b.tm",
				n(walker.KindImportName, "Bar"),
			),
		), nil
	}
}

func TestCompileResolvesImportAndField(t *testing.T) {
	dir := writeTempFiles(t)
	c := New(fakeParse)

	doc, diags, err := c.Compile(filepath.Join(dir, "root.tm"))
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.Len(t, doc.Structs, 1)
	require.Len(t, doc.Structs[0].Fields(), 1)
	assert.Equal(t, "Toy", doc.Structs[0].Fields()[0].Type.Name())
}

func TestCompileMissingRootFileReturnsError(t *testing.T) {
	c := New(fakeParse)
	_, _, err := c.Compile("/nonexistent/root.tm")
	assert.Error(t, err)
}

// TestCompileModuleCacheCycleSeesPartialDeclarations is the regression test
// for the insert-before-recurse cache: b.tm's reentrant compile of a.tm must
// observe Foo, which a.tm declared before the cyclic import point, rather
// than the empty scope a.tm started with.
func TestCompileModuleCacheCycleSeesPartialDeclarations(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.tm"), []byte("// a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.tm"), []byte("// b"), 0o644))

	c := New(fakeCycleParse)
	_, _, err := c.Compile(filepath.Join(dir, "a.tm"))
	require.NoError(t, err)

	aPath := filepath.Clean(filepath.Join(dir, "a.tm"))
	bPath := filepath.Clean(filepath.Join(dir, "b.tm"))

	aMod, ok := c.modules[aPath]
	require.True(t, ok)
	assert.Empty(t, aMod.Diagnostics())

	bMod, ok := c.modules[bPath]
	require.True(t, ok)
	assert.Empty(t, bMod.Diagnostics(), "b.tm's reentrant import of a.tm should see Foo already declared, not emit ImportNameNotFound")

	_, ok = bMod.TypeScope.Lookup("Bar")
	assert.True(t, ok)
}

func TestCompileModuleCacheIsReusedAcrossImports(t *testing.T) {
	dir := writeTempFiles(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "third.tm"), []byte("// third"), 0o644))

	calls := 0
	parse := func(path string, src []byte) (cst.Node, error) {
		calls++
		return fakeParse(path, src)
	}

	c := New(parse)
	_, _, err := c.Compile(filepath.Join(dir, "root.tm"))
	require.NoError(t, err)

	firstCalls := calls
	// Compiling the same root again still parses the root for the ref phase,
	// but its declare-phase module (and so "other.tm") comes from the cache.
	_, _, err = c.Compile(filepath.Join(dir, "root.tm"))
	require.NoError(t, err)
	assert.Less(t, calls-firstCalls, firstCalls, "second compile should parse fewer files thanks to the module cache")
}
