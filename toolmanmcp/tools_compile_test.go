package toolmanmcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toolman-lang/toolman/cst"
	"github.com/toolman-lang/toolman/location"
	"github.com/toolman-lang/toolman/walker"
)

type fakeNode struct {
	kind     cst.Kind
	text     string
	children []cst.Node
}

func (f *fakeNode) Kind() cst.Kind        { return f.kind }
func (f *fakeNode) Text() string          { return f.text }
func (f *fakeNode) Range() location.Range { return location.New(1, 1, "") }
func (f *fakeNode) Children() []cst.Node  { return f.children }

func n(kind cst.Kind, text string, children ...cst.Node) *fakeNode {
	return &fakeNode{kind: kind, text: text, children: children}
}

func fakeParse(_ string, _ []byte) (cst.Node, error) {
	return n(walker.KindDocument, "",
		n(walker.KindStructDecl, "Pet",
			n(walker.KindStructField, "id",
				n(walker.KindPrimitiveType, "i64"),
			),
		),
	), nil
}

func TestHandleCompileInlineContentSucceeds(t *testing.T) {
	activeParse = fakeParse
	input := compileInput{Source: sourceInput{Content: "struct Pet { id: i64 }"}}

	result, output, err := handleCompile(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)
	assert.True(t, output.Success)
	assert.Empty(t, output.Diagnostics)
	assert.Contains(t, output.Document, "Pet")
}

func TestHandleCompileRejectsAmbiguousSource(t *testing.T) {
	activeParse = fakeParse
	input := compileInput{Source: sourceInput{File: "a.tm", Content: "b"}}

	result, _, err := handleCompile(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestHandleCompileMissingFileReportsError(t *testing.T) {
	activeParse = fakeParse
	input := compileInput{Source: sourceInput{File: "/nonexistent/missing.tm"}}

	result, _, err := handleCompile(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
