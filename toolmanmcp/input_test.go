package toolmanmcp

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceInputResolveFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/x.tm"
	require.NoError(t, os.WriteFile(path, []byte("struct X {}"), 0o644))

	resolved, cleanup, err := sourceInput{File: path}.resolve()
	require.NoError(t, err)
	defer cleanup()
	assert.Equal(t, path, resolved)
}

func TestSourceInputResolveContentWritesTempFile(t *testing.T) {
	resolved, cleanup, err := sourceInput{Content: "struct X {}"}.resolve()
	require.NoError(t, err)
	defer cleanup()

	body, err := os.ReadFile(resolved)
	require.NoError(t, err)
	assert.Equal(t, "struct X {}", string(body))
}

func TestSourceInputResolveRejectsNeitherOrBoth(t *testing.T) {
	_, _, err := sourceInput{}.resolve()
	assert.Error(t, err)

	_, _, err = sourceInput{File: "a.tm", Content: "b"}.resolve()
	assert.Error(t, err)
}

func TestSourceInputResolveRejectsOversizedContent(t *testing.T) {
	cfg.MaxInlineSize = 4
	defer func() { cfg.MaxInlineSize = 1 << 20 }()

	_, _, err := sourceInput{Content: "too long"}.resolve()
	assert.Error(t, err)
}
