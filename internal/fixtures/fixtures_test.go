package fixtures

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMaterializesFilesAndReturnsRootPath(t *testing.T) {
	rootPath := Load(t, "../../testdata/selective_import_alias.txtar", "root.tm")

	body, err := os.ReadFile(rootPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "import Toy as Plaything")
}

func TestMustParseReadsArchive(t *testing.T) {
	arc, err := MustParse("../../testdata/selective_import_alias.txtar")
	require.NoError(t, err)
	require.NotEmpty(t, arc.Files)
}
