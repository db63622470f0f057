package toolmanmcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearToolmanEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TOOLMAN_MAX_IMPORT_DEPTH", "TOOLMAN_MAX_INLINE_SIZE"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearToolmanEnv(t)
	c := loadConfig()
	assert.Equal(t, 64, c.MaxImportDepth)
	assert.EqualValues(t, 1<<20, c.MaxInlineSize)
}

func TestLoadConfigHonorsEnvOverrides(t *testing.T) {
	clearToolmanEnv(t)
	t.Setenv("TOOLMAN_MAX_IMPORT_DEPTH", "8")
	c := loadConfig()
	assert.Equal(t, 8, c.MaxImportDepth)
}

func TestLoadConfigFallsBackOnInvalidValue(t *testing.T) {
	clearToolmanEnv(t)
	t.Setenv("TOOLMAN_MAX_IMPORT_DEPTH", "not-a-number")
	c := loadConfig()
	assert.Equal(t, 64, c.MaxImportDepth)
}
