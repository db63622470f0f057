package imports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportNameLocalName(t *testing.T) {
	assert.Equal(t, "a", ImportName{Original: "a"}.LocalName())
	assert.Equal(t, "b", ImportName{Original: "a", Alias: "b"}.LocalName())
}

func TestImportBuilderFlush(t *testing.T) {
	b := NewImportBuilder("common.tm")
	b.AddName("Pet", "")
	b.AddName("Toy", "T")

	imp := b.Flush()
	assert.Equal(t, "common.tm", imp.Path)
	assert.False(t, imp.Star)
	assert.Len(t, imp.Names, 2)
	assert.Equal(t, "T", imp.Names[1].LocalName())
}

func TestImportBuilderStar(t *testing.T) {
	b := NewImportBuilder("common.tm")
	b.SetStar()
	imp := b.Flush()
	assert.True(t, imp.Star)
	assert.Empty(t, imp.Names)
}
