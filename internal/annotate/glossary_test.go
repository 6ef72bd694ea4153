package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlossary_Lookup(t *testing.T) {
	g := DefaultGlossary()

	explanation, ok := g.Lookup("Tajweed")
	assert.True(t, ok)
	assert.Equal(t, "Rules of Quranic recitation", explanation)

	_, ok = g.Lookup("tajweed")
	assert.False(t, ok, "lookup must be case sensitive")

	_, ok = g.Lookup(" Tajweed")
	assert.False(t, ok, "lookup must not trim")

	assert.Equal(t, 5, g.Len())
	assert.Equal(t, []string{"Ijazah", "Makharij", "Qira'at", "Sanad-Verified", "Tajweed"}, g.Terms())
}

func TestNewGlossary_CopiesInput(t *testing.T) {
	entries := map[string]string{"Hifz": "Memorisation of the Quran"}
	g := NewGlossary(entries)

	entries["Hifz"] = "changed"
	entries["Extra"] = "added"

	explanation, ok := g.Lookup("Hifz")
	assert.True(t, ok)
	assert.Equal(t, "Memorisation of the Quran", explanation)
	_, ok = g.Lookup("Extra")
	assert.False(t, ok)
}

func TestGlossary_ZeroValue(t *testing.T) {
	var g Glossary
	_, ok := g.Lookup("anything")
	assert.False(t, ok)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Terms())
}
