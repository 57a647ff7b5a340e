package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDataIntegrity(t *testing.T) {
	require.Len(t, seedCategories, 2)
	assert.Equal(t, "Цвета", seedCategories[0].name)
	assert.Equal(t, "Местоимения", seedCategories[1].name)

	seen := make(map[string]bool)
	for _, cat := range seedCategories {
		require.NotEmpty(t, cat.words, "category %q has no words", cat.name)
		for _, w := range cat.words {
			key := strings.ToLower(w.original)
			assert.False(t, seen[key], "duplicate seed word %q", w.original)
			seen[key] = true

			assert.NotEmpty(t, w.example, "word %q has no example", w.original)
			require.NotEmpty(t, w.translations, "word %q has no translations", w.original)
			for _, tr := range w.translations {
				assert.NotEmpty(t, tr)
			}
		}
	}

	// 10 colors + 7 pronouns
	assert.Len(t, seedCategories[0].words, 10)
	assert.Len(t, seedCategories[1].words, 7)
}
