package analysis

import (
	"strings"
	"testing"

	"shortspro/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeStructure(t *testing.T) {
	s := NewSynthesizer(42)

	for _, category := range types.CategoryOrder {
		for i := 0; i < 20; i++ {
			title, hashtags := s.Synthesize(category, "Epic mountain biking adventure", "riding trails all day")

			assert.NotEmpty(t, title)
			assert.LessOrEqual(t, len([]rune(title)), maxTitleRunes)

			assert.NotEmpty(t, hashtags)
			assert.LessOrEqual(t, len(hashtags), maxHashtags)
			for _, tag := range hashtags {
				assert.True(t, strings.HasPrefix(tag, "#"), "hashtag %q must start with #", tag)
				pool := append(categoryHashtags[category], platformHashtags...)
				assert.Contains(t, pool, tag, "hashtag must come from the declared pools")
			}
		}
	}
}

func TestSynthesizeHashtagsUnique(t *testing.T) {
	s := NewSynthesizer(7)
	_, hashtags := s.Synthesize(types.CategoryGeneral, "something", "")

	seen := map[string]bool{}
	for _, tag := range hashtags {
		assert.False(t, seen[tag], "duplicate hashtag %q", tag)
		seen[tag] = true
	}
}

func TestSynthesizeSeededIsReproducible(t *testing.T) {
	a := NewSynthesizer(99)
	b := NewSynthesizer(99)

	for i := 0; i < 10; i++ {
		titleA, tagsA := a.Synthesize(types.CategoryGaming, "Minecraft speedrun world record", "")
		titleB, tagsB := b.Synthesize(types.CategoryGaming, "Minecraft speedrun world record", "")
		assert.Equal(t, titleA, titleB)
		assert.Equal(t, tagsA, tagsB)
	}
}

func TestSynthesizeUsesDominantKeyword(t *testing.T) {
	s := NewSynthesizer(1)
	title, _ := s.Synthesize(types.CategoryGaming,
		"minecraft minecraft minecraft", "building in minecraft")
	assert.Contains(t, strings.ToLower(title), "minecraft")
}

func TestSynthesizeFallsBackWithoutContentWords(t *testing.T) {
	s := NewSynthesizer(3)
	// Only stop-words and short tokens: keyword must come from the fallback set.
	title, _ := s.Synthesize(types.CategoryGeneral, "a is of this that with", "")
	assert.NotEmpty(t, title)

	lower := strings.ToLower(title)
	found := false
	for _, fallback := range fallbackKeywords {
		if strings.Contains(lower, fallback) {
			found = true
			break
		}
	}
	assert.True(t, found, "title %q should contain a fallback keyword", title)
}

func TestSynthesizeTruncatesLongTitles(t *testing.T) {
	s := NewSynthesizer(5)
	longWord := strings.Repeat("supercalifragilistic", 5)
	title, _ := s.Synthesize(types.CategoryGeneral, longWord+" "+longWord, "")
	assert.LessOrEqual(t, len([]rune(title)), maxTitleRunes)
}
