package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyKeywordMatch(t *testing.T) {
	tag, themes := Classify("cozy night in with candles")

	assert.Equal(t, "Cozy inspo", tag)
	assert.Contains(t, themes, "night vibes")
}

func TestClassifyCaseInsensitive(t *testing.T) {
	tag, themes := Classify("COZY Night In The CITY")

	assert.Equal(t, "Cozy inspo", tag, "first matching tag rule wins")
	assert.Equal(t, []string{"night vibes"}, themes)
}

func TestClassifyTagPriority(t *testing.T) {
	// "city" and "outfit" both match but the city rule comes first
	tag, _ := Classify("city outfit check")
	assert.Equal(t, "City lights", tag)
}

func TestClassifyDefaults(t *testing.T) {
	for _, note := range []string{"", "completely unrelated text", "   "} {
		tag, themes := Classify(note)
		assert.Equal(t, DefaultTag, tag)
		assert.Equal(t, []string{DefaultTheme}, themes)
	}
}

func TestClassifyThemeDedup(t *testing.T) {
	// "night" and "city" hit the same rule; the theme must appear once
	_, themes := Classify("night city night city")
	assert.Equal(t, []string{"night vibes"}, themes)
}

func TestClassifyThemeOrder(t *testing.T) {
	_, themes := Classify("pastel studio set with beige walls at night")
	assert.Equal(t, []string{"night vibes", "warm neutrals", "soft pastel", "studio shoot"}, themes,
		"themes follow rule declaration order, not note order")
}

func TestClassifyDeterministic(t *testing.T) {
	note := "beige pastel studio look"
	tag1, themes1 := Classify(note)
	tag2, themes2 := Classify(note)

	assert.Equal(t, tag1, tag2)
	assert.Equal(t, themes1, themes2)
}
