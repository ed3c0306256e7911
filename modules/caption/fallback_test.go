package caption

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackCaptionPerTone(t *testing.T) {
	cases := []struct {
		tone        string
		wantCaption string
		wantTags    string
	}{
		{ToneFunny, "Just sunset things 😂", "#funny #meme #lol #creatiq"},
		{ToneMinimal, "sunset", "#minimal #clean #aesthetic #creatiq"},
		{ToneBold, "SUNSET ✨", "#bold #statement #creatiq"},
		{ToneAesthetic, "Soft sunset vibes", "#aesthetic #vibes #creatiq"},
	}

	for _, tc := range cases {
		t.Run(tc.tone, func(t *testing.T) {
			result := FallbackCaption("sunset", tc.tone)
			assert.Equal(t, tc.wantCaption, result.Caption)
			assert.Equal(t, tc.wantTags, result.Hashtags)
		})
	}
}

func TestFallbackCaptionUnknownToneUsesDefault(t *testing.T) {
	result := FallbackCaption("coffee", "mysterious")
	assert.Equal(t, FallbackCaption("coffee", ToneAesthetic), result)
}

func TestFallbackCaptionToneNormalized(t *testing.T) {
	assert.Equal(t, FallbackCaption("coffee", ToneBold), FallbackCaption("coffee", "  BOLD "))
}

func TestFallbackCaptionTrimsTopic(t *testing.T) {
	result := FallbackCaption("  sunset  ", ToneMinimal)
	assert.Equal(t, "sunset", result.Caption)
}

func TestFallbackCaptionDeterministic(t *testing.T) {
	first := FallbackCaption("beach day", ToneFunny)
	second := FallbackCaption("beach day", ToneFunny)
	assert.Equal(t, first, second)
}

func TestFallbackScript(t *testing.T) {
	result := FallbackScript(" morning routine ")

	assert.Contains(t, result.Script, `"morning routine"`)
	assert.Equal(t, 5, strings.Count(result.Script, "Shot "), "script template has five shots")
	assert.NotEmpty(t, result.ShootingSuggestions)

	assert.Equal(t, result, FallbackScript("morning routine"), "idea is trimmed before templating")
}
