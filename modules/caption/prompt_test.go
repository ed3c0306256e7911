package caption

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCaptionPrompt(t *testing.T) {
	prompt := BuildCaptionPrompt(CaptionRequest{
		Topic:         "sunset",
		Details:       "beach walk at dusk",
		DesiredLength: LengthShort,
		Tone:          ToneFunny,
	})

	assert.Contains(t, prompt, "- Topic: sunset")
	assert.Contains(t, prompt, "- What the caption is about: beach walk at dusk")
	assert.Contains(t, prompt, "- Desired length: short")
	assert.Contains(t, prompt, "- Tone: funny")
	assert.Contains(t, prompt, `"caption"`)
	assert.Contains(t, prompt, `"hashtags"`)
}

func TestBuildScriptPrompt(t *testing.T) {
	prompt := BuildScriptPrompt("morning routine")

	assert.Contains(t, prompt, "morning routine")
	assert.Contains(t, prompt, `"script"`)
	assert.Contains(t, prompt, `"shootingSuggestions"`)
}
