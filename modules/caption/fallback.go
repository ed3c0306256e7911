package caption

import "strings"

// Offline caption templates. Fallback generation is total and deterministic:
// the same topic and tone always produce the same result, and every tone maps
// to exactly one template (unknown tones use the aesthetic default).

// FallbackCaption - deterministic local substitute for a failed caption call
func FallbackCaption(topic, tone string) CaptionResult {
	base := strings.TrimSpace(topic)

	var caption string
	var tags []string

	switch NormalizeTone(tone) {
	case ToneFunny:
		caption = "Just " + base + " things 😂"
		tags = []string{"#funny", "#meme", "#lol", "#creatiq"}
	case ToneMinimal:
		caption = base
		tags = []string{"#minimal", "#clean", "#aesthetic", "#creatiq"}
	case ToneBold:
		caption = strings.ToUpper(base) + " ✨"
		tags = []string{"#bold", "#statement", "#creatiq"}
	default:
		caption = "Soft " + base + " vibes"
		tags = []string{"#aesthetic", "#vibes", "#creatiq"}
	}

	return CaptionResult{
		Caption:  caption,
		Hashtags: strings.Join(tags, " "),
	}
}

// FallbackScript - deterministic local substitute for a failed script call
func FallbackScript(idea string) ScriptResult {
	base := strings.TrimSpace(idea)

	var scriptBuilder strings.Builder
	scriptBuilder.WriteString("Shot 1: Open on a hook - show the end result of \"" + base + "\" for 2 seconds.\n")
	scriptBuilder.WriteString("Shot 2: Cut to the start, talk through what you are doing and why.\n")
	scriptBuilder.WriteString("Shot 3: Three quick cuts of the process, each under 3 seconds.\n")
	scriptBuilder.WriteString("Shot 4: Final reveal, hold for 3 seconds with text overlay.\n")
	scriptBuilder.WriteString("Shot 5: Call to action - ask viewers to save or share.")

	return ScriptResult{
		Script:              scriptBuilder.String(),
		ShootingSuggestions: "Shoot near a window in soft daylight, phone on a tripod at eye level. Keep the background tidy and bring one accent prop that matches your feed.",
	}
}
