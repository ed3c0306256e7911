package tagger

import "strings"

// Theme rules - every matching rule contributes its theme. Keywords are
// matched as lowercase substrings of the note.
var themeRules = []struct {
	keywords []string
	theme    string
}{
	{[]string{"night", "city"}, "night vibes"},
	{[]string{"beige", "neutral"}, "warm neutrals"},
	{[]string{"pastel"}, "soft pastel"},
	{[]string{"studio", "set"}, "studio shoot"},
}

// DefaultTheme - assigned when no theme rule matches
const DefaultTheme = "aesthetic"

// Tag rules - priority order, only the first match is used
var tagRules = []struct {
	keywords []string
	tag      string
}{
	{[]string{"cozy"}, "Cozy inspo"},
	{[]string{"city"}, "City lights"},
	{[]string{"outfit", "look"}, "Outfit mood"},
}

// DefaultTag - assigned when no tag rule matches
const DefaultTag = "Creative spark"

// Classify - derive a display tag and theme labels from a free-text note.
// Themes are deduplicated in first-seen rule order. Pure function: identical
// input always yields identical output.
func Classify(note string) (string, []string) {
	lower := strings.ToLower(note)

	themes := make([]string, 0, len(themeRules))
	seen := make(map[string]bool)
	for _, rule := range themeRules {
		if !containsAny(lower, rule.keywords) {
			continue
		}
		if seen[rule.theme] {
			continue
		}
		seen[rule.theme] = true
		themes = append(themes, rule.theme)
	}
	if len(themes) == 0 {
		themes = append(themes, DefaultTheme)
	}

	tag := DefaultTag
	for _, rule := range tagRules {
		if containsAny(lower, rule.keywords) {
			tag = rule.tag
			break
		}
	}

	return tag, themes
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
