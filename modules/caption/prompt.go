package caption

import (
	"fmt"
	"strings"
)

// BuildCaptionPrompt - natural-language instruction for a caption request.
// The remote model must answer with a JSON object holding exactly the
// caption/hashtags keys; the directive is part of the prompt itself.
func BuildCaptionPrompt(req CaptionRequest) string {
	var promptBuilder strings.Builder

	promptBuilder.WriteString("You are an expert social media caption writer for influencers.\n\n")
	promptBuilder.WriteString("INPUT:\n")
	promptBuilder.WriteString(fmt.Sprintf("- Topic: %s\n", req.Topic))
	promptBuilder.WriteString(fmt.Sprintf("- What the caption is about: %s\n", req.Details))
	promptBuilder.WriteString(fmt.Sprintf("- Desired length: %s\n", req.DesiredLength))
	promptBuilder.WriteString(fmt.Sprintf("- Tone: %s\n\n", req.Tone))
	promptBuilder.WriteString("OUTPUT:\n")
	promptBuilder.WriteString("Return a JSON object with exactly these keys:\n")
	promptBuilder.WriteString("{\n")
	promptBuilder.WriteString("  \"caption\": \"string\",\n")
	promptBuilder.WriteString("  \"hashtags\": \"space separated hashtags string\"\n")
	promptBuilder.WriteString("}\n")

	return promptBuilder.String()
}

// BuildScriptPrompt - natural-language instruction for a content-idea script
func BuildScriptPrompt(idea string) string {
	var promptBuilder strings.Builder

	promptBuilder.WriteString("You are a content director for an influencer.\n\n")
	promptBuilder.WriteString("INPUT IDEA:\n")
	promptBuilder.WriteString(idea)
	promptBuilder.WriteString("\n\n")
	promptBuilder.WriteString("OUTPUT:\n")
	promptBuilder.WriteString("Return a JSON object with exactly these keys:\n")
	promptBuilder.WriteString("{\n")
	promptBuilder.WriteString("  \"script\": \"detailed script for the content, shot by shot\",\n")
	promptBuilder.WriteString("  \"shootingSuggestions\": \"shooting locations, venues, times of day and any props\"\n")
	promptBuilder.WriteString("}\n")

	return promptBuilder.String()
}
