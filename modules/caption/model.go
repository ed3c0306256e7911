package caption

import (
	"strings"
	"time"
)

// Tone values accepted by the generator. Anything else falls back to the
// aesthetic template.
const (
	ToneFunny     = "funny"
	ToneAesthetic = "aesthetic"
	ToneMinimal   = "minimal"
	ToneBold      = "bold"
)

// Desired caption lengths
const (
	LengthShort  = "short"
	LengthMedium = "medium"
	LengthLong   = "long"
)

// CaptionRequest - one generation call. Immutable, constructed per request.
type CaptionRequest struct {
	Topic         string
	Details       string
	DesiredLength string
	Tone          string
}

// CaptionResult - caption plus space-separated hashtags. Produced by either
// the Gemini client or the offline fallback; callers cannot tell the origin
// from the shape.
type CaptionResult struct {
	Caption  string `json:"caption"`
	Hashtags string `json:"hashtags"`
}

// ScriptResult - shot-by-shot script plus shooting suggestions
type ScriptResult struct {
	Script              string `json:"script"`
	ShootingSuggestions string `json:"shootingSuggestions"`
}

// NormalizeTone - lowercase known tone or the literal input lowercased
func NormalizeTone(tone string) string {
	return strings.ToLower(strings.TrimSpace(tone))
}

// NormalizeLength - tolerant parsing of the desired length; unknown values
// become medium since the prompt only embeds the label
func NormalizeLength(length string) string {
	switch strings.ToLower(strings.TrimSpace(length)) {
	case LengthShort:
		return LengthShort
	case LengthLong:
		return LengthLong
	default:
		return LengthMedium
	}
}

// HTTP DTOs

// GenerateRequest - POST /api/caption/generate body
type GenerateRequest struct {
	Topic         string `json:"topic"`
	Details       string `json:"details"`
	DesiredLength string `json:"desired_length"`
	Tone          string `json:"tone"`
}

// GenerateResponse - caption generation response
type GenerateResponse struct {
	Success         bool   `json:"success"`
	Caption         string `json:"caption,omitempty"`
	Hashtags        string `json:"hashtags,omitempty"`
	FallbackApplied bool   `json:"fallback_applied"`
	ReuseNotice     string `json:"reuse_notice,omitempty"`
	ErrorMessage    string `json:"error_message,omitempty"`
}

// ScriptRequest - POST /api/caption/script body
type ScriptRequest struct {
	Idea string `json:"idea"`
}

// ScriptResponse - script generation response
type ScriptResponse struct {
	Success             bool   `json:"success"`
	Script              string `json:"script,omitempty"`
	ShootingSuggestions string `json:"shooting_suggestions,omitempty"`
	FallbackApplied     bool   `json:"fallback_applied"`
	ErrorMessage        string `json:"error_message,omitempty"`
}

// HistoryItem - one past generation in the history response
type HistoryItem struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Tone      string    `json:"tone"`
	Caption   string    `json:"caption"`
	Hashtags  string    `json:"hashtags"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryResponse - GET /api/caption/history response
type HistoryResponse struct {
	Success      bool          `json:"success"`
	Items        []HistoryItem `json:"items"`
	Last         string        `json:"last,omitempty"`
	ErrorMessage string        `json:"error_message,omitempty"`
}
