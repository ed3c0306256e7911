package model

import (
	"context"
	"time"
)

// Feature keys - one history stream per app feature
const (
	FeatureCaption   = "caption"
	FeatureScript    = "script"
	FeatureOutfit    = "outfit"
	FeatureMoodboard = "moodboard"
	FeaturePost      = "post"
)

// HistoryEntry - creatiq_history table row. Entries are append-only and are
// never mutated after insert; deletion happens only through the explicit
// delete endpoints.
type HistoryEntry struct {
	ID            string    `json:"id"`
	Feature       string    `json:"feature"`
	Subject       string    `json:"subject"`
	Tone          string    `json:"tone"`
	PrimaryText   string    `json:"primary_text"`
	SecondaryText string    `json:"secondary_text"`
	CreatedAt     time.Time `json:"created_at"`
}

// HistoryStore - persistence collaborator for generation/analysis history.
// QueryRecent and QueryExact return entries newest-first; entries with equal
// timestamps keep insertion order. Append must be atomic with respect to
// concurrent queries - a reader never observes a partially written entry.
type HistoryStore interface {
	Append(ctx context.Context, entry HistoryEntry) error
	QueryRecent(ctx context.Context, feature string, limit int) ([]HistoryEntry, error)
	QueryExact(ctx context.Context, feature string, text string) ([]HistoryEntry, error)
	Delete(ctx context.Context, feature string, id string) error
}

// AnalysisRecord - result of the local image/note analysis. Colors are
// ordered by descending pixel frequency; themes are deduplicated.
type AnalysisRecord struct {
	Tag    string   `json:"tag"`
	Themes []string `json:"themes"`
	Colors []string `json:"colors"`
}
