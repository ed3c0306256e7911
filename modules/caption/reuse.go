package caption

import (
	"context"
	"fmt"
	"strings"
	"time"

	"creatiq-server/modules/common/model"
)

// ReuseMatch - a prior history entry with the same primary text
type ReuseMatch struct {
	Entry     model.HistoryEntry
	MatchedAt time.Time
}

// DetectReuse - exact-duplicate check, run after the candidate entry has
// already been appended. The two newest entries sharing the trimmed text are
// fetched; the newest is the candidate itself, so a real duplicate shows up
// as a second entry and the second-newest is reported. One entry (or none)
// means no reuse and any previously surfaced notice clears.
func DetectReuse(ctx context.Context, store model.HistoryStore, feature, candidateText string) (*ReuseMatch, error) {
	trimmed := strings.TrimSpace(candidateText)
	if trimmed == "" {
		return nil, nil
	}

	entries, err := store.QueryExact(ctx, feature, trimmed)
	if err != nil {
		return nil, model.NewGenerationError(model.ErrStore, err)
	}

	if len(entries) < 2 {
		return nil, nil
	}

	previous := entries[1]
	return &ReuseMatch{Entry: previous, MatchedAt: previous.CreatedAt}, nil
}

// ReuseNotice - user-facing text for a reuse match
func ReuseNotice(match *ReuseMatch) string {
	if match == nil {
		return ""
	}
	return fmt.Sprintf("Similar caption used before on %s.",
		match.MatchedAt.Format("Jan 2, 2006 at 3:04 PM"))
}
