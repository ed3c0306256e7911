package caption

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"creatiq-server/modules/common/model"
)

// Generator - the remote generation client consumed by the orchestrator.
// Satisfied by *Client; tests substitute failing implementations.
type Generator interface {
	GenerateCaption(ctx context.Context, req CaptionRequest) (CaptionResult, error)
	GenerateScript(ctx context.Context, idea string) (ScriptResult, error)
}

// Service - generation orchestrator. Each call runs Idle -> Requesting and
// ends in either Succeeded (remote result) or FallbackApplied (offline
// template); the caller always receives a fully populated result. The
// service keeps no state between invocations beyond what it appends to the
// history store.
type Service struct {
	client Generator
	store  model.HistoryStore
}

// NewService - orchestrator over a generation client and a history store
func NewService(client Generator, store model.HistoryStore) *Service {
	return &Service{
		client: client,
		store:  store,
	}
}

// CaptionOutcome - surfaced result of one caption generation
type CaptionOutcome struct {
	Result          CaptionResult
	FallbackApplied bool
	ReuseNotice     string
}

// ScriptOutcome - surfaced result of one script generation
type ScriptOutcome struct {
	Result          ScriptResult
	FallbackApplied bool
	ReuseNotice     string
}

// Generate - produce a caption. Remote failures of any kind collapse to the
// deterministic fallback; store failures are logged and swallowed so the
// result is still returned (the history entry and reuse notice are simply
// absent for that call).
func (s *Service) Generate(ctx context.Context, req CaptionRequest) CaptionOutcome {
	req.Tone = NormalizeTone(req.Tone)
	req.DesiredLength = NormalizeLength(req.DesiredLength)

	result, err := s.client.GenerateCaption(ctx, req)
	fallbackApplied := false
	if err != nil {
		log.Printf("⚠️  [Caption] Remote generation failed (%s), applying fallback: %v", errorKind(err), err)
		result = FallbackCaption(req.Topic, req.Tone)
		fallbackApplied = true
	}

	notice := s.recordAndCheck(ctx, model.HistoryEntry{
		ID:            uuid.NewString(),
		Feature:       model.FeatureCaption,
		Subject:       req.Topic,
		Tone:          req.Tone,
		PrimaryText:   result.Caption,
		SecondaryText: result.Hashtags,
		CreatedAt:     time.Now().UTC(),
	})

	return CaptionOutcome{
		Result:          result,
		FallbackApplied: fallbackApplied,
		ReuseNotice:     notice,
	}
}

// GenerateScript - produce a script and shooting plan for a content idea
func (s *Service) GenerateScript(ctx context.Context, idea string) ScriptOutcome {
	idea = strings.TrimSpace(idea)

	result, err := s.client.GenerateScript(ctx, idea)
	fallbackApplied := false
	if err != nil {
		log.Printf("⚠️  [Caption] Remote script generation failed (%s), applying fallback: %v", errorKind(err), err)
		result = FallbackScript(idea)
		fallbackApplied = true
	}

	notice := s.recordAndCheck(ctx, model.HistoryEntry{
		ID:            uuid.NewString(),
		Feature:       model.FeatureScript,
		Subject:       idea,
		Tone:          "",
		PrimaryText:   result.Script,
		SecondaryText: result.ShootingSuggestions,
		CreatedAt:     time.Now().UTC(),
	})

	return ScriptOutcome{
		Result:          result,
		FallbackApplied: fallbackApplied,
		ReuseNotice:     notice,
	}
}

// History - most recent caption generations, newest first
func (s *Service) History(ctx context.Context, limit int) ([]HistoryItem, error) {
	entries, err := s.store.QueryRecent(ctx, model.FeatureCaption, limit)
	if err != nil {
		return nil, err
	}

	items := make([]HistoryItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, HistoryItem{
			ID:        e.ID,
			Topic:     e.Subject,
			Tone:      e.Tone,
			Caption:   e.PrimaryText,
			Hashtags:  e.SecondaryText,
			CreatedAt: e.CreatedAt,
		})
	}
	return items, nil
}

// LastSuggestion - "Last: ..." line for the most recent caption, empty when
// there is no history yet
func (s *Service) LastSuggestion(ctx context.Context) string {
	entries, err := s.store.QueryRecent(ctx, model.FeatureCaption, 1)
	if err != nil || len(entries) == 0 {
		return ""
	}
	return "Last: " + entries[0].PrimaryText
}

// recordAndCheck - append the entry, then run reuse detection against the
// just-written text. Store errors must not block the generation result.
func (s *Service) recordAndCheck(ctx context.Context, entry model.HistoryEntry) string {
	if err := s.store.Append(ctx, entry); err != nil {
		log.Printf("⚠️  [Caption] Failed to save history entry (continuing without it): %v", err)
		return ""
	}

	match, err := DetectReuse(ctx, s.store, entry.Feature, entry.PrimaryText)
	if err != nil {
		log.Printf("⚠️  [Caption] Reuse check failed (continuing without notice): %v", err)
		return ""
	}
	return ReuseNotice(match)
}

// errorKind - failure classification for log lines
func errorKind(err error) model.ErrorKind {
	var genErr *model.GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return model.ErrNetwork
}
