package moodboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"creatiq-server/modules/common/config"
	"creatiq-server/modules/common/model"
	"creatiq-server/modules/common/palette"
	"creatiq-server/modules/common/tagger"
)

// Notifier - push channel for trending notices (the websocket hub in main)
type Notifier interface {
	Broadcast(message string)
}

type Service struct {
	store    model.HistoryStore
	notifier Notifier
}

// NewService - moodboard analyzer over a history store; notifier may be nil
func NewService(store model.HistoryStore, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
	}
}

// Analyze - palette extraction and note tagging run concurrently since they
// share no state; the merged record is pure with respect to its inputs.
func (s *Service) Analyze(imageData []byte, note string) model.AnalysisRecord {
	cfg := config.GetConfig()

	var colors []string
	var tag string
	var themes []string

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		colors = palette.ExtractFromBytes(imageData,
			cfg.MoodboardCanvasSize, cfg.PaletteQuantStep, cfg.PaletteDefaultColors)
	}()

	go func() {
		defer wg.Done()
		tag, themes = tagger.Classify(note)
	}()

	wg.Wait()

	return model.AnalysisRecord{
		Tag:    tag,
		Themes: themes,
		Colors: colors,
	}
}

// AddItem - analyze and persist a moodboard item, returning the item id and
// the trending notice
func (s *Service) AddItem(ctx context.Context, imageData []byte, note string) (string, string, error) {
	analysis := s.Analyze(imageData, note)

	// Themes and colors ride along as the entry's secondary payload
	payload, err := json.Marshal(analysis)
	if err != nil {
		return "", "", fmt.Errorf("failed to encode analysis: %w", err)
	}

	id := uuid.NewString()
	entry := model.HistoryEntry{
		ID:            id,
		Feature:       model.FeatureMoodboard,
		Subject:       note,
		Tone:          analysis.Tag,
		PrimaryText:   note,
		SecondaryText: string(payload),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.Append(ctx, entry); err != nil {
		return "", "", fmt.Errorf("failed to save moodboard item: %w", err)
	}

	trending := TrendingMessage(analysis)
	if s.notifier != nil && trending != "" {
		s.notifier.Broadcast(trending)
	}

	return id, trending, nil
}

// ListItems - saved items, newest first
func (s *Service) ListItems(ctx context.Context) ([]Item, error) {
	entries, err := s.store.QueryRecent(ctx, model.FeatureMoodboard, 0)
	if err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		var analysis model.AnalysisRecord
		if err := json.Unmarshal([]byte(e.SecondaryText), &analysis); err != nil {
			log.Printf("⚠️  [Moodboard] Skipping item %s with unreadable analysis: %v", e.ID, err)
			continue
		}
		items = append(items, Item{
			ID:        e.ID,
			Note:      e.Subject,
			Tag:       analysis.Tag,
			Themes:    analysis.Themes,
			Colors:    analysis.Colors,
			CreatedAt: e.CreatedAt,
		})
	}
	return items, nil
}

// DeleteItem - explicit user deletion
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	return s.store.Delete(ctx, model.FeatureMoodboard, id)
}

// TrendingMessage - popup line for a freshly analyzed item. Dark themes get
// the moon, everything else the sparkle.
func TrendingMessage(analysis model.AnalysisRecord) string {
	emoji := "✨"
	for _, theme := range analysis.Themes {
		lower := strings.ToLower(theme)
		if strings.Contains(lower, "night") || strings.Contains(lower, "dark") {
			emoji = "🌙"
			break
		}
	}

	tag := analysis.Tag
	if tag == "" {
		tag = "New inspo"
	}
	return fmt.Sprintf("Trending: %s %s", tag, emoji)
}
