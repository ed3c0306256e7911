package outfit

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"creatiq-server/modules/common/config"
	"creatiq-server/modules/common/model"
	"creatiq-server/modules/common/palette"
)

type Service struct {
	store model.HistoryStore
}

func NewService(store model.HistoryStore) *Service {
	return &Service{
		store: store,
	}
}

// ExtractColors - dominant colors of an outfit photo. The outfit tracker
// samples a larger canvas than the moodboard for finer garment detail.
func (s *Service) ExtractColors(imageData []byte) []string {
	cfg := config.GetConfig()
	return palette.ExtractFromBytes(imageData,
		cfg.OutfitCanvasSize, cfg.PaletteQuantStep, cfg.PaletteDefaultColors)
}

// Save - persist an outfit. When a photo is supplied its colors are
// recomputed here so the stored palette always matches the image.
func (s *Service) Save(ctx context.Context, imageData []byte, colors []string) (string, error) {
	if len(imageData) > 0 {
		colors = s.ExtractColors(imageData)
	}
	if colors == nil {
		colors = []string{}
	}

	payload, err := json.Marshal(colors)
	if err != nil {
		return "", fmt.Errorf("failed to encode colors: %w", err)
	}

	id := uuid.NewString()
	entry := model.HistoryEntry{
		ID:            id,
		Feature:       model.FeatureOutfit,
		Subject:       "outfit",
		PrimaryText:   "outfit",
		SecondaryText: string(payload),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.Append(ctx, entry); err != nil {
		return "", fmt.Errorf("failed to save outfit: %w", err)
	}
	return id, nil
}

// List - saved outfits, newest first
func (s *Service) List(ctx context.Context) ([]Outfit, error) {
	entries, err := s.store.QueryRecent(ctx, model.FeatureOutfit, 0)
	if err != nil {
		return nil, err
	}

	outfits := make([]Outfit, 0, len(entries))
	for _, e := range entries {
		var colors []string
		if err := json.Unmarshal([]byte(e.SecondaryText), &colors); err != nil {
			log.Printf("⚠️  [Outfit] Skipping outfit %s with unreadable colors: %v", e.ID, err)
			continue
		}
		outfits = append(outfits, Outfit{
			ID:        e.ID,
			Colors:    colors,
			CreatedAt: e.CreatedAt,
		})
	}
	return outfits, nil
}

// Delete - explicit user deletion
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, model.FeatureOutfit, id)
}
