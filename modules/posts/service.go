package posts

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"creatiq-server/modules/common/model"
)

// Post - one planned post
type Post struct {
	ID          string    `json:"id"`
	Caption     string    `json:"caption"`
	ScheduledAt time.Time `json:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type Service struct {
	store model.HistoryStore
}

func NewService(store model.HistoryStore) *Service {
	return &Service{
		store: store,
	}
}

// Create - plan a post for a date
func (s *Service) Create(ctx context.Context, caption string, scheduledAt time.Time) (string, error) {
	id := uuid.NewString()
	entry := model.HistoryEntry{
		ID:            id,
		Feature:       model.FeaturePost,
		Subject:       caption,
		PrimaryText:   caption,
		SecondaryText: scheduledAt.UTC().Format(time.RFC3339),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.Append(ctx, entry); err != nil {
		return "", fmt.Errorf("failed to save post: %w", err)
	}
	return id, nil
}

// List - planned posts, newest first
func (s *Service) List(ctx context.Context) ([]Post, error) {
	entries, err := s.store.QueryRecent(ctx, model.FeaturePost, 0)
	if err != nil {
		return nil, err
	}

	out := make([]Post, 0, len(entries))
	for _, e := range entries {
		scheduledAt, err := time.Parse(time.RFC3339, e.SecondaryText)
		if err != nil {
			scheduledAt = e.CreatedAt
		}
		out = append(out, Post{
			ID:          e.ID,
			Caption:     e.PrimaryText,
			ScheduledAt: scheduledAt,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out, nil
}

// Delete - explicit user deletion
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, model.FeaturePost, id)
}
