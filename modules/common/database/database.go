package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"

	"creatiq-server/modules/common/config"
	"creatiq-server/modules/common/model"
)

const historyTable = "creatiq_history"

// Client - Supabase-backed HistoryStore
type Client struct {
	supabase *supabase.Client
}

// NewClient - create the Supabase history store, nil when Supabase is not
// configured or unreachable
func NewClient() *Client {
	cfg := config.GetConfig()

	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		log.Println("⚠️  Supabase not configured")
		return nil
	}

	supabaseClient, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supabase.ClientOptions{})
	if err != nil {
		log.Printf("❌ Failed to create Supabase client: %v", err)
		return nil
	}

	return &Client{
		supabase: supabaseClient,
	}
}

// Append - insert a history entry
func (c *Client) Append(ctx context.Context, entry model.HistoryEntry) error {
	insertData := map[string]interface{}{
		"id":             entry.ID,
		"feature":        entry.Feature,
		"subject":        entry.Subject,
		"tone":           entry.Tone,
		"primary_text":   entry.PrimaryText,
		"secondary_text": entry.SecondaryText,
		"created_at":     entry.CreatedAt,
	}

	_, _, err := c.supabase.From(historyTable).
		Insert(insertData, false, "", "", "").
		Execute()

	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}

	return nil
}

// QueryRecent - newest-first entries for a feature
func (c *Client) QueryRecent(ctx context.Context, feature string, limit int) ([]model.HistoryEntry, error) {
	query := c.supabase.From(historyTable).
		Select("*", "exact", false).
		Eq("feature", feature).
		Order("created_at", &postgrest.OrderOpts{Ascending: false})

	if limit > 0 {
		query = query.Limit(limit, "")
	}

	data, _, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}

	var entries []model.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse history response: %w", err)
	}

	return entries, nil
}

// QueryExact - newest-first entries whose primary text matches exactly
func (c *Client) QueryExact(ctx context.Context, feature string, text string) ([]model.HistoryEntry, error) {
	data, _, err := c.supabase.From(historyTable).
		Select("*", "exact", false).
		Eq("feature", feature).
		Eq("primary_text", text).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()

	if err != nil {
		return nil, fmt.Errorf("failed to query history by text: %w", err)
	}

	var entries []model.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse history response: %w", err)
	}

	return entries, nil
}

// Delete - remove one entry by id (explicit user action only)
func (c *Client) Delete(ctx context.Context, feature string, id string) error {
	_, _, err := c.supabase.From(historyTable).
		Delete("", "").
		Eq("feature", feature).
		Eq("id", id).
		Execute()

	if err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}

	return nil
}
