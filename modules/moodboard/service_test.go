package moodboard

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatiq-server/modules/common/config"
	"creatiq-server/modules/common/database"
	"creatiq-server/modules/common/model"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	config.SetConfig(&config.Config{
		GeminiAPIKey:         "test-key",
		PaletteQuantStep:     32,
		MoodboardCanvasSize:  40,
		OutfitCanvasSize:     60,
		PaletteDefaultColors: 5,
	})
}

// recordingNotifier - captures broadcast messages
type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Broadcast(message string) {
	r.messages = append(r.messages, message)
}

func testImage(t *testing.T, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestAnalyzeMergesPaletteAndTags(t *testing.T) {
	setTestConfig(t)

	svc := NewService(database.NewMemoryStore(), nil)
	imageData := testImage(t, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	record := svc.Analyze(imageData, "cozy night in")

	assert.Equal(t, "Cozy inspo", record.Tag)
	assert.Contains(t, record.Themes, "night vibes")
	assert.Equal(t, []string{"#C06020"}, record.Colors)
}

func TestAnalyzeWithoutImage(t *testing.T) {
	setTestConfig(t)

	svc := NewService(database.NewMemoryStore(), nil)

	record := svc.Analyze(nil, "pastel studio look")

	assert.Empty(t, record.Colors, "missing image yields an empty palette, not an error")
	assert.Equal(t, "Outfit mood", record.Tag)
}

func TestAddItemPersistsAndBroadcasts(t *testing.T) {
	setTestConfig(t)

	store := database.NewMemoryStore()
	notifier := &recordingNotifier{}
	svc := NewService(store, notifier)

	id, trending, err := svc.AddItem(context.Background(), nil, "cozy night in")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "Trending: Cozy inspo 🌙", trending)
	assert.Equal(t, []string{trending}, notifier.messages)

	items, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, "cozy night in", items[0].Note)
	assert.Equal(t, "Cozy inspo", items[0].Tag)
}

func TestDeleteItem(t *testing.T) {
	setTestConfig(t)

	store := database.NewMemoryStore()
	svc := NewService(store, nil)

	id, _, err := svc.AddItem(context.Background(), nil, "beige walls")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(context.Background(), id))

	items, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListItemsScopedToMoodboard(t *testing.T) {
	setTestConfig(t)

	store := database.NewMemoryStore()
	require.NoError(t, store.Append(context.Background(), model.HistoryEntry{
		ID: "x", Feature: model.FeatureCaption, PrimaryText: "a caption",
	}))

	svc := NewService(store, nil)
	items, err := svc.ListItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTrendingMessage(t *testing.T) {
	cases := []struct {
		name     string
		analysis model.AnalysisRecord
		want     string
	}{
		{"night theme gets the moon",
			model.AnalysisRecord{Tag: "City lights", Themes: []string{"night vibes"}},
			"Trending: City lights 🌙"},
		{"dark theme gets the moon",
			model.AnalysisRecord{Tag: "Cozy inspo", Themes: []string{"dark academia"}},
			"Trending: Cozy inspo 🌙"},
		{"everything else gets the sparkle",
			model.AnalysisRecord{Tag: "Outfit mood", Themes: []string{"soft pastel"}},
			"Trending: Outfit mood ✨"},
		{"empty tag becomes new inspo",
			model.AnalysisRecord{Themes: []string{"aesthetic"}},
			"Trending: New inspo ✨"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TrendingMessage(tc.analysis))
		})
	}
}
