package moodboard

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleAnalyze - POST /api/moodboard/analyze
// Runs the local analysis without saving anything.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Moodboard] Invalid request: %v", err)
		json.NewEncoder(w).Encode(AnalyzeResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	analysis := h.service.Analyze(decodeImageField(req.Image), req.Note)

	log.Printf("🎨 [Moodboard] Analyzed note=%s: tag=%s, themes=%d, colors=%d",
		truncate(req.Note, 30), analysis.Tag, len(analysis.Themes), len(analysis.Colors))

	json.NewEncoder(w).Encode(AnalyzeResponse{
		Success:  true,
		Tag:      analysis.Tag,
		Themes:   analysis.Themes,
		Colors:   analysis.Colors,
		Trending: TrendingMessage(analysis),
	})
}

// HandleCreate - POST /api/moodboard/items
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Moodboard] Invalid request: %v", err)
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	id, trending, err := h.service.AddItem(r.Context(), decodeImageField(req.Image), req.Note)
	if err != nil {
		log.Printf("❌ [Moodboard] Failed to save item: %v", err)
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Failed to save item",
		})
		return
	}

	log.Printf("✅ [Moodboard] Item saved: %s", id)

	json.NewEncoder(w).Encode(StatusResponse{
		Success:  true,
		ID:       id,
		Trending: trending,
	})
}

// HandleList - GET /api/moodboard/items
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	items, err := h.service.ListItems(r.Context())
	if err != nil {
		log.Printf("❌ [Moodboard] Failed to list items: %v", err)
		json.NewEncoder(w).Encode(ItemsResponse{
			Success:      false,
			ErrorMessage: "Failed to load items",
		})
		return
	}

	json.NewEncoder(w).Encode(ItemsResponse{
		Success: true,
		Items:   items,
	})
}

// HandleDelete - DELETE /api/moodboard/items/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	id := vars["id"]

	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		log.Printf("❌ [Moodboard] Failed to delete item %s: %v", id, err)
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Failed to delete item",
		})
		return
	}

	json.NewEncoder(w).Encode(StatusResponse{
		Success: true,
		ID:      id,
	})
}

// decodeImageField - base64 photo payload, empty on any decode problem (an
// undecodable image means an empty palette, not an error)
func decodeImageField(data string) []byte {
	if strings.TrimSpace(data) == "" {
		return nil
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		log.Printf("⚠️  [Moodboard] Failed to decode image payload: %v", err)
		return nil
	}
	return decoded
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
