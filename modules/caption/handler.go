package caption

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleGenerate - POST /api/caption/generate
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Caption] Invalid request: %v", err)
		json.NewEncoder(w).Encode(GenerateResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	if strings.TrimSpace(req.Topic) == "" {
		json.NewEncoder(w).Encode(GenerateResponse{
			Success:      false,
			ErrorMessage: "Topic is required",
		})
		return
	}

	log.Printf("✍️  [Caption] Generating caption: topic=%s, tone=%s",
		truncateString(req.Topic, 30), req.Tone)

	outcome := h.service.Generate(r.Context(), CaptionRequest{
		Topic:         req.Topic,
		Details:       req.Details,
		DesiredLength: req.DesiredLength,
		Tone:          req.Tone,
	})

	log.Printf("✅ [Caption] Caption ready (fallback=%v, reuse=%v)",
		outcome.FallbackApplied, outcome.ReuseNotice != "")

	json.NewEncoder(w).Encode(GenerateResponse{
		Success:         true,
		Caption:         outcome.Result.Caption,
		Hashtags:        outcome.Result.Hashtags,
		FallbackApplied: outcome.FallbackApplied,
		ReuseNotice:     outcome.ReuseNotice,
	})
}

// HandleScript - POST /api/caption/script
func (h *Handler) HandleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ScriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Caption] Invalid script request: %v", err)
		json.NewEncoder(w).Encode(ScriptResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	if strings.TrimSpace(req.Idea) == "" {
		json.NewEncoder(w).Encode(ScriptResponse{
			Success:      false,
			ErrorMessage: "Idea is required",
		})
		return
	}

	log.Printf("🎬 [Caption] Generating script: idea=%s", truncateString(req.Idea, 30))

	outcome := h.service.GenerateScript(r.Context(), req.Idea)

	log.Printf("✅ [Caption] Script ready (fallback=%v)", outcome.FallbackApplied)

	json.NewEncoder(w).Encode(ScriptResponse{
		Success:             true,
		Script:              outcome.Result.Script,
		ShootingSuggestions: outcome.Result.ShootingSuggestions,
		FallbackApplied:     outcome.FallbackApplied,
	})
}

// HandleHistory - GET /api/caption/history?limit=N
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	items, err := h.service.History(r.Context(), limit)
	if err != nil {
		log.Printf("❌ [Caption] Failed to load history: %v", err)
		json.NewEncoder(w).Encode(HistoryResponse{
			Success:      false,
			ErrorMessage: "Failed to load history",
		})
		return
	}

	json.NewEncoder(w).Encode(HistoryResponse{
		Success: true,
		Items:   items,
		Last:    h.service.LastSuggestion(r.Context()),
	})
}
