package outfit

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

// HandleAnalyze - POST /api/outfit/analyze
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Outfit] Invalid request: %v", err)
		json.NewEncoder(w).Encode(AnalyzeResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	if strings.TrimSpace(req.Image) == "" {
		json.NewEncoder(w).Encode(AnalyzeResponse{
			Success:      false,
			ErrorMessage: "Image data is required",
		})
		return
	}

	colors := h.service.ExtractColors(decodeImageField(req.Image))

	log.Printf("👗 [Outfit] Extracted %d colors", len(colors))

	json.NewEncoder(w).Encode(AnalyzeResponse{
		Success: true,
		Colors:  colors,
	})
}

// HandleSave - POST /api/outfit
func (h *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Outfit] Invalid request: %v", err)
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	id, err := h.service.Save(r.Context(), decodeImageField(req.Image), req.Colors)
	if err != nil {
		log.Printf("❌ [Outfit] Failed to save: %v", err)
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Failed to save outfit",
		})
		return
	}

	log.Printf("✅ [Outfit] Outfit saved: %s", id)

	json.NewEncoder(w).Encode(StatusResponse{
		Success: true,
		ID:      id,
	})
}

// HandleList - GET /api/outfit
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	outfits, err := h.service.List(r.Context())
	if err != nil {
		log.Printf("❌ [Outfit] Failed to list outfits: %v", err)
		json.NewEncoder(w).Encode(ListResponse{
			Success:      false,
			ErrorMessage: "Failed to load outfits",
		})
		return
	}

	json.NewEncoder(w).Encode(ListResponse{
		Success: true,
		Outfits: outfits,
	})
}

// HandleDelete - DELETE /api/outfit/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	id := vars["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.Printf("❌ [Outfit] Failed to delete outfit %s: %v", id, err)
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Failed to delete outfit",
		})
		return
	}

	json.NewEncoder(w).Encode(StatusResponse{
		Success: true,
		ID:      id,
	})
}

func decodeImageField(data string) []byte {
	if strings.TrimSpace(data) == "" {
		return nil
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		log.Printf("⚠️  [Outfit] Failed to decode image payload: %v", err)
		return nil
	}
	return decoded
}
