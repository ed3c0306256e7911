package posts

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

// CreateRequest - POST /api/posts body
type CreateRequest struct {
	Caption     string    `json:"caption"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// ListResponse - GET /api/posts response
type ListResponse struct {
	Success      bool   `json:"success"`
	Posts        []Post `json:"posts"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// StatusResponse - create/delete result
type StatusResponse struct {
	Success      bool   `json:"success"`
	ID           string `json:"id,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// HandleCreate - POST /api/posts
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Posts] Invalid request: %v", err)
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Invalid request format",
		})
		return
	}

	if strings.TrimSpace(req.Caption) == "" {
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Caption is required",
		})
		return
	}

	if req.ScheduledAt.IsZero() {
		req.ScheduledAt = time.Now().UTC()
	}

	id, err := h.service.Create(r.Context(), req.Caption, req.ScheduledAt)
	if err != nil {
		log.Printf("❌ [Posts] Failed to save post: %v", err)
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Failed to save post",
		})
		return
	}

	log.Printf("📅 [Posts] Post planned: %s", id)

	json.NewEncoder(w).Encode(StatusResponse{
		Success: true,
		ID:      id,
	})
}

// HandleList - GET /api/posts
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	list, err := h.service.List(r.Context())
	if err != nil {
		log.Printf("❌ [Posts] Failed to list posts: %v", err)
		json.NewEncoder(w).Encode(ListResponse{
			Success:      false,
			ErrorMessage: "Failed to load posts",
		})
		return
	}

	json.NewEncoder(w).Encode(ListResponse{
		Success: true,
		Posts:   list,
	})
}

// HandleDelete - DELETE /api/posts/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	id := vars["id"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		log.Printf("❌ [Posts] Failed to delete post %s: %v", id, err)
		json.NewEncoder(w).Encode(StatusResponse{
			Success:      false,
			ErrorMessage: "Failed to delete post",
		})
		return
	}

	json.NewEncoder(w).Encode(StatusResponse{
		Success: true,
		ID:      id,
	})
}
