package worker

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
)

// Handler - enqueue and poll endpoints for the generation queue
type Handler struct {
	rdb *redis.Client
}

func NewHandler(rdb *redis.Client) *Handler {
	return &Handler{
		rdb: rdb,
	}
}

// RegisterRoutes - queue routes
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/jobs/enqueue", h.HandleEnqueue).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/jobs/{id}", h.HandlePoll).Methods("GET")
	log.Println("✅ Job queue routes registered: /api/jobs/enqueue, /api/jobs/{id}")
}

// HandleEnqueue - POST /api/jobs/enqueue
func (h *Handler) HandleEnqueue(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var req EnqueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ [Enqueue] Invalid request: %v", err)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	job := Job{
		JobID:         uuid.NewString(),
		Kind:          req.Kind,
		Topic:         req.Topic,
		Details:       req.Details,
		DesiredLength: req.DesiredLength,
		Tone:          req.Tone,
		Idea:          req.Idea,
		CreatedAt:     time.Now().UTC(),
	}

	switch job.Kind {
	case KindCaption:
		if strings.TrimSpace(job.Topic) == "" {
			json.NewEncoder(w).Encode(EnqueueResponse{
				Success: false,
				Error:   "topic is required for caption jobs",
			})
			return
		}
	case KindScript:
		if strings.TrimSpace(job.Idea) == "" {
			json.NewEncoder(w).Encode(EnqueueResponse{
				Success: false,
				Error:   "idea is required for script jobs",
			})
			return
		}
	default:
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "kind must be caption or script",
		})
		return
	}

	ctx := r.Context()

	// One in-flight generation per feature; re-submission is rejected until
	// the current job completes
	if !AcquireBusy(ctx, h.rdb, job.Kind) {
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "a " + job.Kind + " generation is already in flight",
		})
		return
	}

	payload, err := json.Marshal(job)
	if err != nil {
		releaseBusy(ctx, h.rdb, job.Kind)
		log.Printf("❌ [Enqueue] Failed to marshal job: %v", err)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "Failed to enqueue job",
		})
		return
	}

	if err := h.rdb.LPush(ctx, QueueKey, payload).Err(); err != nil {
		releaseBusy(ctx, h.rdb, job.Kind)
		log.Printf("❌ [Enqueue] Redis LPUSH failed: %v", err)
		json.NewEncoder(w).Encode(EnqueueResponse{
			Success: false,
			Error:   "Failed to enqueue job",
		})
		return
	}

	position, _ := h.rdb.LLen(ctx, QueueKey).Result()

	log.Printf("📥 [Enqueue] Job %s queued (%s, position %d)", job.JobID, job.Kind, position)

	json.NewEncoder(w).Encode(EnqueueResponse{
		Success:       true,
		JobID:         job.JobID,
		Queue:         QueueKey,
		QueuePosition: position,
	})
}

// HandlePoll - GET /api/jobs/{id}
func (h *Handler) HandlePoll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	vars := mux.Vars(r)
	jobID := vars["id"]

	data, err := h.rdb.Get(r.Context(), resultKeyPrefix+jobID).Bytes()
	if err == redis.Nil {
		json.NewEncoder(w).Encode(PollResponse{
			Success: true,
			Status:  StatusQueued,
		})
		return
	}
	if err != nil {
		log.Printf("❌ [Poll] Redis GET failed for job %s: %v", jobID, err)
		json.NewEncoder(w).Encode(PollResponse{
			Success: false,
			Error:   "Failed to read job status",
		})
		return
	}

	var res JobResult
	if err := json.Unmarshal(data, &res); err != nil {
		log.Printf("❌ [Poll] Unreadable result for job %s: %v", jobID, err)
		json.NewEncoder(w).Encode(PollResponse{
			Success: false,
			Error:   "Failed to read job status",
		})
		return
	}

	json.NewEncoder(w).Encode(PollResponse{
		Success: true,
		Status:  res.Status,
		Result:  &res,
	})
}
