package worker

import "time"

const (
	// QueueKey - Redis list holding pending job payloads
	QueueKey = "creatiq:jobs:queue"
	// resultKeyPrefix - per-job result keys, expired after ResultTTL
	resultKeyPrefix = "creatiq:jobs:result:"
	// busyKeyPrefix - per-feature busy gate keys
	busyKeyPrefix = "creatiq:jobs:busy:"

	// ResultTTL - how long a finished job result stays pollable
	ResultTTL = 30 * time.Minute
	// BusyTTL - upper bound on how long a feature stays gated if a worker
	// dies mid-job
	BusyTTL = 5 * time.Minute
)

// Job statuses
const (
	StatusQueued     = "queued"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Job kinds
const (
	KindCaption = "caption"
	KindScript  = "script"
)

// Job - queued generation request
type Job struct {
	JobID         string    `json:"job_id"`
	Kind          string    `json:"kind"`
	Topic         string    `json:"topic,omitempty"`
	Details       string    `json:"details,omitempty"`
	DesiredLength string    `json:"desired_length,omitempty"`
	Tone          string    `json:"tone,omitempty"`
	Idea          string    `json:"idea,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// JobResult - stored under the result key for polling
type JobResult struct {
	JobID           string    `json:"job_id"`
	Kind            string    `json:"kind"`
	Status          string    `json:"status"`
	Caption         string    `json:"caption,omitempty"`
	Hashtags        string    `json:"hashtags,omitempty"`
	Script          string    `json:"script,omitempty"`
	Suggestions     string    `json:"shooting_suggestions,omitempty"`
	FallbackApplied bool      `json:"fallback_applied"`
	ReuseNotice     string    `json:"reuse_notice,omitempty"`
	ErrorMessage    string    `json:"error_message,omitempty"`
	CompletedAt     time.Time `json:"completed_at,omitempty"`
}

// EnqueueRequest - POST /api/jobs/enqueue body
type EnqueueRequest struct {
	Kind          string `json:"kind"`
	Topic         string `json:"topic,omitempty"`
	Details       string `json:"details,omitempty"`
	DesiredLength string `json:"desired_length,omitempty"`
	Tone          string `json:"tone,omitempty"`
	Idea          string `json:"idea,omitempty"`
}

// EnqueueResponse - enqueue result
type EnqueueResponse struct {
	Success       bool   `json:"success"`
	JobID         string `json:"job_id,omitempty"`
	Queue         string `json:"queue,omitempty"`
	QueuePosition int64  `json:"queuePosition,omitempty"`
	Error         string `json:"error,omitempty"`
}

// PollResponse - GET /api/jobs/{id} result
type PollResponse struct {
	Success bool       `json:"success"`
	Status  string     `json:"status,omitempty"`
	Result  *JobResult `json:"result,omitempty"`
	Error   string     `json:"error,omitempty"`
}
