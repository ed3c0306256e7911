package moodboard

import "time"

// AnalyzeRequest - POST /api/moodboard/analyze body
type AnalyzeRequest struct {
	Image string `json:"image"` // base64 encoded photo, optional
	Note  string `json:"note"`
}

// AnalyzeResponse - local analysis result
type AnalyzeResponse struct {
	Success      bool     `json:"success"`
	Tag          string   `json:"tag,omitempty"`
	Themes       []string `json:"themes,omitempty"`
	Colors       []string `json:"colors,omitempty"`
	Trending     string   `json:"trending,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// Item - one saved moodboard item
type Item struct {
	ID        string    `json:"id"`
	Note      string    `json:"note"`
	Tag       string    `json:"tag"`
	Themes    []string  `json:"themes"`
	Colors    []string  `json:"colors"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemsResponse - GET /api/moodboard/items response
type ItemsResponse struct {
	Success      bool   `json:"success"`
	Items        []Item `json:"items"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// StatusResponse - create/delete result
type StatusResponse struct {
	Success      bool   `json:"success"`
	ID           string `json:"id,omitempty"`
	Trending     string `json:"trending,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
