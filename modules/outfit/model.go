package outfit

import "time"

// AnalyzeRequest - POST /api/outfit/analyze body
type AnalyzeRequest struct {
	Image string `json:"image"` // base64 encoded photo
}

// AnalyzeResponse - extracted colors only, nothing saved
type AnalyzeResponse struct {
	Success      bool     `json:"success"`
	Colors       []string `json:"colors"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// SaveRequest - POST /api/outfit body
type SaveRequest struct {
	Image  string   `json:"image,omitempty"`
	Colors []string `json:"colors,omitempty"` // from a prior analyze call; recomputed when image is present
}

// Outfit - one saved outfit record
type Outfit struct {
	ID        string    `json:"id"`
	Colors    []string  `json:"colors"`
	CreatedAt time.Time `json:"created_at"`
}

// ListResponse - GET /api/outfit response
type ListResponse struct {
	Success      bool     `json:"success"`
	Outfits      []Outfit `json:"outfits"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// StatusResponse - create/delete result
type StatusResponse struct {
	Success      bool   `json:"success"`
	ID           string `json:"id,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
}
