package caption

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"context"

	"creatiq-server/modules/common/config"
	"creatiq-server/modules/common/model"
)

// Client - Gemini text generation over the generateContent REST endpoint.
// This is the only place in the server where network or parse failures can
// happen; every failure carries a model.GenerationError kind and never a
// partial result.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewClient - Gemini client from the loaded configuration
func NewClient() *Client {
	cfg := config.GetConfig()

	log.Println("✅ [Caption] Gemini client initialized")
	return &Client{
		apiKey:     cfg.GeminiAPIKey,
		model:      cfg.GeminiModel,
		baseURL:    cfg.GeminiBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Request/response envelope for the generateContent endpoint

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// GenerateCaption - caption + hashtags for a request. Fails with a typed
// error on transport problems, an empty envelope or malformed inner JSON.
func (c *Client) GenerateCaption(ctx context.Context, req CaptionRequest) (CaptionResult, error) {
	prompt := BuildCaptionPrompt(req)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return CaptionResult{}, err
	}

	// The inner text must itself be JSON with exactly these keys
	var payload struct {
		Caption  *string `json:"caption"`
		Hashtags *string `json:"hashtags"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &payload); err != nil {
		return CaptionResult{}, model.NewGenerationError(model.ErrFormat,
			fmt.Errorf("caption payload is not valid JSON: %w", err))
	}
	if payload.Caption == nil || payload.Hashtags == nil {
		return CaptionResult{}, model.NewGenerationError(model.ErrFormat,
			fmt.Errorf("caption payload missing expected keys"))
	}

	return CaptionResult{Caption: *payload.Caption, Hashtags: *payload.Hashtags}, nil
}

// GenerateScript - shot-by-shot script + shooting suggestions for an idea
func (c *Client) GenerateScript(ctx context.Context, idea string) (ScriptResult, error) {
	prompt := BuildScriptPrompt(idea)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return ScriptResult{}, err
	}

	var payload struct {
		Script              *string `json:"script"`
		ShootingSuggestions *string `json:"shootingSuggestions"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &payload); err != nil {
		return ScriptResult{}, model.NewGenerationError(model.ErrFormat,
			fmt.Errorf("script payload is not valid JSON: %w", err))
	}
	if payload.Script == nil || payload.ShootingSuggestions == nil {
		return ScriptResult{}, model.NewGenerationError(model.ErrFormat,
			fmt.Errorf("script payload missing expected keys"))
	}

	return ScriptResult{Script: *payload.Script, ShootingSuggestions: *payload.ShootingSuggestions}, nil
}

// generate - POST the prompt as the sole message and return the first
// non-empty text part of the first candidate
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", model.NewGenerationError(model.ErrNetwork,
			fmt.Errorf("failed to marshal request: %w", err))
	}

	// API key travels as a query parameter, injected from configuration
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", model.NewGenerationError(model.ErrNetwork,
			fmt.Errorf("failed to create request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("❌ [Caption] Gemini API error: %v", err)
		return "", model.NewGenerationError(model.ErrNetwork,
			fmt.Errorf("gemini request failed: %w", err))
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", model.NewGenerationError(model.ErrNetwork,
			fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("❌ [Caption] Gemini API error: status=%d, body=%s",
			resp.StatusCode, truncateString(string(bodyBytes), 200))
		return "", model.NewGenerationError(model.ErrNetwork,
			fmt.Errorf("gemini returned status %d", resp.StatusCode))
	}

	var decoded geminiResponse
	if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		return "", model.NewGenerationError(model.ErrEnvelope,
			fmt.Errorf("failed to parse response envelope: %w", err))
	}

	if len(decoded.Candidates) == 0 {
		return "", model.NewGenerationError(model.ErrEnvelope,
			fmt.Errorf("no candidates in response"))
	}

	for _, part := range decoded.Candidates[0].Content.Parts {
		if strings.TrimSpace(part.Text) != "" {
			return part.Text, nil
		}
	}

	return "", model.NewGenerationError(model.ErrEnvelope,
		fmt.Errorf("no text parts in first candidate"))
}

// stripCodeFence - Gemini often wraps JSON answers in a markdown fence
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
