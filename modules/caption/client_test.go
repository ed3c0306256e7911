package caption

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatiq-server/modules/common/model"
)

// geminiStub - httptest server answering generateContent with a fixed body
func geminiStub(t *testing.T, status int, body string) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)

	return &Client{
		apiKey:     "test-key",
		model:      "models/gemini-2.0-flash",
		baseURL:    server.URL,
		httpClient: server.Client(),
	}
}

// envelope - wrap inner text in a minimal generateContent response
func envelope(text string) string {
	return fmt.Sprintf(`{"candidates":[{"content":{"parts":[{"text":%q}]}}]}`, text)
}

func errorKindOf(t *testing.T, err error) model.ErrorKind {
	t.Helper()
	var genErr *model.GenerationError
	require.ErrorAs(t, err, &genErr)
	return genErr.Kind
}

func TestGenerateCaptionSuccess(t *testing.T) {
	client := geminiStub(t, http.StatusOK,
		envelope(`{"caption":"Golden hour glow","hashtags":"#sunset #goldenhour"}`))

	result, err := client.GenerateCaption(context.Background(), CaptionRequest{Topic: "sunset"})

	require.NoError(t, err)
	assert.Equal(t, "Golden hour glow", result.Caption)
	assert.Equal(t, "#sunset #goldenhour", result.Hashtags)
}

func TestGenerateCaptionStripsCodeFence(t *testing.T) {
	fenced := "```json\n{\"caption\":\"Golden hour glow\",\"hashtags\":\"#sunset\"}\n```"
	client := geminiStub(t, http.StatusOK, envelope(fenced))

	result, err := client.GenerateCaption(context.Background(), CaptionRequest{Topic: "sunset"})

	require.NoError(t, err)
	assert.Equal(t, "Golden hour glow", result.Caption)
}

func TestGenerateCaptionNetworkErrors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		client := geminiStub(t, http.StatusInternalServerError, `{"error":"boom"}`)
		_, err := client.GenerateCaption(context.Background(), CaptionRequest{Topic: "sunset"})
		assert.Equal(t, model.ErrNetwork, errorKindOf(t, err))
	})

	t.Run("unreachable server", func(t *testing.T) {
		client := &Client{
			apiKey:     "test-key",
			model:      "models/gemini-2.0-flash",
			baseURL:    "http://127.0.0.1:1",
			httpClient: &http.Client{Timeout: time.Second},
		}
		_, err := client.GenerateCaption(context.Background(), CaptionRequest{Topic: "sunset"})
		assert.Equal(t, model.ErrNetwork, errorKindOf(t, err))
	})
}

func TestGenerateCaptionEnvelopeErrors(t *testing.T) {
	t.Run("malformed envelope", func(t *testing.T) {
		client := geminiStub(t, http.StatusOK, `not json at all`)
		_, err := client.GenerateCaption(context.Background(), CaptionRequest{Topic: "sunset"})
		assert.Equal(t, model.ErrEnvelope, errorKindOf(t, err))
	})

	t.Run("no candidates", func(t *testing.T) {
		client := geminiStub(t, http.StatusOK, `{"candidates":[]}`)
		_, err := client.GenerateCaption(context.Background(), CaptionRequest{Topic: "sunset"})
		assert.Equal(t, model.ErrEnvelope, errorKindOf(t, err))
	})

	t.Run("only empty parts", func(t *testing.T) {
		client := geminiStub(t, http.StatusOK,
			`{"candidates":[{"content":{"parts":[{"text":"  "}]}}]}`)
		_, err := client.GenerateCaption(context.Background(), CaptionRequest{Topic: "sunset"})
		assert.Equal(t, model.ErrEnvelope, errorKindOf(t, err))
	})
}

func TestGenerateCaptionFormatErrors(t *testing.T) {
	t.Run("inner text not JSON", func(t *testing.T) {
		client := geminiStub(t, http.StatusOK, envelope("Here is your caption: enjoy!"))
		_, err := client.GenerateCaption(context.Background(), CaptionRequest{Topic: "sunset"})
		assert.Equal(t, model.ErrFormat, errorKindOf(t, err))
	})

	t.Run("missing keys", func(t *testing.T) {
		client := geminiStub(t, http.StatusOK, envelope(`{"caption":"only half"}`))
		_, err := client.GenerateCaption(context.Background(), CaptionRequest{Topic: "sunset"})
		assert.Equal(t, model.ErrFormat, errorKindOf(t, err))
	})
}

func TestGenerateScriptSuccess(t *testing.T) {
	client := geminiStub(t, http.StatusOK,
		envelope(`{"script":"Shot 1: open wide","shootingSuggestions":"use daylight"}`))

	result, err := client.GenerateScript(context.Background(), "morning routine")

	require.NoError(t, err)
	assert.Equal(t, "Shot 1: open wide", result.Script)
	assert.Equal(t, "use daylight", result.ShootingSuggestions)
}

func TestGenerateScriptFormatError(t *testing.T) {
	client := geminiStub(t, http.StatusOK, envelope(`{"script":"no suggestions"}`))

	_, err := client.GenerateScript(context.Background(), "morning routine")
	assert.Equal(t, model.ErrFormat, errorKindOf(t, err))
}

func TestGenerationErrorUnwraps(t *testing.T) {
	client := geminiStub(t, http.StatusOK, `broken`)

	_, err := client.GenerateCaption(context.Background(), CaptionRequest{Topic: "sunset"})

	var genErr *model.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Error(t, errors.Unwrap(genErr))
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stripCodeFence(tc.in))
	}
}
