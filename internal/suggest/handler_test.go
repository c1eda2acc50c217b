package suggest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"rentwise-backend/internal/llm"
	"rentwise-backend/internal/suggest"
)

type scriptedClient struct {
	response string
	requests []llm.ChatRequest
}

func (s *scriptedClient) Complete(ctx context.Context, req llm.ChatRequest) (string, error) {
	_ = ctx
	s.requests = append(s.requests, req)
	return s.response, nil
}

func newSuggestRouter(client llm.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := suggest.NewService(client, &suggest.Builder{Denylist: []string{"DLF"}}, time.Millisecond, "Unable to fetch live property suggestions. Please retry.")
	r := gin.New()
	api := r.Group("/api/v1")
	suggest.NewHandler(svc).RegisterRoutes(api)
	return r
}

func postSuggest(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/suggest", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeSuggestion(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var resp struct {
		Suggestion []string `json:"suggestion"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return resp.Suggestion
}

func TestSuggestEndpointSuccess(t *testing.T) {
	client := &scriptedClient{response: `["Marina Heights — Dubai Marina, Dubai, UAE", "One Hyde Park — Knightsbridge, London, UK"]`}
	r := newSuggestRouter(client)

	w := postSuggest(t, r, `{"price": 50000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	got := decodeSuggestion(t, w)
	if len(got) != 2 || got[0] != "Marina Heights — Dubai Marina, Dubai, UAE" {
		t.Fatalf("suggestion = %v", got)
	}
}

func TestSuggestEndpointCoercesInvalidPrice(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing price", body: `{}`},
		{name: "no body", body: ``},
		{name: "non-numeric price", body: `{"price": "lots"}`},
		{name: "negative price", body: `{"price": -12}`},
		{name: "numeric string price", body: `{"price": "50000"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			client := &scriptedClient{response: `["Palm Grove Villas — Sentosa, Singapore"]`}
			r := newSuggestRouter(client)

			w := postSuggest(t, r, tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200 (invalid price coerced, not rejected)", w.Code)
			}
			if len(client.requests) == 0 {
				t.Fatal("expected the pipeline to run")
			}
		})
	}
}

func TestSuggestEndpointFallbackKeepsSuccessShape(t *testing.T) {
	client := &scriptedClient{response: "garbage"}
	r := newSuggestRouter(client)

	w := postSuggest(t, r, `{"price": 50000}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for fallback", w.Code)
	}
	got := decodeSuggestion(t, w)
	if len(got) != 1 || got[0] != "Unable to fetch live property suggestions. Please retry." {
		t.Fatalf("suggestion = %v, want the fixed placeholder", got)
	}
}

func TestSuggestEndpointMissingCredential(t *testing.T) {
	r := newSuggestRouter(nil)

	w := postSuggest(t, r, `{"price": 50000}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", w.Code)
	}
	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp.Error.Code != "missing_credential" || resp.Error.Message == "" {
		t.Fatalf("error = %+v, want missing_credential with a readable message", resp.Error)
	}
}
