package history_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"rentwise-backend/internal/history"
)

func newHistoryRouter(repo history.Repo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	history.NewHandler(repo).RegisterRoutes(api)
	return r
}

func TestHistoryEndpointListsNewestFirst(t *testing.T) {
	repo := history.NewMemoryRepo()
	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Insert(context.Background(), history.Prediction{
			ID:            id,
			PredictedRent: 10000,
			CreatedAt:     time.Now().UTC(),
		}); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	r := newHistoryRouter(repo)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/history?limit=2", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp []history.PredictionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != "c" {
		t.Fatalf("response = %+v, want two records newest first", resp)
	}
}

func TestHistoryEndpointEmptyListIsNotNull(t *testing.T) {
	r := newHistoryRouter(history.NewMemoryRepo())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/history", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("body = %q, want empty JSON array", body)
	}
}
