package suggest

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"rentwise-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the suggestion service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches suggestion routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/suggest", h.suggest)
}

type suggestResponse struct {
	Suggestion []string `json:"suggestion"`
}

func (h *Handler) suggest(c *gin.Context) {
	// Missing or malformed bodies are tolerated; the price defaults to 0.
	var body map[string]any
	_ = c.ShouldBindJSON(&body)
	budget := coercePrice(body["price"])

	result, err := h.Svc.Suggest(c.Request.Context(), budget)
	if err != nil {
		if errors.Is(err, ErrMissingCredential) {
			respond.Error(c, http.StatusServiceUnavailable, "missing_credential",
				"Groq API key is not configured. Set GROQ_API_KEY in the environment.", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch suggestions", nil)
		return
	}

	c.Set("suggestOutcome", string(result.Outcome))
	c.Set("suggestAttempts", result.Attempts)
	respond.OK(c, suggestResponse{Suggestion: result.Suggestions})
}

// coercePrice turns whatever arrived in the "price" field into a finite
// non-negative budget. Invalid input becomes 0, never a rejection.
func coercePrice(raw any) float64 {
	var val float64
	switch v := raw.(type) {
	case float64:
		val = v
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			val = parsed
		}
	}
	if math.IsNaN(val) || math.IsInf(val, 0) || val < 0 {
		return 0
	}
	return val
}
