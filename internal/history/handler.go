package history

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rentwise-backend/internal/shared/server/respond"
)

// Handler serves the prediction history consumed by the dashboard.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches history routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/history", h.list)
}

// PredictionResponse is the wire form of one recorded prediction.
type PredictionResponse struct {
	ID            string  `json:"id"`
	Bedrooms      float64 `json:"bedrooms"`
	Bathrooms     float64 `json:"bathrooms"`
	LotArea       float64 `json:"lotarea"`
	Grade         float64 `json:"grade"`
	Condition     float64 `json:"condition"`
	Waterfront    float64 `json:"waterfront"`
	Views         float64 `json:"views"`
	PredictedRent float64 `json:"predictedRent"`
	CreatedAt     string  `json:"createdAt"`
}

func (h *Handler) list(c *gin.Context) {
	limit := 20
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}

	records, err := h.Repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list predictions", nil)
		return
	}

	resp := make([]PredictionResponse, 0, len(records))
	for _, p := range records {
		resp = append(resp, PredictionResponse{
			ID:            p.ID,
			Bedrooms:      p.Bedrooms,
			Bathrooms:     p.Bathrooms,
			LotArea:       p.LotArea,
			Grade:         p.Grade,
			Condition:     p.Condition,
			Waterfront:    p.Waterfront,
			Views:         p.Views,
			PredictedRent: p.PredictedRent,
			CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	respond.OK(c, resp)
}
