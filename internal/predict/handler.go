package predict

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rentwise-backend/internal/history"
	"rentwise-backend/internal/shared/metrics"
	"rentwise-backend/internal/shared/server/respond"
	"rentwise-backend/internal/shared/telemetry"
	"rentwise-backend/internal/shared/util"
)

// Handler wires HTTP handlers to the rent model.
type Handler struct {
	Model   *Model
	History history.Repo
}

// NewHandler constructs a Handler. History may be nil to disable recording.
func NewHandler(model *Model, historyRepo history.Repo) *Handler {
	return &Handler{Model: model, History: historyRepo}
}

// RegisterRoutes attaches prediction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/predict", h.predict)
}

type predictResponse struct {
	Prediction float64 `json:"prediction"`
	Message    string  `json:"message"`
}

func (h *Handler) predict(c *gin.Context) {
	var features Features
	if err := c.ShouldBindJSON(&features); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "all seven numeric features are required", nil)
		return
	}

	rent := math.Exp(h.Model.PredictLog(features))
	metrics.IncPredict()

	h.record(c, features, rent)

	respond.OK(c, predictResponse{
		Prediction: rent,
		Message:    "Predicted Rent: ₹" + util.FormatAmount(rent),
	})
}

// record stores the prediction for the dashboard. Best effort: a storage
// failure is logged and never fails the prediction itself.
func (h *Handler) record(c *gin.Context, features Features, rent float64) {
	if h.History == nil {
		return
	}
	err := h.History.Insert(c.Request.Context(), history.Prediction{
		ID:            uuid.NewString(),
		Bedrooms:      features.Bedrooms,
		Bathrooms:     features.Bathrooms,
		LotArea:       features.LotArea,
		Grade:         features.Grade,
		Condition:     features.Condition,
		Waterfront:    features.Waterfront,
		Views:         features.Views,
		PredictedRent: rent,
		CreatedAt:     time.Now().UTC(),
	})
	if err != nil {
		telemetry.Warn("predict.history_insert_failed", map[string]any{"error": err.Error()})
	}
}
