package history

import "time"

// Prediction is one recorded rent prediction, kept for the dashboard.
type Prediction struct {
	ID            string
	Bedrooms      float64
	Bathrooms     float64
	LotArea       float64
	Grade         float64
	Condition     float64
	Waterfront    float64
	Views         float64
	PredictedRent float64
	CreatedAt     time.Time
}
