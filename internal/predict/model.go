package predict

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed model_coefficients.json
var coefficientsJSON []byte

// Features are the seven ordered numeric inputs of the rent model.
type Features struct {
	Bedrooms   float64 `json:"bedrooms"`
	Bathrooms  float64 `json:"bathrooms"`
	LotArea    float64 `json:"lotarea"`
	Grade      float64 `json:"grade"`
	Condition  float64 `json:"condition"`
	Waterfront float64 `json:"waterfront"`
	Views      float64 `json:"views"`
}

// Model is a linear regression over Features producing a logarithm-scaled
// monthly rent. Coefficients are data, embedded at build time.
type Model struct {
	Intercept float64 `json:"intercept"`
	Weights   struct {
		Bedrooms   float64 `json:"bedrooms"`
		Bathrooms  float64 `json:"bathrooms"`
		LotArea    float64 `json:"lotarea"`
		Grade      float64 `json:"grade"`
		Condition  float64 `json:"condition"`
		Waterfront float64 `json:"waterfront"`
		Views      float64 `json:"views"`
	} `json:"weights"`
}

// LoadModel parses the embedded coefficients.
func LoadModel() (*Model, error) {
	var m Model
	if err := json.Unmarshal(coefficientsJSON, &m); err != nil {
		return nil, fmt.Errorf("parse model coefficients: %w", err)
	}
	return &m, nil
}

// PredictLog returns the log-scale rent estimate for the given features.
// Pure; shares no state with anything else.
func (m *Model) PredictLog(f Features) float64 {
	return m.Intercept +
		m.Weights.Bedrooms*f.Bedrooms +
		m.Weights.Bathrooms*f.Bathrooms +
		m.Weights.LotArea*f.LotArea +
		m.Weights.Grade*f.Grade +
		m.Weights.Condition*f.Condition +
		m.Weights.Waterfront*f.Waterfront +
		m.Weights.Views*f.Views
}
