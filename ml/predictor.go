package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

var (
	// ErrModelUnavailable means the model artifact could not be loaded.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrInference means the feature vector does not match the model inputs.
	ErrInference = errors.New("inference failed")
)

// Scorer estimates the probability of the positive class for one patient.
// Implementations must be safe for concurrent use.
type Scorer interface {
	Score(features FeatureVector) (float64, error)
}

// LogisticModel is a pre-trained logistic regression stored as a JSON
// artifact. It is loaded once at startup and immutable afterwards.
type LogisticModel struct {
	Features []string  `json:"features"`
	Weights  []float64 `json:"weights"`
	Bias     float64   `json:"bias"`
}

// LoadModel reads the model artifact from path. Call it once per process and
// reuse the returned model; the artifact is never reloaded per request.
func LoadModel(path string) (*LogisticModel, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	var model LogisticModel
	if err := json.Unmarshal(payload, &model); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if len(model.Weights) == 0 {
		return nil, fmt.Errorf("%w: artifact has no weights", ErrModelUnavailable)
	}

	return &model, nil
}

// Score returns the model's probability estimate in [0,1].
func (m *LogisticModel) Score(features FeatureVector) (float64, error) {
	values := features.Values()
	if len(m.Weights) != len(values) {
		return 0, fmt.Errorf("%w: model expects %d features, got %d",
			ErrInference, len(m.Weights), len(values))
	}

	z := m.Bias
	for i, w := range m.Weights {
		z += w * values[i]
	}

	score := 1 / (1 + math.Exp(-z))
	if math.IsNaN(score) {
		return 0, fmt.Errorf("%w: non-finite score", ErrInference)
	}
	return score, nil
}
