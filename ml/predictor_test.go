package ml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "risk_model.json")
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))
	return path
}

func TestLoadModel(t *testing.T) {
	path := writeArtifact(t, `{
		"features": ["age","pregnancies","smoking","contraceptive_use","sexual_partners","std_history"],
		"weights": [0.02, 0.1, 0.8, -0.2, 0.15, 0.9],
		"bias": -2.5
	}`)

	model, err := LoadModel(path)
	require.NoError(t, err)
	assert.Len(t, model.Weights, 6)
	assert.Equal(t, FeatureNames, model.Features)
}

func TestLoadModel_Missing(t *testing.T) {
	_, err := LoadModel(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestLoadModel_Corrupt(t *testing.T) {
	path := writeArtifact(t, `not json at all`)
	_, err := LoadModel(path)
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestLoadModel_NoWeights(t *testing.T) {
	path := writeArtifact(t, `{"features": [], "weights": [], "bias": 0}`)
	_, err := LoadModel(path)
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestScore_ZeroModel(t *testing.T) {
	// All-zero weights and bias collapse the sigmoid to exactly 0.5.
	model := &LogisticModel{Weights: make([]float64, 6)}

	score, err := model.Score(FeatureVector{Age: 45, Pregnancies: 2, Smoking: true})
	require.NoError(t, err)
	assert.Equal(t, 0.5, score)
}

func TestScore_Range(t *testing.T) {
	model := &LogisticModel{
		Weights: []float64{0.02, 0.1, 0.8, -0.2, 0.15, 0.9},
		Bias:    -2.5,
	}

	vectors := []FeatureVector{
		{Age: 18},
		{Age: 45, Pregnancies: 2, Smoking: true, SexualPartners: 3, STDHistory: true},
		{Age: 90, Pregnancies: 10, Smoking: true, ContraceptiveUse: true, SexualPartners: 20, STDHistory: true},
	}
	for _, fv := range vectors {
		score, err := model.Score(fv)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScore_RiskFactorsRaiseScore(t *testing.T) {
	model := &LogisticModel{
		Weights: []float64{0.02, 0.1, 0.8, -0.2, 0.15, 0.9},
		Bias:    -2.5,
	}

	low, err := model.Score(FeatureVector{Age: 30})
	require.NoError(t, err)
	high, err := model.Score(FeatureVector{Age: 30, Smoking: true, STDHistory: true, SexualPartners: 5})
	require.NoError(t, err)
	assert.Greater(t, high, low)
}

func TestScore_ArityMismatch(t *testing.T) {
	model := &LogisticModel{Weights: []float64{0.1, 0.2}}

	_, err := model.Score(FeatureVector{Age: 30})
	assert.ErrorIs(t, err, ErrInference)
}

func TestFeatureVector_Values(t *testing.T) {
	fv := FeatureVector{
		Age:              45,
		Pregnancies:      2,
		Smoking:          true,
		ContraceptiveUse: false,
		SexualPartners:   3,
		STDHistory:       true,
	}

	assert.Equal(t, []float64{45, 2, 1, 0, 3, 1}, fv.Values())
	assert.Len(t, FeatureNames, len(fv.Values()))
}
