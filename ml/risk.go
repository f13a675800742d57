package ml

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScore means a score outside [0,1] reached classification. It
// should not happen given the scorer's output contract.
var ErrInvalidScore = errors.New("invalid risk score")

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Risk band thresholds. Half-open on the lower bound: exactly 0.30 is Medium
// and exactly 0.70 is High.
const (
	mediumThreshold = 0.3
	highThreshold   = 0.7
)

func ClassifyScore(score float64) (RiskLevel, error) {
	if math.IsNaN(score) || score < 0 || score > 1 {
		return "", fmt.Errorf("%w: %v", ErrInvalidScore, score)
	}

	switch {
	case score < mediumThreshold:
		return RiskLow, nil
	case score < highThreshold:
		return RiskMedium, nil
	default:
		return RiskHigh, nil
	}
}

// Recommendations returns the advisory list for a risk level, most urgent
// action first. The returned slice is a fresh copy on every call.
func Recommendations(level RiskLevel) []string {
	switch level {
	case RiskHigh:
		return []string{
			"Schedule immediate screening",
			"Consult gynecologist within 2 weeks",
			"Consider HPV testing",
		}
	case RiskMedium:
		return []string{
			"Schedule screening within 6 months",
			"Regular check-ups",
			"Discuss risk factors with doctor",
		}
	default:
		return []string{
			"Continue regular screening",
			"Maintain healthy lifestyle",
			"Annual check-up recommended",
		}
	}
}
