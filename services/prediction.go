package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Okemwag/CervicalCancer/ml"
	"github.com/Okemwag/CervicalCancer/models"
)

type PredictionService interface {
	PredictRisk(ctx context.Context, req models.PredictRequest) (*models.PredictionResponse, error)
}

type predictionService struct {
	db        *gorm.DB
	predictor ml.Scorer
}

func NewPredictionService(db *gorm.DB, predictor ml.Scorer) PredictionService {
	return &predictionService{
		db:        db,
		predictor: predictor,
	}
}

// PredictRisk runs the prediction pipeline: build the feature vector, score
// it, classify the score, persist the prediction, attach recommendations.
// The patient check and the insert share one transaction so a failed write
// never leaves a partial prediction behind. No step is retried; errors go
// straight back to the caller.
func (s *predictionService) PredictRisk(ctx context.Context, req models.PredictRequest) (*models.PredictionResponse, error) {
	features := ml.FeatureVector{
		Age:              req.Age,
		Pregnancies:      req.Pregnancies,
		Smoking:          req.Smoking,
		ContraceptiveUse: req.ContraceptiveUse,
		SexualPartners:   req.SexualPartners,
		STDHistory:       req.STDHistory,
	}

	score, err := s.predictor.Score(features)
	if err != nil {
		return nil, err
	}

	level, err := ml.ClassifyScore(score)
	if err != nil {
		return nil, err
	}

	prediction := models.Prediction{
		PatientID: req.PatientID,
		RiskScore: score,
		RiskLevel: string(level),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Validate before writing anything.
		var patient models.Patient
		if err := tx.First(&patient, req.PatientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPatientNotFound
			}
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		if err := tx.Create(&prediction).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &models.PredictionResponse{
		ID:              prediction.ID,
		PatientID:       prediction.PatientID,
		RiskScore:       prediction.RiskScore,
		RiskLevel:       prediction.RiskLevel,
		CreatedAt:       prediction.CreatedAt,
		Recommendations: ml.Recommendations(level),
	}, nil
}
