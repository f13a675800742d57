package services

import (
	"gorm.io/gorm"

	"github.com/Okemwag/CervicalCancer/ml"
)

type ServiceManager struct {
	PatientService    PatientService
	PredictionService PredictionService
}

func NewServiceManager(db *gorm.DB, predictor ml.Scorer) *ServiceManager {
	return &ServiceManager{
		PatientService:    NewPatientService(db),
		PredictionService: NewPredictionService(db, predictor),
	}
}
