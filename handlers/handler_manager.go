package handlers

import (
	"github.com/Okemwag/CervicalCancer/services"
)

type HandlerManager struct {
	PatientHandler *PatientHandler
	PredictHandler *PredictHandler
}

func NewHandlerManager(sm *services.ServiceManager) *HandlerManager {
	return &HandlerManager{
		PatientHandler: NewPatientHandler(sm.PatientService),
		PredictHandler: NewPredictHandler(sm.PredictionService),
	}
}
