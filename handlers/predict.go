package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Okemwag/CervicalCancer/ml"
	"github.com/Okemwag/CervicalCancer/models"
	"github.com/Okemwag/CervicalCancer/services"
)

type PredictHandler struct {
	predictionService services.PredictionService
}

func NewPredictHandler(predictionService services.PredictionService) *PredictHandler {
	return &PredictHandler{predictionService: predictionService}
}

// Predict runs the risk pipeline for one patient and returns the stored
// assessment with its recommendations.
func (h *PredictHandler) Predict(c *gin.Context) {
	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.predictionService.PredictRisk(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPatientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		case errors.Is(err, ml.ErrInference):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Prediction failed"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}
