package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Okemwag/CervicalCancer/handlers"
	"github.com/Okemwag/CervicalCancer/middleware"
)

func SetupRoutes(hm *handlers.HandlerManager) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middleware.RequestID())

	api := r.Group("/api/v1")
	{
		patients := api.Group("/patients")
		{
			patients.POST("", hm.PatientHandler.CreatePatient)
			patients.GET("", hm.PatientHandler.ListPatients)
			patients.GET("/:id", hm.PatientHandler.GetPatient)
		}

		api.POST("/predict", hm.PredictHandler.Predict)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	return r
}
