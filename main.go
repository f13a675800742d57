package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Okemwag/CervicalCancer/config"
	"github.com/Okemwag/CervicalCancer/db"
	"github.com/Okemwag/CervicalCancer/handlers"
	"github.com/Okemwag/CervicalCancer/ml"
	"github.com/Okemwag/CervicalCancer/routes"
	"github.com/Okemwag/CervicalCancer/services"
)

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	settings := config.Load()
	if !settings.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	database, err := db.NewDB(settings)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		log.Fatal("Failed to retrieve underlying SQL DB:", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("Error closing DB connection: %v", cerr)
		}
	}()

	// Create tables on startup
	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Load the risk model once; it is reused for every request
	predictor, err := ml.LoadModel(settings.ModelPath)
	if err != nil {
		log.Fatal("Failed to load risk model:", err)
	}
	log.Printf("Loaded risk model from %s", settings.ModelPath)

	// Create service manager with all dependencies
	serviceManager := services.NewServiceManager(database, predictor)

	// Create handler manager with service manager
	handlerManager := handlers.NewHandlerManager(serviceManager)

	// Setup routes
	r := routes.SetupRoutes(handlerManager)

	log.Printf("🚀 %s v%s starting on port %s", settings.APITitle, settings.APIVersion, settings.Port)
	log.Fatal(r.Run(":" + settings.Port))
}
