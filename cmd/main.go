package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prepdeck/prepdeck-backend/internal/clients/gemini"
	"github.com/prepdeck/prepdeck-backend/internal/db"
	"github.com/prepdeck/prepdeck-backend/internal/handlers"
	"github.com/prepdeck/prepdeck-backend/internal/logger"
	"github.com/prepdeck/prepdeck-backend/internal/repos"
	"github.com/prepdeck/prepdeck-backend/internal/server"
	"github.com/prepdeck/prepdeck-backend/internal/services"
	"github.com/prepdeck/prepdeck-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	savedQuestionRepo := repos.NewSavedQuestionRepo(thePG, log)
	practiceRecordRepo := repos.NewPracticeRecordRepo(thePG, log)

	// Clients
	log.Info("Setting up Gemini client from main...")
	geminiClient, err := gemini.NewClient(context.Background(), log)
	if err != nil {
		log.Error("Could not init Gemini client", "error", err)
		os.Exit(1)
	}

	// Services
	log.Info("Setting up services from main...")
	bankService := services.NewQuestionBankService(log, savedQuestionRepo)
	practiceService := services.NewPracticeService(log, practiceRecordRepo)
	generationService := services.NewGenerationService(log, geminiClient)

	// Handlers
	log.Info("Setting up handlers from main...")
	questionHandler := handlers.NewQuestionHandler(log, bankService)
	practiceHandler := handlers.NewPracticeHandler(log, practiceService, generationService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AllowOrigins:    utils.GetEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}, log),
		QuestionHandler: questionHandler,
		PracticeHandler: practiceHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
