package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/prepdeck/prepdeck-backend/internal/handlers"
)

type RouterConfig struct {
	AllowOrigins    []string
	QuestionHandler *handlers.QuestionHandler
	PracticeHandler *handlers.PracticeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Question bank
		api.POST("/questions", cfg.QuestionHandler.SaveQuestion)
		api.GET("/questions", cfg.QuestionHandler.ListQuestions)
		api.PATCH("/questions", cfg.QuestionHandler.UpdateQuestion)
		api.DELETE("/questions", cfg.QuestionHandler.DeleteQuestion)
		// Generation + practice log
		api.POST("/questions/generate", cfg.PracticeHandler.GenerateQuestions)
		api.POST("/practice/history", cfg.PracticeHandler.GetHistory)
		api.POST("/practice/progress", cfg.PracticeHandler.SaveProgress)
	}

	return router
}
