package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepdeck/prepdeck-backend/internal/apierr"
	"github.com/prepdeck/prepdeck-backend/internal/logger"
	"github.com/prepdeck/prepdeck-backend/internal/services"
)

type PracticeHandler struct {
	log         *logger.Logger
	practiceSvc services.PracticeService
	genSvc      services.GenerationService
}

func NewPracticeHandler(log *logger.Logger, practiceSvc services.PracticeService, genSvc services.GenerationService) *PracticeHandler {
	return &PracticeHandler{
		log:         log.With("handler", "PracticeHandler"),
		practiceSvc: practiceSvc,
		genSvc:      genSvc,
	}
}

// POST /api/questions/generate
// body: { "jobTitle": "...", "category": "...", "difficulty": "medium" } —
// difficulty is optional and defaults to easy.
func (h *PracticeHandler) GenerateQuestions(c *gin.Context) {
	var req struct {
		JobTitle   string `json:"jobTitle" binding:"required"`
		Category   string `json:"category" binding:"required"`
		Difficulty string `json:"difficulty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("missing fields: jobTitle or category"))
		return
	}

	questions, err := h.genSvc.Generate(c.Request.Context(), req.JobTitle, req.Category, req.Difficulty)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"questions": questions})
}

// POST /api/practice/history
// body: { "jobTitle": "...", "category": "..." }
func (h *PracticeHandler) GetHistory(c *gin.Context) {
	var req struct {
		JobTitle string `json:"jobTitle" binding:"required"`
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("missing fields: jobTitle or category"))
		return
	}

	history, next, err := h.practiceSvc.History(c.Request.Context(), req.JobTitle, req.Category)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{
		"nextDifficulty": next,
		"history":        history,
	})
}

// POST /api/practice/progress
// body: { "jobTitle": "...", "category": "...", "question": "...",
//         "difficulty": "easy", "isCorrect": true }
func (h *PracticeHandler) SaveProgress(c *gin.Context) {
	var req struct {
		JobTitle   string `json:"jobTitle" binding:"required"`
		Category   string `json:"category" binding:"required"`
		Question   string `json:"question" binding:"required"`
		Difficulty string `json:"difficulty" binding:"required"`
		IsCorrect  bool   `json:"isCorrect"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("missing fields: jobTitle, category, question or difficulty"))
		return
	}

	id, err := h.practiceSvc.RecordProgress(c.Request.Context(), req.JobTitle, req.Category, req.Question, req.Difficulty, req.IsCorrect)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, http.StatusCreated, gin.H{"insertedId": id})
}
