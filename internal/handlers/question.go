package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prepdeck/prepdeck-backend/internal/apierr"
	"github.com/prepdeck/prepdeck-backend/internal/logger"
	"github.com/prepdeck/prepdeck-backend/internal/services"
)

type QuestionHandler struct {
	log     *logger.Logger
	bankSvc services.QuestionBankService
}

func NewQuestionHandler(log *logger.Logger, bankSvc services.QuestionBankService) *QuestionHandler {
	return &QuestionHandler{
		log:     log.With("handler", "QuestionHandler"),
		bankSvc: bankSvc,
	}
}

// POST /api/questions
// body: { "jobTitle": "...", "category": "...", "question": "..." }
func (h *QuestionHandler) SaveQuestion(c *gin.Context) {
	var req struct {
		JobTitle string `json:"jobTitle" binding:"required"`
		Category string `json:"category" binding:"required"`
		Question string `json:"question" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("missing fields: jobTitle, category or question"))
		return
	}

	id, err := h.bankSvc.Save(c.Request.Context(), req.JobTitle, req.Category, req.Question)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, http.StatusCreated, gin.H{"insertedId": id})
}

// GET /api/questions
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	questions, err := h.bankSvc.List(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"questions": questions})
}

// PATCH /api/questions
// body: { "id": "...", "solved": true, "tag": "arrays" } — solved and tag
// are both optional; an unknown id is a no-op.
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req struct {
		ID     string  `json:"id" binding:"required"`
		Solved *bool   `json:"solved"`
		Tag    *string `json:"tag"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("missing id"))
		return
	}

	if err := h.bankSvc.Update(c.Request.Context(), req.ID, req.Solved, req.Tag); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, nil)
}

// DELETE /api/questions
// body: { "id": "..." }
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apierr.Validation("missing id"))
		return
	}

	if err := h.bankSvc.Delete(c.Request.Context(), req.ID); err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, nil)
}
