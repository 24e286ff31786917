package services

import (
	"context"
	"strings"

	"github.com/prepdeck/prepdeck-backend/internal/apierr"
	"github.com/prepdeck/prepdeck-backend/internal/clients/gemini"
	"github.com/prepdeck/prepdeck-backend/internal/difficulty"
	"github.com/prepdeck/prepdeck-backend/internal/logger"
)

// GenerationService produces interview questions for a role/category at a
// difficulty tier via the Gemini gateway.
type GenerationService interface {
	Generate(ctx context.Context, jobTitle, category, difficultyTier string) ([]string, error)
}

type generationService struct {
	log    *logger.Logger
	gemini gemini.Client
}

func NewGenerationService(log *logger.Logger, geminiClient gemini.Client) GenerationService {
	return &generationService{
		log:    log.With("service", "GenerationService"),
		gemini: geminiClient,
	}
}

func (s *generationService) Generate(ctx context.Context, jobTitle, category, difficultyTier string) ([]string, error) {
	if strings.TrimSpace(jobTitle) == "" || strings.TrimSpace(category) == "" {
		return nil, apierr.Validation("jobTitle and category are required")
	}
	if strings.TrimSpace(difficultyTier) == "" {
		difficultyTier = string(difficulty.Easy)
	}
	if !difficulty.Valid(difficultyTier) {
		return nil, apierr.Validation("difficulty must be one of easy, medium, hard")
	}

	questions, err := s.gemini.GenerateQuestions(ctx, jobTitle, category, difficultyTier)
	if err != nil {
		// Surfaced directly; the caller decides whether to retry.
		return nil, apierr.Gateway(err)
	}
	if questions == nil {
		questions = []string{}
	}
	return questions, nil
}
