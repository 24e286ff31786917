package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck-backend/internal/apierr"
	"github.com/prepdeck/prepdeck-backend/internal/difficulty"
	"github.com/prepdeck/prepdeck-backend/internal/logger"
	"github.com/prepdeck/prepdeck-backend/internal/repos"
	"github.com/prepdeck/prepdeck-backend/internal/types"
)

// historyLimit caps how much history feeds a difficulty estimate. The
// estimator itself only scores the newest 5.
const historyLimit = 10

// PracticeService appends to the practice log and derives the next
// difficulty tier from it.
type PracticeService interface {
	RecordProgress(ctx context.Context, jobTitle, category, question, difficultyTier string, isCorrect bool) (uuid.UUID, error)
	History(ctx context.Context, jobTitle, category string) ([]types.PracticeRecord, difficulty.Tier, error)
}

type practiceService struct {
	log     *logger.Logger
	records repos.PracticeRecordRepo
}

func NewPracticeService(log *logger.Logger, records repos.PracticeRecordRepo) PracticeService {
	return &practiceService{
		log:     log.With("service", "PracticeService"),
		records: records,
	}
}

func (s *practiceService) RecordProgress(ctx context.Context, jobTitle, category, question, difficultyTier string, isCorrect bool) (uuid.UUID, error) {
	if strings.TrimSpace(jobTitle) == "" || strings.TrimSpace(category) == "" ||
		strings.TrimSpace(question) == "" || strings.TrimSpace(difficultyTier) == "" {
		return uuid.Nil, apierr.Validation("jobTitle, category, question and difficulty are required")
	}

	record := &types.PracticeRecord{
		JobTitle:   jobTitle,
		Category:   category,
		Question:   question,
		Difficulty: difficultyTier,
		IsCorrect:  isCorrect,
	}
	if err := s.records.Create(ctx, record); err != nil {
		s.log.Error("Failed to record progress", "error", err)
		return uuid.Nil, apierr.Store(err)
	}
	return record.ID, nil
}

func (s *practiceService) History(ctx context.Context, jobTitle, category string) ([]types.PracticeRecord, difficulty.Tier, error) {
	if strings.TrimSpace(jobTitle) == "" || strings.TrimSpace(category) == "" {
		return nil, "", apierr.Validation("jobTitle and category are required")
	}

	history, err := s.records.RecentFor(ctx, jobTitle, category, historyLimit)
	if err != nil {
		s.log.Error("Failed to load practice history", "error", err)
		return nil, "", apierr.Store(err)
	}
	if history == nil {
		history = []types.PracticeRecord{}
	}
	return history, difficulty.Next(history), nil
}
