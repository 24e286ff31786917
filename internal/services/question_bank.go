package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck-backend/internal/apierr"
	"github.com/prepdeck/prepdeck-backend/internal/logger"
	"github.com/prepdeck/prepdeck-backend/internal/repos"
	"github.com/prepdeck/prepdeck-backend/internal/types"
)

// QuestionBankService owns the saved-question lifecycle: save, list, mark
// solved / tag, delete.
type QuestionBankService interface {
	Save(ctx context.Context, jobTitle, category, question string) (uuid.UUID, error)
	List(ctx context.Context) ([]types.SavedQuestion, error)
	Update(ctx context.Context, id string, solved *bool, tag *string) error
	Delete(ctx context.Context, id string) error
}

type questionBankService struct {
	log       *logger.Logger
	questions repos.SavedQuestionRepo
}

func NewQuestionBankService(log *logger.Logger, questions repos.SavedQuestionRepo) QuestionBankService {
	return &questionBankService{
		log:       log.With("service", "QuestionBankService"),
		questions: questions,
	}
}

func (s *questionBankService) Save(ctx context.Context, jobTitle, category, question string) (uuid.UUID, error) {
	if strings.TrimSpace(jobTitle) == "" || strings.TrimSpace(category) == "" || strings.TrimSpace(question) == "" {
		return uuid.Nil, apierr.Validation("jobTitle, category and question are required")
	}

	saved := &types.SavedQuestion{
		JobTitle: jobTitle,
		Category: category,
		Question: question,
		Solved:   false,
	}
	if err := s.questions.Create(ctx, saved); err != nil {
		s.log.Error("Failed to save question", "error", err)
		return uuid.Nil, apierr.Store(err)
	}
	return saved.ID, nil
}

func (s *questionBankService) List(ctx context.Context) ([]types.SavedQuestion, error) {
	questions, err := s.questions.List(ctx)
	if err != nil {
		s.log.Error("Failed to list questions", "error", err)
		return nil, apierr.Store(err)
	}
	if questions == nil {
		questions = []types.SavedQuestion{}
	}
	return questions, nil
}

func (s *questionBankService) Update(ctx context.Context, id string, solved *bool, tag *string) error {
	questionID, err := parseID(id)
	if err != nil {
		return err
	}

	fields := map[string]any{}
	if solved != nil {
		fields["solved"] = *solved
	}
	if tag != nil {
		fields["tag"] = *tag
	}
	if len(fields) == 0 {
		return nil
	}

	// An id matching zero rows is deliberately a silent no-op, mirroring
	// update-by-id semantics the API has always had.
	rows, err := s.questions.Update(ctx, questionID, fields)
	if err != nil {
		s.log.Error("Failed to update question", "error", err, "id", id)
		return apierr.Store(err)
	}
	if rows == 0 {
		s.log.Debug("Update matched no rows", "id", id)
	}
	return nil
}

func (s *questionBankService) Delete(ctx context.Context, id string) error {
	questionID, err := parseID(id)
	if err != nil {
		return err
	}
	// Deleting an id that is already gone succeeds: delete is idempotent.
	if err := s.questions.Delete(ctx, questionID); err != nil {
		s.log.Error("Failed to delete question", "error", err, "id", id)
		return apierr.Store(err)
	}
	return nil
}

func parseID(id string) (uuid.UUID, error) {
	if strings.TrimSpace(id) == "" {
		return uuid.Nil, apierr.Validation("id is required")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apierr.Validation("id is not a valid identifier")
	}
	return parsed, nil
}
