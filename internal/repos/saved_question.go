package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepdeck/prepdeck-backend/internal/logger"
	"github.com/prepdeck/prepdeck-backend/internal/types"
)

type SavedQuestionRepo interface {
	Create(ctx context.Context, question *types.SavedQuestion) error
	List(ctx context.Context) ([]types.SavedQuestion, error)
	// Update applies only the given fields and reports how many rows
	// matched. Zero matches is not an error.
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type savedQuestionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSavedQuestionRepo(db *gorm.DB, baseLog *logger.Logger) SavedQuestionRepo {
	repoLog := baseLog.With("repo", "SavedQuestionRepo")
	return &savedQuestionRepo{db: db, log: repoLog}
}

func (r *savedQuestionRepo) Create(ctx context.Context, question *types.SavedQuestion) error {
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return err
	}
	return nil
}

func (r *savedQuestionRepo) List(ctx context.Context) ([]types.SavedQuestion, error) {
	var results []types.SavedQuestion
	if err := r.db.WithContext(ctx).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *savedQuestionRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]any) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&types.SavedQuestion{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *savedQuestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.SavedQuestion{}).Error; err != nil {
		return err
	}
	return nil
}
