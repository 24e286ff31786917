package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/prepdeck/prepdeck-backend/internal/logger"
	"github.com/prepdeck/prepdeck-backend/internal/types"
)

type PracticeRecordRepo interface {
	Create(ctx context.Context, record *types.PracticeRecord) error
	// RecentFor returns up to limit records for the exact (jobTitle,
	// category) pair, newest first. No matches yields an empty slice.
	RecentFor(ctx context.Context, jobTitle, category string, limit int) ([]types.PracticeRecord, error)
}

type practiceRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPracticeRecordRepo(db *gorm.DB, baseLog *logger.Logger) PracticeRecordRepo {
	repoLog := baseLog.With("repo", "PracticeRecordRepo")
	return &practiceRecordRepo{db: db, log: repoLog}
}

func (r *practiceRecordRepo) Create(ctx context.Context, record *types.PracticeRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return err
	}
	return nil
}

func (r *practiceRecordRepo) RecentFor(ctx context.Context, jobTitle, category string, limit int) ([]types.PracticeRecord, error) {
	var results []types.PracticeRecord
	if err := r.db.WithContext(ctx).
		Where("job_title = ? AND category = ?", jobTitle, category).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
