package types

import (
	"time"

	"github.com/google/uuid"
)

// PracticeRecord is one answered question in the practice log. Records are
// append-only: nothing in the codebase updates or deletes them. They relate
// to SavedQuestion only by matching text fields, never by id.
type PracticeRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobTitle   string    `gorm:"not null;index:idx_practice_record_scope" json:"jobTitle"`
	Category   string    `gorm:"not null;index:idx_practice_record_scope" json:"category"`
	Question   string    `gorm:"not null" json:"question"`
	Difficulty string    `gorm:"not null" json:"difficulty"`
	IsCorrect  bool      `gorm:"not null" json:"isCorrect"`
	CreatedAt  time.Time `gorm:"not null;index" json:"createdAt"`
}

func (PracticeRecord) TableName() string { return "practice_record" }
