package types

import (
	"time"

	"github.com/google/uuid"
)

// SavedQuestion is a question the user chose to keep in their bank. Identity
// is stable across mutations; only Solved and Tag change after creation.
type SavedQuestion struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	JobTitle  string    `gorm:"not null;index:idx_saved_question_scope" json:"jobTitle"`
	Category  string    `gorm:"not null;index:idx_saved_question_scope" json:"category"`
	Question  string    `gorm:"not null" json:"question"`
	Solved    bool      `gorm:"not null;default:false" json:"solved"`
	Tag       *string   `json:"tag,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

func (SavedQuestion) TableName() string { return "saved_question" }
