package difficulty

import (
	"github.com/prepdeck/prepdeck-backend/internal/types"
)

// Tier is a question difficulty level.
type Tier string

const (
	Easy   Tier = "easy"
	Medium Tier = "medium"
	Hard   Tier = "hard"
)

// window is how many of the most recent attempts feed the estimate.
const window = 5

// Valid reports whether s names a known tier.
func Valid(s string) bool {
	switch Tier(s) {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Next derives the tier for the next practice round from history, which must
// be ordered newest first. With no history the user starts at easy. Only the
// 5 most recent attempts are scored; the thresholds are inclusive on the
// upper side, so a ratio of exactly 0.8 already lands on hard.
func Next(history []types.PracticeRecord) Tier {
	if len(history) == 0 {
		return Easy
	}

	recent := history
	if len(recent) > window {
		recent = recent[:window]
	}

	correct := 0
	for _, rec := range recent {
		if rec.IsCorrect {
			correct++
		}
	}
	score := float64(correct) / float64(len(recent))

	switch {
	case score >= 0.8:
		return Hard
	case score >= 0.5:
		return Medium
	default:
		return Easy
	}
}
