package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UnansweredIndex is the sentinel stored in an answers slice when a
// participant left a question blank. It never matches a valid answer index.
const UnansweredIndex = -1

type Participant struct {
	ID          uint                     `gorm:"primarykey" json:"id"`
	QuizID      uint                     `json:"quiz_id" gorm:"not null;uniqueIndex:idx_participant_quiz_name"`
	Name        string                   `json:"name" gorm:"not null;uniqueIndex:idx_participant_quiz_name"`
	Answers     datatypes.JSONSlice[int] `json:"answers"`
	Score       int                      `json:"score" gorm:"not null;default:0"`
	SubmittedAt *time.Time               `json:"submitted_at,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
	DeletedAt   gorm.DeletedAt           `gorm:"index" json:"-"`
}

// HasSubmitted reports whether the participant has handed in answers at least
// once. Joined-but-silent participants are excluded from the leaderboard.
func (p *Participant) HasSubmitted() bool {
	return p.SubmittedAt != nil
}
