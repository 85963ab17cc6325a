package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OptionCount is the fixed number of choices per question; the answer index
// is the implicit choice identifier.
const OptionCount = 4

type Question struct {
	ID        uint                        `gorm:"primarykey" json:"id"`
	QuizID    uint                        `json:"quiz_id" gorm:"not null;index"`
	Text      string                      `json:"text" gorm:"type:text;not null"`
	Options   datatypes.JSONSlice[string] `json:"options" gorm:"not null"`
	Answer    int                         `json:"answer" gorm:"not null"` // index into Options, [0, OptionCount)
	Position  int                         `json:"position" gorm:"not null"`
	CreatedAt time.Time                   `json:"created_at"`
	UpdatedAt time.Time                   `json:"updated_at"`
	DeletedAt gorm.DeletedAt              `gorm:"index" json:"-"`
}
