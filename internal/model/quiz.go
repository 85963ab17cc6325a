package model

import (
	"time"

	"gorm.io/gorm"
)

// CodeLength is the length of the public join code printed on screen for
// participants to type in.
const CodeLength = 6

type Quiz struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Code         string         `json:"code" gorm:"size:12;not null;uniqueIndex"`
	Title        string         `json:"title" gorm:"not null"`
	Started      bool           `json:"started" gorm:"not null;default:false"`
	Questions    []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Participants []Participant  `json:"participants,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
