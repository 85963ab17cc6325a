package repository

import (
	"github.com/AlexKurdi121/quizhub/internal/model"
	"gorm.io/gorm"
)

type ParticipantRepository interface {
	Create(participant *model.Participant) error
	Save(participant *model.Participant) error
	FindByQuizAndName(quizID uint, name string) (*model.Participant, error)
}

type participantRepository struct {
	db *gorm.DB
}

func NewParticipantRepository(db *gorm.DB) ParticipantRepository {
	return &participantRepository{db: db}
}

func (r *participantRepository) Create(participant *model.Participant) error {
	return r.db.Create(participant).Error
}

func (r *participantRepository) Save(participant *model.Participant) error {
	return r.db.Save(participant).Error
}

// FindByQuizAndName matches the name case-sensitively; "Alice" and "alice"
// are distinct participants.
func (r *participantRepository) FindByQuizAndName(quizID uint, name string) (*model.Participant, error) {
	var participant model.Participant
	if err := r.db.Where("quiz_id = ? AND name = ?", quizID, name).First(&participant).Error; err != nil {
		return nil, err
	}
	return &participant, nil
}
