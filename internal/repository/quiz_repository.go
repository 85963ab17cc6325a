package repository

import (
	"github.com/AlexKurdi121/quizhub/internal/model"
	"gorm.io/gorm"
)

// QuizWithCounts backs the listing endpoint without loading question or
// participant bodies.
type QuizWithCounts struct {
	model.Quiz
	QuestionCount    int
	ParticipantCount int
}

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByCode(code string) (*model.Quiz, error)
	FindByCodeWithQuestions(code string) (*model.Quiz, error)
	FindByCodeFull(code string) (*model.Quiz, error)
	FindAllWithCounts() ([]QuizWithCounts, error)
	CodeExists(code string) (bool, error)
	SetStarted(quizID uint, started bool) error
	ReplaceQuestions(quiz *model.Quiz, title string, questions []model.Question) error
	DeleteCascade(quiz *model.Quiz) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// Create with associations also persists quiz.Questions.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByCode(code string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.Where("code = ?", code).First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByCodeWithQuestions(code string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.position ASC")
	}).Where("code = ?", code).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByCodeFull(code string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			// Insertion order; the results service relies on it for stable
			// tie-breaking.
			return db.Order("participants.created_at ASC, participants.id ASC")
		}).
		Where("code = ?", code).First(&quiz).Error
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindAllWithCounts() ([]QuizWithCounts, error) {
	var results []QuizWithCounts
	err := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, " +
			"(SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id AND questions.deleted_at IS NULL) AS question_count, " +
			"(SELECT COUNT(*) FROM participants WHERE participants.quiz_id = quizzes.id AND participants.deleted_at IS NULL) AS participant_count").
		Order("quizzes.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *quizRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Quiz{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *quizRepository) SetStarted(quizID uint, started bool) error {
	return r.db.Model(&model.Quiz{}).Where("id = ?", quizID).Update("started", started).Error
}

// ReplaceQuestions swaps the entire question set and the title atomically.
// Prior questions are discarded, never merged.
func (r *quizRepository) ReplaceQuestions(quiz *model.Quiz, title string, questions []model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Quiz{}).Where("id = ?", quiz.ID).Update("title", title).Error; err != nil {
			return err
		}
		for i := range questions {
			questions[i].QuizID = quiz.ID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		quiz.Title = title
		quiz.Questions = questions
		return nil
	})
}

// DeleteCascade removes the quiz together with its questions and
// participants; their lifetime is bound to the quiz.
func (r *quizRepository) DeleteCascade(quiz *model.Quiz) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&model.Participant{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, quiz.ID).Error
	})
}
