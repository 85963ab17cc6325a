package service

import (
	"errors"
	"time"

	"github.com/AlexKurdi121/quizhub/internal/apperr"
	"github.com/AlexKurdi121/quizhub/internal/dto"
	"github.com/AlexKurdi121/quizhub/internal/model"
	"github.com/AlexKurdi121/quizhub/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LifecycleService gates participation on the quiz's lifecycle state.
// A quiz cycles Draft -> Live -> Draft any number of times; participants
// accumulated so far are retained across cycles.
type LifecycleService interface {
	StartQuiz(code string) (*dto.QuizResponse, error)
	DisableQuiz(code string) (*dto.QuizResponse, error)
	JoinQuiz(code, name string) (*dto.ParticipantResponse, error)
	SubmitAnswers(code string, req dto.SubmitAnswersRequest) (*dto.SubmitAnswersResponse, error)
}

type lifecycleService struct {
	quizRepo        repository.QuizRepository
	questionRepo    repository.QuestionRepository
	participantRepo repository.ParticipantRepository
	scoring         ScoringService
}

func NewLifecycleService(
	quizRepo repository.QuizRepository,
	questionRepo repository.QuestionRepository,
	participantRepo repository.ParticipantRepository,
	scoring ScoringService,
) LifecycleService {
	return &lifecycleService{
		quizRepo:        quizRepo,
		questionRepo:    questionRepo,
		participantRepo: participantRepo,
		scoring:         scoring,
	}
}

// StartQuiz moves a quiz to Live. Starting a quiz with no questions is
// rejected; starting an already-live quiz is a no-op.
func (s *lifecycleService) StartQuiz(code string) (*dto.QuizResponse, error) {
	quiz, err := s.findQuiz(code)
	if err != nil {
		return nil, err
	}

	if quiz.Started {
		return toQuizResponse(quiz), nil
	}

	count, err := s.questionRepo.CountByQuizID(quiz.ID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, apperr.Validationf("quiz %s has no questions; add at least one before starting", code)
	}

	if err := s.quizRepo.SetStarted(quiz.ID, true); err != nil {
		log.Error().Err(err).Str("code", code).Msg("Failed to start quiz")
		return nil, err
	}
	quiz.Started = true

	log.Info().Str("code", code).Msg("Quiz started")
	return toQuizResponse(quiz), nil
}

// DisableQuiz moves a quiz back to Draft. Disabling a draft quiz is a no-op,
// not an error.
func (s *lifecycleService) DisableQuiz(code string) (*dto.QuizResponse, error) {
	quiz, err := s.findQuiz(code)
	if err != nil {
		return nil, err
	}

	if !quiz.Started {
		return toQuizResponse(quiz), nil
	}

	if err := s.quizRepo.SetStarted(quiz.ID, false); err != nil {
		log.Error().Err(err).Str("code", code).Msg("Failed to disable quiz")
		return nil, err
	}
	quiz.Started = false

	log.Info().Str("code", code).Msg("Quiz disabled")
	return toQuizResponse(quiz), nil
}

// JoinQuiz registers a participant name. The quiz does not need to be live
// yet, so players can gather before the organizer starts it.
func (s *lifecycleService) JoinQuiz(code, name string) (*dto.ParticipantResponse, error) {
	quiz, err := s.findQuiz(code)
	if err != nil {
		return nil, err
	}

	if _, err := s.participantRepo.FindByQuizAndName(quiz.ID, name); err == nil {
		return nil, apperr.Conflictf("name %q is already taken in quiz %s", name, code)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	participant := model.Participant{
		QuizID: quiz.ID,
		Name:   name,
	}
	if err := s.participantRepo.Create(&participant); err != nil {
		// Concurrent join with the same name loses to the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("name %q is already taken in quiz %s", name, code)
		}
		log.Error().Err(err).Str("code", code).Str("name", name).Msg("Failed to register participant")
		return nil, err
	}

	log.Info().Str("code", code).Str("name", name).Msg("Participant joined")
	return toParticipantResponse(&participant), nil
}

// SubmitAnswers scores and records a submission. The participant row is
// created on first submission and overwritten on resubmission; the quiz must
// be live, and the answers slice must match the question count exactly.
// Same-name races resolve last-write-wins.
func (s *lifecycleService) SubmitAnswers(code string, req dto.SubmitAnswersRequest) (*dto.SubmitAnswersResponse, error) {
	quiz, err := s.quizRepo.FindByCodeWithQuestions(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.NotFoundf("quiz with code %s not found", code), err)
		}
		return nil, err
	}

	if !quiz.Started {
		return nil, apperr.InvalidStatef("quiz %s is not accepting submissions", code)
	}

	score, err := s.scoring.Score(req.Answers, quiz.Questions)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	participant, err := s.participantRepo.FindByQuizAndName(quiz.ID, req.Name)
	switch {
	case err == nil:
		participant.Answers = datatypes.NewJSONSlice(req.Answers)
		participant.Score = score
		participant.SubmittedAt = &now
		if err := s.participantRepo.Save(participant); err != nil {
			log.Error().Err(err).Str("code", code).Str("name", req.Name).Msg("Failed to overwrite submission")
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		participant = &model.Participant{
			QuizID:      quiz.ID,
			Name:        req.Name,
			Answers:     datatypes.NewJSONSlice(req.Answers),
			Score:       score,
			SubmittedAt: &now,
		}
		if err := s.participantRepo.Create(participant); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				log.Error().Err(err).Str("code", code).Str("name", req.Name).Msg("Failed to record submission")
				return nil, err
			}
			// Lost a first-submission race for this name; overwrite the
			// winner's row instead (last write wins).
			existing, findErr := s.participantRepo.FindByQuizAndName(quiz.ID, req.Name)
			if findErr != nil {
				return nil, findErr
			}
			existing.Answers = datatypes.NewJSONSlice(req.Answers)
			existing.Score = score
			existing.SubmittedAt = &now
			if saveErr := s.participantRepo.Save(existing); saveErr != nil {
				return nil, saveErr
			}
			participant = existing
		}
	default:
		return nil, err
	}

	log.Info().Str("code", code).Str("name", req.Name).Int("score", score).Msg("Answers submitted")
	return &dto.SubmitAnswersResponse{
		Participant:    *toParticipantResponse(participant),
		Score:          score,
		TotalQuestions: len(quiz.Questions),
	}, nil
}

func (s *lifecycleService) findQuiz(code string) (*model.Quiz, error) {
	quiz, err := s.quizRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.NotFoundf("quiz with code %s not found", code), err)
		}
		return nil, err
	}
	return quiz, nil
}

func toParticipantResponse(participant *model.Participant) *dto.ParticipantResponse {
	var resp dto.ParticipantResponse
	copier.Copy(&resp, participant)
	return &resp
}
