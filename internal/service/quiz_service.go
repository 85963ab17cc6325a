package service

import (
	"errors"

	"github.com/AlexKurdi121/quizhub/internal/apperr"
	"github.com/AlexKurdi121/quizhub/internal/dto"
	"github.com/AlexKurdi121/quizhub/internal/model"
	"github.com/AlexKurdi121/quizhub/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// codeGenerationAttempts bounds the collision-retry loop when assigning a
// join code. With a 36^6 space, one attempt almost always suffices.
const codeGenerationAttempts = 5

type QuizService interface {
	CreateQuiz(req dto.CreateQuizRequest) (*dto.QuizResponse, error)
	GetQuiz(code string) (*dto.QuizResponse, error)
	ListQuizzes() ([]dto.QuizSummaryResponse, error)
	UpdateQuiz(code string, req dto.UpdateQuizRequest) (*dto.QuizResponse, error)
	DeleteQuiz(code string) error
}

type quizService struct {
	quizRepo repository.QuizRepository
	codeGen  CodeGeneratorService
}

func NewQuizService(quizRepo repository.QuizRepository, codeGen CodeGeneratorService) QuizService {
	return &quizService{quizRepo: quizRepo, codeGen: codeGen}
}

func (s *quizService) CreateQuiz(req dto.CreateQuizRequest) (*dto.QuizResponse, error) {
	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	code, err := s.uniqueCode()
	if err != nil {
		return nil, err
	}

	quiz := model.Quiz{
		Code:      code,
		Title:     req.Title,
		Questions: questions,
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("code", code).Msg("Failed to create quiz")
		return nil, err
	}

	log.Info().Str("code", quiz.Code).Str("title", quiz.Title).Int("questions", len(quiz.Questions)).Msg("Quiz created")
	return toQuizResponse(&quiz), nil
}

func (s *quizService) GetQuiz(code string) (*dto.QuizResponse, error) {
	quiz, err := s.quizRepo.FindByCodeFull(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.NotFoundf("quiz with code %s not found", code), err)
		}
		return nil, err
	}
	return toQuizResponse(quiz), nil
}

func (s *quizService) ListQuizzes() ([]dto.QuizSummaryResponse, error) {
	quizzes, err := s.quizRepo.FindAllWithCounts()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		return nil, err
	}

	summaries := make([]dto.QuizSummaryResponse, 0, len(quizzes))
	for _, q := range quizzes {
		summaries = append(summaries, dto.QuizSummaryResponse{
			ID:               q.ID,
			Code:             q.Code,
			Title:            q.Title,
			Started:          q.Started,
			QuestionCount:    q.QuestionCount,
			ParticipantCount: q.ParticipantCount,
			CreatedAt:        q.CreatedAt,
		})
	}
	return summaries, nil
}

// UpdateQuiz replaces the title and the whole question set. It is rejected
// while the quiz is live so participants never race a changing answer key.
func (s *quizService) UpdateQuiz(code string, req dto.UpdateQuizRequest) (*dto.QuizResponse, error) {
	quiz, err := s.quizRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.NotFoundf("quiz with code %s not found", code), err)
		}
		return nil, err
	}

	if quiz.Started {
		return nil, apperr.InvalidStatef("quiz %s is live; stop it before editing", code)
	}

	questions, err := buildQuestions(req.Questions)
	if err != nil {
		return nil, err
	}

	if err := s.quizRepo.ReplaceQuestions(quiz, req.Title, questions); err != nil {
		log.Error().Err(err).Str("code", code).Msg("Failed to replace quiz questions")
		return nil, err
	}

	log.Info().Str("code", code).Int("questions", len(questions)).Msg("Quiz updated")
	return toQuizResponse(quiz), nil
}

func (s *quizService) DeleteQuiz(code string) error {
	quiz, err := s.quizRepo.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Wrap(apperr.NotFoundf("quiz with code %s not found", code), err)
		}
		return err
	}

	if err := s.quizRepo.DeleteCascade(quiz); err != nil {
		log.Error().Err(err).Str("code", code).Msg("Failed to delete quiz")
		return err
	}

	log.Info().Str("code", code).Msg("Quiz deleted")
	return nil
}

func (s *quizService) uniqueCode() (string, error) {
	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		code := s.codeGen.Generate()
		exists, err := s.quizRepo.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
		log.Warn().Str("code", code).Int("attempt", attempt+1).Msg("Join code collision, regenerating")
	}
	return "", apperr.Conflictf("could not assign a unique join code after %d attempts", codeGenerationAttempts)
}

// buildQuestions validates the payload at the domain boundary and assigns
// positions preserving authoring order. The binding tags catch most of this
// already; the checks here keep the invariants independent of the transport.
func buildQuestions(payloads []dto.QuestionPayload) ([]model.Question, error) {
	if len(payloads) == 0 {
		return nil, apperr.Validationf("a quiz needs at least one question")
	}

	questions := make([]model.Question, 0, len(payloads))
	for i, p := range payloads {
		if len(p.Options) != model.OptionCount {
			return nil, apperr.Validationf("question %d must have exactly %d options, got %d", i+1, model.OptionCount, len(p.Options))
		}
		for j, option := range p.Options {
			if option == "" {
				return nil, apperr.Validationf("question %d option %d is empty", i+1, j+1)
			}
		}
		if p.Answer < 0 || p.Answer >= len(p.Options) {
			return nil, apperr.Validationf("question %d answer index %d is out of range [0, %d)", i+1, p.Answer, len(p.Options))
		}
		questions = append(questions, model.Question{
			Text:     p.Text,
			Options:  datatypes.NewJSONSlice(p.Options),
			Answer:   p.Answer,
			Position: i + 1,
		})
	}
	return questions, nil
}

func toQuizResponse(quiz *model.Quiz) *dto.QuizResponse {
	var resp dto.QuizResponse
	copier.Copy(&resp, quiz)
	return &resp
}
