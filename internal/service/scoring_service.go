package service

import (
	"github.com/AlexKurdi121/quizhub/internal/apperr"
	"github.com/AlexKurdi121/quizhub/internal/model"
)

// ScoringService computes a participant's score from submitted answer indices
// against the question set's answer keys. No partial credit, no negative
// scoring, no time bonus.
type ScoringService interface {
	Score(answers []int, questions []model.Question) (int, error)
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// Score returns the count of positions where the submitted index equals the
// question's answer index. The answers slice must carry exactly one entry per
// question; model.UnansweredIndex entries simply never match.
func (s *scoringService) Score(answers []int, questions []model.Question) (int, error) {
	if len(answers) != len(questions) {
		return 0, apperr.Validationf("expected %d answers, got %d", len(questions), len(answers))
	}

	score := 0
	for i, question := range questions {
		if answers[i] == question.Answer {
			score++
		}
	}
	return score, nil
}
