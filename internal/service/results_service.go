package service

import (
	"errors"
	"sort"
	"strings"

	"github.com/AlexKurdi121/quizhub/internal/apperr"
	"github.com/AlexKurdi121/quizhub/internal/dto"
	"github.com/AlexKurdi121/quizhub/internal/model"
	"github.com/AlexKurdi121/quizhub/internal/repository"
	"gorm.io/gorm"
)

// Leaderboard sort keys accepted by Aggregate.
const (
	SortByScore = "score"
	SortByName  = "name"
	SortByTime  = "time"
)

// ResultsService derives the leaderboard and summary statistics from the
// current participant set. Side-effect free; recomputed on every call.
type ResultsService interface {
	Aggregate(code, sortBy string) (*dto.ResultsResponse, error)
}

type resultsService struct {
	quizRepo repository.QuizRepository
}

func NewResultsService(quizRepo repository.QuizRepository) ResultsService {
	return &resultsService{quizRepo: quizRepo}
}

func (s *resultsService) Aggregate(code, sortBy string) (*dto.ResultsResponse, error) {
	if sortBy == "" {
		sortBy = SortByScore
	}
	if sortBy != SortByScore && sortBy != SortByName && sortBy != SortByTime {
		return nil, apperr.Validationf("unknown sort key %q; use %s, %s or %s", sortBy, SortByScore, SortByName, SortByTime)
	}

	quiz, err := s.quizRepo.FindByCodeFull(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Wrap(apperr.NotFoundf("quiz with code %s not found", code), err)
		}
		return nil, err
	}

	// Only participants who actually handed in answers appear on the board.
	// The repository returns them in submission-insertion order, which the
	// stable sort below preserves among equal scores.
	submitted := make([]model.Participant, 0, len(quiz.Participants))
	for _, p := range quiz.Participants {
		if p.HasSubmitted() {
			submitted = append(submitted, p)
		}
	}

	switch sortBy {
	case SortByScore:
		sort.SliceStable(submitted, func(i, j int) bool {
			return submitted[i].Score > submitted[j].Score
		})
	case SortByName:
		sort.SliceStable(submitted, func(i, j int) bool {
			return strings.Compare(submitted[i].Name, submitted[j].Name) < 0
		})
	case SortByTime:
		sort.SliceStable(submitted, func(i, j int) bool {
			return submitted[i].SubmittedAt.Before(*submitted[j].SubmittedAt)
		})
	}

	questionCount := len(quiz.Questions)
	leaderboard := make([]dto.LeaderboardEntry, 0, len(submitted))
	for i, p := range submitted {
		percentage := 0.0
		if questionCount > 0 {
			percentage = float64(p.Score) / float64(questionCount) * 100
		}
		leaderboard = append(leaderboard, dto.LeaderboardEntry{
			Rank:        uint(i + 1),
			Name:        p.Name,
			Score:       p.Score,
			Percentage:  percentage,
			SubmittedAt: p.SubmittedAt,
		})
	}

	return &dto.ResultsResponse{
		Code:        quiz.Code,
		Title:       quiz.Title,
		Started:     quiz.Started,
		SortedBy:    sortBy,
		Leaderboard: leaderboard,
		Stats:       computeStats(submitted, questionCount),
	}, nil
}

// computeStats returns nil when nobody has submitted so the response carries
// no zero-division artifacts.
func computeStats(submitted []model.Participant, questionCount int) *dto.ResultStats {
	if len(submitted) == 0 {
		return nil
	}

	sum := 0
	maxScore := submitted[0].Score
	minScore := submitted[0].Score
	for _, p := range submitted {
		sum += p.Score
		if p.Score > maxScore {
			maxScore = p.Score
		}
		if p.Score < minScore {
			minScore = p.Score
		}
	}

	avg := float64(sum) / float64(len(submitted))
	avgPercentage := 0.0
	if questionCount > 0 {
		avgPercentage = avg / float64(questionCount) * 100
	}

	return &dto.ResultStats{
		AvgScore:          avg,
		MaxScore:          maxScore,
		MinScore:          minScore,
		AvgPercentage:     avgPercentage,
		TotalParticipants: len(submitted),
		TotalQuestions:    questionCount,
	}
}
