package service

import (
	"testing"
	"time"

	"github.com/AlexKurdi121/quizhub/internal/apperr"
	"github.com/AlexKurdi121/quizhub/internal/dto"
	"github.com/AlexKurdi121/quizhub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// seedResults builds a started quiz with three questions and hand-placed
// submissions so ordering and stats are fully controlled.
func seedResults(t *testing.T) (ResultsService, string) {
	t.Helper()
	quizRepo, _, participantRepo := newFakeRepos()

	quiz := &model.Quiz{
		Code:    "RES123",
		Title:   "Trivia",
		Started: true,
		Questions: []model.Question{
			{Text: "Q1", Answer: 0, Position: 1},
			{Text: "Q2", Answer: 1, Position: 2},
			{Text: "Q3", Answer: 2, Position: 3},
		},
	}
	require.NoError(t, quizRepo.Create(quiz))

	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	submissions := []struct {
		name  string
		score int
		at    time.Time
	}{
		{"Carol", 2, base},
		{"Alice", 3, base.Add(1 * time.Minute)},
		{"Bob", 2, base.Add(2 * time.Minute)},
	}
	for _, sub := range submissions {
		at := sub.at
		require.NoError(t, participantRepo.Create(&model.Participant{
			QuizID:      quiz.ID,
			Name:        sub.name,
			Answers:     datatypes.NewJSONSlice([]int{0, 1, 2}),
			Score:       sub.score,
			SubmittedAt: &at,
		}))
	}

	return NewResultsService(quizRepo), quiz.Code
}

func TestAggregateDefaultSortIsStable(t *testing.T) {
	svc, code := seedResults(t)

	results, err := svc.Aggregate(code, "")
	require.NoError(t, err)
	assert.Equal(t, SortByScore, results.SortedBy)

	// Scores were submitted as [2, 3, 2]: the 3 rises to the top, and the
	// two 2s keep their original submission order.
	require.Len(t, results.Leaderboard, 3)
	assert.Equal(t, "Alice", results.Leaderboard[0].Name)
	assert.Equal(t, "Carol", results.Leaderboard[1].Name)
	assert.Equal(t, "Bob", results.Leaderboard[2].Name)
	assert.Equal(t, uint(1), results.Leaderboard[0].Rank)
	assert.Equal(t, uint(3), results.Leaderboard[2].Rank)
}

func TestAggregateSortByName(t *testing.T) {
	svc, code := seedResults(t)

	results, err := svc.Aggregate(code, SortByName)
	require.NoError(t, err)
	assert.Equal(t, "Alice", results.Leaderboard[0].Name)
	assert.Equal(t, "Bob", results.Leaderboard[1].Name)
	assert.Equal(t, "Carol", results.Leaderboard[2].Name)
}

func TestAggregateSortByTime(t *testing.T) {
	svc, code := seedResults(t)

	results, err := svc.Aggregate(code, SortByTime)
	require.NoError(t, err)
	assert.Equal(t, "Carol", results.Leaderboard[0].Name)
	assert.Equal(t, "Alice", results.Leaderboard[1].Name)
	assert.Equal(t, "Bob", results.Leaderboard[2].Name)
}

func TestAggregateStats(t *testing.T) {
	svc, code := seedResults(t)

	results, err := svc.Aggregate(code, "")
	require.NoError(t, err)
	require.NotNil(t, results.Stats)

	assert.InDelta(t, 7.0/3.0, results.Stats.AvgScore, 1e-9)
	assert.Equal(t, 3, results.Stats.MaxScore)
	assert.Equal(t, 2, results.Stats.MinScore)
	assert.Equal(t, 3, results.Stats.TotalParticipants)
	assert.Equal(t, 3, results.Stats.TotalQuestions)
	assert.InDelta(t, 7.0/9.0*100, results.Stats.AvgPercentage, 1e-9)
}

func TestAggregateEmptyQuiz(t *testing.T) {
	quizRepo, _, _ := newFakeRepos()
	require.NoError(t, quizRepo.Create(&model.Quiz{
		Code:  "EMPTY1",
		Title: "Nobody",
		Questions: []model.Question{
			{Text: "Q1", Answer: 0, Position: 1},
		},
	}))
	svc := NewResultsService(quizRepo)

	results, err := svc.Aggregate("EMPTY1", "")
	require.NoError(t, err)
	assert.Empty(t, results.Leaderboard)
	assert.Nil(t, results.Stats)
}

func TestAggregateExcludesJoinedButUnsubmitted(t *testing.T) {
	quizRepo, _, participantRepo := newFakeRepos()
	quiz := &model.Quiz{
		Code:    "LOBBY1",
		Title:   "Waiting room",
		Started: true,
		Questions: []model.Question{
			{Text: "Q1", Answer: 0, Position: 1},
		},
	}
	require.NoError(t, quizRepo.Create(quiz))
	require.NoError(t, participantRepo.Create(&model.Participant{QuizID: quiz.ID, Name: "Lurker"}))

	svc := NewResultsService(quizRepo)
	results, err := svc.Aggregate("LOBBY1", "")
	require.NoError(t, err)
	assert.Empty(t, results.Leaderboard)
	assert.Nil(t, results.Stats)
}

func TestAggregateUnknownSortKey(t *testing.T) {
	svc, code := seedResults(t)

	_, err := svc.Aggregate(code, "vibes")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestAggregateNotFound(t *testing.T) {
	quizRepo, _, _ := newFakeRepos()
	svc := NewResultsService(quizRepo)

	_, err := svc.Aggregate("NOPE42", "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestEndToEndGeoScenario(t *testing.T) {
	f := newLifecycleFixture(t)
	quiz := f.createQuiz(t, "Geo", []dto.QuestionPayload{
		{Text: "Capital of France?", Options: []string{"Paris", "Rome", "Berlin", "Madrid"}, Answer: 0},
	})

	_, err := f.lifecycleSvc.StartQuiz(quiz.Code)
	require.NoError(t, err)

	alice, err := f.lifecycleSvc.SubmitAnswers(quiz.Code, dto.SubmitAnswersRequest{Name: "Alice", Answers: []int{0}})
	require.NoError(t, err)
	assert.Equal(t, 1, alice.Score)

	results, err := f.resultsSvc.Aggregate(quiz.Code, "")
	require.NoError(t, err)
	require.NotNil(t, results.Stats)
	assert.InDelta(t, 100.0, results.Stats.AvgPercentage, 1e-9)

	bob, err := f.lifecycleSvc.SubmitAnswers(quiz.Code, dto.SubmitAnswersRequest{Name: "Bob", Answers: []int{2}})
	require.NoError(t, err)
	assert.Equal(t, 0, bob.Score)

	results, err = f.resultsSvc.Aggregate(quiz.Code, "")
	require.NoError(t, err)
	require.Len(t, results.Leaderboard, 2)
	assert.Equal(t, "Alice", results.Leaderboard[0].Name)
	assert.Equal(t, "Bob", results.Leaderboard[1].Name)
}

func TestStartQuizWithoutQuestionsRejected(t *testing.T) {
	quizRepo, questionRepo, participantRepo := newFakeRepos()
	require.NoError(t, quizRepo.Create(&model.Quiz{Code: "BARE99", Title: "No content"}))

	svc := NewLifecycleService(quizRepo, questionRepo, participantRepo, NewScoringService())

	_, err := svc.StartQuiz("BARE99")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
