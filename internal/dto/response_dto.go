package dto

import "time"

type QuestionResponse struct {
	ID       uint     `json:"id"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Answer   int      `json:"answer"`
	Position int      `json:"position"`
}

type ParticipantResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Answers     []int      `json:"answers,omitempty"`
	Score       int        `json:"score"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

type QuizResponse struct {
	ID           uint                  `json:"id"`
	Code         string                `json:"code"`
	Title        string                `json:"title"`
	Started      bool                  `json:"started"`
	Questions    []QuestionResponse    `json:"questions,omitempty"`
	Participants []ParticipantResponse `json:"participants,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// QuizSummaryResponse is the listing shape: no question or participant bodies,
// just counts.
type QuizSummaryResponse struct {
	ID               uint      `json:"id"`
	Code             string    `json:"code"`
	Title            string    `json:"title"`
	Started          bool      `json:"started"`
	QuestionCount    int       `json:"question_count"`
	ParticipantCount int       `json:"participant_count"`
	CreatedAt        time.Time `json:"created_at"`
}

type SubmitAnswersResponse struct {
	Participant    ParticipantResponse `json:"participant"`
	Score          int                 `json:"score"`
	TotalQuestions int                 `json:"total_questions"`
}

// LeaderboardEntry is a participant row in the results view, annotated with
// its 1-based rank after sorting.
type LeaderboardEntry struct {
	Rank        uint       `json:"rank"`
	Name        string     `json:"name"`
	Score       int        `json:"score"`
	Percentage  float64    `json:"percentage"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

// ResultStats summarizes submitted scores. It is omitted from the results
// response entirely while nobody has submitted.
type ResultStats struct {
	AvgScore          float64 `json:"avg_score"`
	MaxScore          int     `json:"max_score"`
	MinScore          int     `json:"min_score"`
	AvgPercentage     float64 `json:"avg_percentage"`
	TotalParticipants int     `json:"total_participants"`
	TotalQuestions    int     `json:"total_questions"`
}

type ResultsResponse struct {
	Code        string             `json:"code"`
	Title       string             `json:"title"`
	Started     bool               `json:"started"`
	SortedBy    string             `json:"sorted_by"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	Stats       *ResultStats       `json:"stats,omitempty"`
}

type DeleteQuizResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}
