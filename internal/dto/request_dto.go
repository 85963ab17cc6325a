package dto

// QuestionPayload carries one question inside a create or update request.
// Options is pinned to exactly four labels; Answer indexes into it.
type QuestionPayload struct {
	Text    string   `json:"text" binding:"required"`
	Options []string `json:"options" binding:"required,len=4,dive,required"`
	Answer  int      `json:"answer" binding:"min=0,max=3"`
}

type CreateQuizRequest struct {
	Title     string            `json:"title" binding:"required"`
	Questions []QuestionPayload `json:"questions" binding:"required,min=1,dive"`
}

// UpdateQuizRequest fully replaces the title and question set; there is no
// per-question patch semantics.
type UpdateQuizRequest struct {
	Title     string            `json:"title" binding:"required"`
	Questions []QuestionPayload `json:"questions" binding:"required,min=1,dive"`
}

type JoinQuizRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// SubmitAnswersRequest carries one answer index per question; -1 marks a
// question the participant left unanswered.
type SubmitAnswersRequest struct {
	Name    string `json:"name" binding:"required"`
	Answers []int  `json:"answers" binding:"required,dive,min=-1,max=3"`
}
