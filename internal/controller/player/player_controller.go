package player

import (
	"net/http"

	"github.com/AlexKurdi121/quizhub/internal/controller"
	"github.com/AlexKurdi121/quizhub/internal/dto"
	"github.com/AlexKurdi121/quizhub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PlayerController exposes the participant surface: locate a quiz by its join
// code, register a name, hand in answers.
type PlayerController struct {
	quizService      service.QuizService
	lifecycleService service.LifecycleService
}

func NewPlayerController(qs service.QuizService, ls service.LifecycleService) *PlayerController {
	return &PlayerController{
		quizService:      qs,
		lifecycleService: ls,
	}
}

// GetQuiz godoc
// @Summary Get a quiz by join code
// @Description Fetch a quiz with its questions and participants. Clients poll this while waiting for the quiz to start.
// @Tags Player
// @Produce json
// @Param code path string true "Quiz join code"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{code} [get]
func (c *PlayerController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.quizService.GetQuiz(ctx.Param("code"))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// JoinQuiz godoc
// @Summary Join a quiz
// @Description Register a participant name for a quiz. Names are unique per quiz, case-sensitively.
// @Tags Player
// @Accept json
// @Produce json
// @Param join body dto.JoinQuizRequest true "Join code and participant name"
// @Success 201 {object} dto.ParticipantResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Failure 409 {object} dto.ErrorResponse "Name already taken"
// @Router /join [post]
func (c *PlayerController) JoinQuiz(ctx *gin.Context) {
	var req dto.JoinQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind JoinQuizRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	participant, err := c.lifecycleService.JoinQuiz(req.Code, req.Name)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, participant)
}

// SubmitAnswers godoc
// @Summary Submit answers
// @Description Submit one answer index per question (-1 for unanswered). The quiz must be live. Resubmitting under the same name overwrites the previous submission.
// @Tags Player
// @Accept json
// @Produce json
// @Param code path string true "Quiz join code"
// @Param submission body dto.SubmitAnswersRequest true "Participant name and answers"
// @Success 200 {object} dto.SubmitAnswersResponse
// @Failure 400 {object} dto.ErrorResponse "Quiz not live or wrong answer count"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{code}/submit [post]
func (c *PlayerController) SubmitAnswers(ctx *gin.Context) {
	var req dto.SubmitAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind SubmitAnswersRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := c.lifecycleService.SubmitAnswers(ctx.Param("code"), req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
