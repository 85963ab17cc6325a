package organizer

import (
	"net/http"

	"github.com/AlexKurdi121/quizhub/internal/controller"
	"github.com/AlexKurdi121/quizhub/internal/dto"
	"github.com/AlexKurdi121/quizhub/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// QuizController exposes the organizer surface: quiz CRUD, lifecycle toggles
// and results. There is no authentication; knowing a quiz code is the whole
// credential model.
type QuizController struct {
	quizService      service.QuizService
	lifecycleService service.LifecycleService
	resultsService   service.ResultsService
}

func NewQuizController(qs service.QuizService, ls service.LifecycleService, rs service.ResultsService) *QuizController {
	return &QuizController{
		quizService:      qs,
		lifecycleService: ls,
		resultsService:   rs,
	}
}

// CreateQuiz godoc
// @Summary Create a new quiz
// @Description Create a quiz with its questions. A unique join code is generated server-side.
// @Tags Organizer - Quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.CreateQuizRequest true "Quiz title and questions"
// @Success 201 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or question shape"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [post]
func (c *QuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuizRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := c.quizService.CreateQuiz(req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, quiz)
}

// ListQuizzes godoc
// @Summary List all quizzes
// @Description Retrieve summaries of every quiz with question and participant counts.
// @Tags Organizer - Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quizzes [get]
func (c *QuizController) ListQuizzes(ctx *gin.Context) {
	quizzes, err := c.quizService.ListQuizzes()
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// UpdateQuiz godoc
// @Summary Update a quiz
// @Description Replace the title and the entire question set of a draft quiz. Live quizzes must be stopped first.
// @Tags Organizer - Quizzes
// @Accept json
// @Produce json
// @Param code path string true "Quiz join code"
// @Param quiz body dto.UpdateQuizRequest true "New title and questions"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or quiz is live"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{code} [put]
func (c *QuizController) UpdateQuiz(ctx *gin.Context) {
	var req dto.UpdateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind UpdateQuizRequest")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := c.quizService.UpdateQuiz(ctx.Param("code"), req)
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Delete a quiz along with its questions and participants.
// @Tags Organizer - Quizzes
// @Produce json
// @Param code path string true "Quiz join code"
// @Success 200 {object} dto.DeleteQuizResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{code} [delete]
func (c *QuizController) DeleteQuiz(ctx *gin.Context) {
	code := ctx.Param("code")
	if err := c.quizService.DeleteQuiz(code); err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.DeleteQuizResponse{Message: "quiz deleted"})
}

// StartQuiz godoc
// @Summary Start a quiz
// @Description Move a quiz to the live state so participants can submit. Requires at least one question.
// @Tags Organizer - Lifecycle
// @Produce json
// @Param code path string true "Quiz join code"
// @Success 200 {object} dto.QuizResponse
// @Failure 400 {object} dto.ErrorResponse "Quiz has no questions"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{code}/start [post]
func (c *QuizController) StartQuiz(ctx *gin.Context) {
	quiz, err := c.lifecycleService.StartQuiz(ctx.Param("code"))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// DisableQuiz godoc
// @Summary Stop a quiz
// @Description Move a quiz back to draft. Submissions are rejected until it is started again; participants are retained.
// @Tags Organizer - Lifecycle
// @Produce json
// @Param code path string true "Quiz join code"
// @Success 200 {object} dto.QuizResponse
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{code}/disable [post]
func (c *QuizController) DisableQuiz(ctx *gin.Context) {
	quiz, err := c.lifecycleService.DisableQuiz(ctx.Param("code"))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// GetResults godoc
// @Summary Get quiz results
// @Description Leaderboard plus summary statistics over submitted participants. Sort by score (default), name or time.
// @Tags Organizer - Results
// @Produce json
// @Param code path string true "Quiz join code"
// @Param sort query string false "Sort key: score, name or time" Enums(score, name, time)
// @Success 200 {object} dto.ResultsResponse
// @Failure 400 {object} dto.ErrorResponse "Unknown sort key"
// @Failure 404 {object} dto.ErrorResponse "Quiz not found"
// @Router /quizzes/{code}/results [get]
func (c *QuizController) GetResults(ctx *gin.Context) {
	results, err := c.resultsService.Aggregate(ctx.Param("code"), ctx.Query("sort"))
	if err != nil {
		controller.WriteError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}
