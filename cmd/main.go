package main

import (
	"context"
	"net/http"
	"time"

	"github.com/AlexKurdi121/quizhub/config"
	"github.com/AlexKurdi121/quizhub/database"
	_ "github.com/AlexKurdi121/quizhub/docs" // Swagger docs - auto-generated
	organizerctrl "github.com/AlexKurdi121/quizhub/internal/controller/organizer"
	playerctrl "github.com/AlexKurdi121/quizhub/internal/controller/player"
	"github.com/AlexKurdi121/quizhub/internal/logger"
	"github.com/AlexKurdi121/quizhub/internal/model"
	"github.com/AlexKurdi121/quizhub/internal/repository"
	"github.com/AlexKurdi121/quizhub/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizHub API
// @version 1.0
// @description Quiz hosting service: organizers create and run multiple-choice quizzes, participants join via a short code and submit answers.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // *gorm.DB
			NewGinEngine,         // *gin.Engine
		),

		// Repositories layer
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewParticipantRepository,
		),

		// Services layer
		fx.Provide(
			service.NewCodeGeneratorService,
			service.NewScoringService,
			service.NewQuizService,
			service.NewLifecycleService,
			service.NewResultsService,
		),

		// API controllers layer
		fx.Provide(
			organizerctrl.NewQuizController,
			playerctrl.NewPlayerController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server through the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *organizerctrl.QuizController,
	playerCtrl *playerctrl.PlayerController,
) {
	api := router.Group("/api/v1")
	{
		quizzes := api.Group("/quizzes")
		quizzes.POST("", quizCtrl.CreateQuiz)
		quizzes.GET("", quizCtrl.ListQuizzes)
		quizzes.GET("/:code", playerCtrl.GetQuiz)
		quizzes.PUT("/:code", quizCtrl.UpdateQuiz)
		quizzes.DELETE("/:code", quizCtrl.DeleteQuiz)
		quizzes.POST("/:code/start", quizCtrl.StartQuiz)
		quizzes.POST("/:code/disable", quizCtrl.DisableQuiz)
		quizzes.POST("/:code/submit", playerCtrl.SubmitAnswers)
		quizzes.GET("/:code/results", quizCtrl.GetResults)

		api.POST("/join", playerCtrl.JoinQuiz)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizHub API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Quiz{},
		&model.Question{},
		&model.Participant{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")
	return nil
}
