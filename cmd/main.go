package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Studynest/config"
	"github.com/lshigami/Studynest/database"
	_ "github.com/lshigami/Studynest/docs"
	"github.com/lshigami/Studynest/internal/controller"
	"github.com/lshigami/Studynest/internal/controller/library"
	"github.com/lshigami/Studynest/internal/controller/practice"
	"github.com/lshigami/Studynest/internal/logger"
	"github.com/lshigami/Studynest/internal/metrics"
	"github.com/lshigami/Studynest/internal/model"
	"github.com/lshigami/Studynest/internal/repository"
	"github.com/lshigami/Studynest/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Studynest API
// @version 1.0
// @description Study materials, AI-generated questions, exams with objective and AI grading, a mistake log and knowledge parsing.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),
		fx.Invoke(logger.Configure),

		// Repositories
		fx.Provide(
			repository.NewDirectionRepository,
			repository.NewMaterialRepository,
			repository.NewQuestionRepository,
			repository.NewExamRepository,
			repository.NewAnswerRepository,
			repository.NewMistakeRepository,
			repository.NewParseTaskRepository,
		),

		// AI oracle and its capabilities
		fx.Provide(
			service.NewLLMClient,
			service.NewAIService,
			func(ai *service.AIService) service.ScoringOracle { return ai },
			func(ai *service.AIService) service.QuestionGenerator { return ai },
			func(ai *service.AIService) service.KnowledgeExtractor { return ai },
			service.NewSubjectiveGrader,
		),

		// Services
		fx.Provide(
			service.NewStorageProvider,
			service.NewTextExtractor,
			service.NewDirectionService,
			service.NewMaterialService,
			service.NewQuestionService,
			service.NewExamService,
			service.NewExamSubmissionService,
			service.NewMistakeService,
			service.NewParseService,
		),

		// Controllers
		fx.Provide(
			library.NewDirectionController,
			library.NewMaterialController,
			library.NewQuestionController,
			library.NewParseController,
			practice.NewExamController,
			practice.NewMistakeController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown did not complete cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	metrics.Init()

	r := gin.New()
	r.MaxMultipartMemory = cfg.Server.MaxUploadSize

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())
	r.Use(metrics.Middleware())

	corsCfg := cors.Config{
		AllowOrigins:  cfg.Server.CORSAllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(corsCfg.AllowOrigins) == 0 || corsCfg.AllowOrigins[0] == "*" {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	// Swagger UI: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/health", controller.Health)
	r.GET("/metrics", metrics.Handler())

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	directionCtrl *library.DirectionController,
	materialCtrl *library.MaterialController,
	questionCtrl *library.QuestionController,
	parseCtrl *library.ParseController,
	examCtrl *practice.ExamController,
	mistakeCtrl *practice.MistakeController,
) {
	api := router.Group("/api/v1")
	directionCtrl.RegisterRoutes(api)
	materialCtrl.RegisterRoutes(api)
	questionCtrl.RegisterRoutes(api)
	parseCtrl.RegisterRoutes(api)
	examCtrl.RegisterRoutes(api)
	mistakeCtrl.RegisterRoutes(api)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Studynest API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			if !cfg.AIConfigured() {
				log.Warn().Msg("No AI API key configured; material processing, short-answer grading and parsing will fail")
			}
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
