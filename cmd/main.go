package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/university/config"
	"github.com/lshigami/university/database"
	"github.com/lshigami/university/docs"
	"github.com/lshigami/university/internal/controller"
	adminctrl "github.com/lshigami/university/internal/controller/admin"
	studentctrl "github.com/lshigami/university/internal/controller/student"
	"github.com/lshigami/university/internal/logger"
	"github.com/lshigami/university/internal/repository"
	"github.com/lshigami/university/internal/service"
	"github.com/lshigami/university/internal/validation"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title University Exam API
// @version 1.0
// @description Registers students and exams, stores the answers students submit and removes students with everything they submitted.
// @contact.name API Support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(appOptions())

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func appOptions() fx.Option {
	return fx.Options(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewValidator,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewStudentRepository,
			repository.NewQuestionRepository,
			repository.NewExamRepository,
			repository.NewExamAnswerRepository,
			repository.NewAnsweredQuestionRepository,
		),

		fx.Provide(
			service.NewQuestionService,
			service.NewExamService,
			service.NewStudentService,
			service.NewAnswerSubmissionService,
		),

		fx.Provide(
			adminctrl.NewAdminExamController,
			studentctrl.NewStudentController,
		),

		// invoked in order: logging first, migrations before the server starts
		fx.Invoke(ConfigureLogging),
		fx.Invoke(database.AutoMigrate),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

// ConfigureLogging applies the configured level and format to the logger set
// up by logger.Init.
func ConfigureLogging(cfg *config.Config) {
	logger.Configure(cfg.Log.Level, cfg.Log.Pretty)
}

func NewValidator(cfg *config.Config) (*validation.Validator, error) {
	return validation.New(cfg.DefaultLocale)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	switch cfg.Server.GinMode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.GinMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(controller.RequestID())
	r.Use(controller.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(cfg.Server.AllowOrigin)))

	docs.SwaggerInfo.Host = "localhost:" + cfg.Server.Port
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Accept-Language", controller.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Location", controller.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, origin := range origins {
		if origin == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	c.AllowCredentials = true
	return c
}

// RegisterRoutesAndStartServer mounts the controllers and ties the HTTP server
// to the fx lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminExamCtrl *adminctrl.AdminExamController,
	studentCtrl *studentctrl.StudentController,
) {
	adminExamCtrl.RegisterRoutes(router)
	studentCtrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("University API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
