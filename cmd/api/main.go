// WakeWise API
//
// Adaptive alarm scheduling engine.
//
//	@title			WakeWise API
//	@version		1.0
//	@description	Aggregates sleep history into patterns and chronotypes, and keeps smart alarms aligned to sleep cycles and goals.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			sleep-sessions
//	@tag.description	Sleep history ingestion and listing
//
//	@tag.name			alarms
//	@tag.description	Alarm management with smart scheduling
//
//	@tag.name			sleep-goals
//	@tag.description	Sleep goal preferences
//
//	@tag.name			analysis
//	@tag.description	Schedule analysis and recommendations
//
//	@tag.name			optimizations
//	@tag.description	Append-only schedule change history
//
//	@tag.name			insights
//	@tag.description	LLM-narrated schedule insights
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/driftlab/wakewise/internal/api"
	"github.com/driftlab/wakewise/internal/api/handler"
	"github.com/driftlab/wakewise/internal/batch"
	"github.com/driftlab/wakewise/internal/config"
	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/llm"
	"github.com/driftlab/wakewise/internal/repository"
	"github.com/driftlab/wakewise/internal/seed"
	"github.com/driftlab/wakewise/internal/service"
	"github.com/driftlab/wakewise/internal/telemetry"
	"github.com/rs/zerolog"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := newLogger(cfg.LogLevel)

	// Initialize tracing (no-op without an OTLP endpoint)
	ctx := context.Background()
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "wakewise-api")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}
	defer shutdownTracer(ctx)

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.SleepSession{},
		&domain.Alarm{},
		&domain.SleepGoal{},
		&domain.AlarmOptimization{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	log.Info().Msg("database migration completed")

	if cfg.Seed {
		log.Info().Msg("seeding database with sample data (SEED=true)")
		if err := seed.Run(db, log); err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSleepSessionRepository(db)
	alarmRepo := repository.NewAlarmRepository(db)
	goalRepo := repository.NewSleepGoalRepository(db)
	optRepo := repository.NewOptimizationRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo)
	sessionService := service.NewSessionService(sessionRepo, userRepo)
	patternService := service.NewPatternService(sessionRepo, userRepo)
	goalService := service.NewGoalService(goalRepo, userRepo)
	recommender := service.NewCycleRecommender()
	scheduleService := service.NewScheduleService(alarmRepo, userRepo, goalRepo, patternService, recommender, log)
	analysisService := service.NewAnalysisService(sessionRepo, alarmRepo, goalRepo, userRepo)
	optimizationService := service.NewOptimizationService(optRepo, alarmRepo, userRepo)

	// Initialize OpenAI client (may be nil if not configured)
	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel)
	if openaiClient == nil {
		log.Warn().Msg("OpenAI API key not configured, insights endpoint will be unavailable")
	}

	var insightsLLM llm.ScheduleInsightsLLM
	if openaiClient != nil {
		insightsLLM = openaiClient
	}
	insightsService := service.NewInsightsService(analysisService, goalService, alarmRepo, insightsLLM)

	// Start the periodic adaptive recompute job
	if cfg.RecomputeEnabled {
		job := batch.NewRecomputeJob(scheduleService, log)
		if err := job.Start(cfg.RecomputeCron); err != nil {
			log.Fatal().Err(err).Str("cron", cfg.RecomputeCron).Msg("failed to start recompute job")
		}
		defer job.Stop()
	}

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	sessionHandler := handler.NewSessionHandler(sessionService)
	alarmHandler := handler.NewAlarmHandler(scheduleService)
	goalHandler := handler.NewGoalHandler(goalService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	optimizationHandler := handler.NewOptimizationHandler(optimizationService)
	insightsHandler := handler.NewInsightsHandler(insightsService)

	// Setup router
	router := api.NewRouter(
		log,
		userHandler,
		sessionHandler,
		alarmHandler,
		goalHandler,
		analysisHandler,
		optimizationHandler,
		insightsHandler,
	)
	routerHandler := router.Setup()

	// Start server
	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("starting server")
	if err := http.ListenAndServe(addr, routerHandler); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

func newLogger(level string) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(logLevel).With().Timestamp().Logger()
}
