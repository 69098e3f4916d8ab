package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/driftlab/wakewise/docs"
	"github.com/driftlab/wakewise/internal/api/handler"
	"github.com/driftlab/wakewise/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	log                 zerolog.Logger
	userHandler         *handler.UserHandler
	sessionHandler      *handler.SessionHandler
	alarmHandler        *handler.AlarmHandler
	goalHandler         *handler.GoalHandler
	analysisHandler     *handler.AnalysisHandler
	optimizationHandler *handler.OptimizationHandler
	insightsHandler     *handler.InsightsHandler
}

func NewRouter(
	log zerolog.Logger,
	userHandler *handler.UserHandler,
	sessionHandler *handler.SessionHandler,
	alarmHandler *handler.AlarmHandler,
	goalHandler *handler.GoalHandler,
	analysisHandler *handler.AnalysisHandler,
	optimizationHandler *handler.OptimizationHandler,
	insightsHandler *handler.InsightsHandler,
) *Router {
	return &Router{
		log:                 log,
		userHandler:         userHandler,
		sessionHandler:      sessionHandler,
		alarmHandler:        alarmHandler,
		goalHandler:         goalHandler,
		analysisHandler:     analysisHandler,
		optimizationHandler: optimizationHandler,
		insightsHandler:     insightsHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(rt.log))
	r.Use(middleware.Logger(rt.log))
	r.Use(middleware.Tracing)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.userHandler.Create)
			r.Get("/{userId}", rt.userHandler.GetByID)

			r.Route("/{userId}/sleep-sessions", func(r chi.Router) {
				r.Post("/", rt.sessionHandler.Create)
				r.Get("/", rt.sessionHandler.List)
			})

			r.Route("/{userId}/alarms", func(r chi.Router) {
				r.Post("/", rt.alarmHandler.Create)
				r.Get("/", rt.alarmHandler.List)
				r.Get("/{alarmId}", rt.alarmHandler.Get)
				r.Patch("/{alarmId}", rt.alarmHandler.Update)
				r.Delete("/{alarmId}", rt.alarmHandler.Delete)
			})

			r.Route("/{userId}/sleep-goal", func(r chi.Router) {
				r.Get("/", rt.goalHandler.Get)
				r.Put("/", rt.goalHandler.Set)
			})

			r.Get("/{userId}/schedule-analysis", rt.analysisHandler.Get)
			r.Get("/{userId}/schedule-insights", rt.insightsHandler.Get)

			r.Route("/{userId}/optimizations", func(r chi.Router) {
				r.Post("/", rt.optimizationHandler.Record)
				r.Get("/", rt.optimizationHandler.History)
			})
		})
	})

	return r
}
