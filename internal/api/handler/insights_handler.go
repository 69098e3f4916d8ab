package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/llm"
	"github.com/driftlab/wakewise/internal/service"
	"github.com/driftlab/wakewise/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// InsightsHandler handles LLM-narrated schedule insights.
type InsightsHandler struct {
	service service.InsightsService
}

func NewInsightsHandler(service service.InsightsService) *InsightsHandler {
	return &InsightsHandler{service: service}
}

// Get handles GET /v1/users/{userId}/schedule-insights
// @Summary Get LLM-powered schedule insights
// @Description Narrate the schedule analysis with an LLM: summary, observations, and behavioral guidance.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.ScheduleInsightsResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Insufficient sleep data"
// @Failure 500 {object} problem.Problem
// @Failure 502 {object} problem.Problem "LLM error"
// @Failure 503 {object} problem.Problem "LLM service not configured"
// @Router /users/{userId}/schedule-insights [get]
func (h *InsightsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	result, err := h.service.Generate(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.New(http.StatusBadGateway, "llm-error", "LLM Error", "Failed to generate insights from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}
	if result == nil {
		problem.UnprocessableEntity("Not enough sleep data to generate insights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
