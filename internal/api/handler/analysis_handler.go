package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/service"
	"github.com/driftlab/wakewise/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AnalysisHandler struct {
	service service.AnalysisService
}

func NewAnalysisHandler(service service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{service: service}
}

// Get handles GET /v1/users/{userId}/schedule-analysis
// @Summary Analyze the user's sleep schedule
// @Description Full schedule analysis: sleep debt, consistency, chronotype alignment, and recommendations over the trailing 30 days. Returns 422 when no sleep history exists.
// @Tags analysis
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.UserScheduleAnalysis
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Insufficient sleep data"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/schedule-analysis [get]
func (h *AnalysisHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	analysis, err := h.service.Analyze(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to analyze schedule").Write(w)
		return
	}
	if analysis == nil {
		problem.UnprocessableEntity("Not enough sleep data to analyze the schedule").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analysis)
}
