package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/driftlab/wakewise/internal/api/validation"
	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/service"
	"github.com/driftlab/wakewise/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type GoalHandler struct {
	service service.GoalService
}

func NewGoalHandler(service service.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

// Get handles GET /v1/users/{userId}/sleep-goal
// @Summary Get the active sleep goal
// @Description Get the user's sleep goal. Defaults (22:30 bedtime, 07:00 wake, 510 minutes) are returned when no goal has been set.
// @Tags sleep-goals
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.SleepGoal
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-goal [get]
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	goal, err := h.service.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to get sleep goal").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goal)
}

// Set handles PUT /v1/users/{userId}/sleep-goal
// @Summary Set the active sleep goal
// @Description Replace the user's sleep goal. One active goal per user.
// @Tags sleep-goals
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.SetSleepGoalRequest true "Sleep goal"
// @Success 200 {object} domain.SleepGoal
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-goal [put]
func (h *GoalHandler) Set(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.SetSleepGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	goal, err := h.service.Set(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to set sleep goal").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(goal)
}
