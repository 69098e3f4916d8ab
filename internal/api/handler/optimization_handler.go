package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/driftlab/wakewise/internal/api/validation"
	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/service"
	"github.com/driftlab/wakewise/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type OptimizationHandler struct {
	service service.OptimizationService
}

func NewOptimizationHandler(service service.OptimizationService) *OptimizationHandler {
	return &OptimizationHandler{service: service}
}

// Record handles POST /v1/users/{userId}/optimizations
// @Summary Record a schedule optimization
// @Description Append one accepted or rejected schedule change to the audit history. Records are never mutated afterwards.
// @Tags optimizations
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.RecordOptimizationRequest true "Optimization record"
// @Success 201 {object} domain.AlarmOptimization
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Alarm not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/optimizations [post]
func (h *OptimizationHandler) Record(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.RecordOptimizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	opt, err := h.service.Record(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Alarm not found").Write(w)
			return
		}
		problem.InternalError("Failed to record optimization").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(opt)
}

// History handles GET /v1/users/{userId}/optimizations
// @Summary List optimization history
// @Description Paginated history of schedule changes, newest first. Optionally filtered to one alarm.
// @Tags optimizations
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param alarm_id query string false "Filter to one alarm" format(uuid)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.OptimizationListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/optimizations [get]
func (h *OptimizationHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseOptimizationFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.History(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list optimization history").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseOptimizationFilter(r *http.Request) (domain.OptimizationFilter, []problem.FieldError) {
	var filter domain.OptimizationFilter
	var fieldErrors []problem.FieldError

	if alarmStr := r.URL.Query().Get("alarm_id"); alarmStr != "" {
		alarmID, err := uuid.Parse(alarmStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "alarm_id",
				Message: "must be a valid UUID",
			})
		} else {
			filter.AlarmID = &alarmID
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
