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

type SessionHandler struct {
	service service.SessionService
}

func NewSessionHandler(service service.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Create handles POST /v1/users/{userId}/sleep-sessions
// @Summary Record a sleep session
// @Description Record one night of sleep with precomputed duration and optional stage minutes
// @Tags sleep-sessions
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateSleepSessionRequest true "Sleep session data"
// @Success 201 {object} domain.SleepSession
// @Failure 400 {object} problem.Problem "Invalid body, or duration exceeds time in bed"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "Session overlaps an existing one"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-sessions [post]
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateSleepSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	session, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Sleep duration cannot exceed time in bed").Write(w)
			return
		}
		if errors.Is(err, domain.ErrConflict) {
			problem.Conflict("Sleep session overlaps an existing session").Write(w)
			return
		}
		problem.InternalError("Failed to record sleep session").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(session)
}

// List handles GET /v1/users/{userId}/sleep-sessions
// @Summary List sleep sessions
// @Description Fetch paginated sleep history, newest first
// @Tags sleep-sessions
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepSessionListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/sleep-sessions [get]
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseSessionFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list sleep sessions").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseSessionFilter(r *http.Request) (domain.SleepSessionFilter, []problem.FieldError) {
	var filter domain.SleepSessionFilter
	var fieldErrors []problem.FieldError

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
