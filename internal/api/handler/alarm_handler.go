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

type AlarmHandler struct {
	service service.ScheduleService
}

func NewAlarmHandler(service service.ScheduleService) *AlarmHandler {
	return &AlarmHandler{service: service}
}

// Create handles POST /v1/users/{userId}/alarms
// @Summary Create an alarm
// @Description Create an alarm. When smart_enabled is set, a wake-time suggestion is computed immediately; without sleep history a zero-confidence fallback is attached and creation still succeeds.
// @Tags alarms
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateAlarmRequest true "Alarm configuration"
// @Success 201 {object} domain.Alarm
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/alarms [post]
func (h *AlarmHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.CreateAlarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	alarm, err := h.service.CreateAlarm(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to create alarm").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(alarm)
}

// Get handles GET /v1/users/{userId}/alarms/{alarmId}
// @Summary Get an alarm
// @Tags alarms
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param alarmId path string true "Alarm UUID" format(uuid)
// @Success 200 {object} domain.Alarm
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/alarms/{alarmId} [get]
func (h *AlarmHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, alarmID, perr := parseAlarmPath(r)
	if perr != nil {
		perr.Write(w)
		return
	}

	alarm, err := h.service.GetAlarm(r.Context(), userID, alarmID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Alarm not found").Write(w)
			return
		}
		problem.InternalError("Failed to get alarm").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alarm)
}

// List handles GET /v1/users/{userId}/alarms
// @Summary List a user's alarms
// @Tags alarms
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.AlarmListResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/alarms [get]
func (h *AlarmHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	alarms, err := h.service.ListAlarms(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list alarms").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.AlarmListResponse{Data: alarms})
}

// Update handles PATCH /v1/users/{userId}/alarms/{alarmId}
// @Summary Update an alarm
// @Description Partially update an alarm. The smart schedule is recomputed only when time, days, or smart_enabled change; a recompute failure keeps the previous schedule.
// @Tags alarms
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param alarmId path string true "Alarm UUID" format(uuid)
// @Param request body domain.UpdateAlarmRequest true "Fields to update"
// @Success 200 {object} domain.Alarm
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/alarms/{alarmId} [patch]
func (h *AlarmHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, alarmID, perr := parseAlarmPath(r)
	if perr != nil {
		perr.Write(w)
		return
	}

	var req domain.UpdateAlarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	alarm, err := h.service.UpdateAlarm(r.Context(), userID, alarmID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Alarm not found").Write(w)
			return
		}
		problem.InternalError("Failed to update alarm").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(alarm)
}

// Delete handles DELETE /v1/users/{userId}/alarms/{alarmId}
// @Summary Delete an alarm
// @Tags alarms
// @Param userId path string true "User UUID" format(uuid)
// @Param alarmId path string true "Alarm UUID" format(uuid)
// @Success 204 "Deleted"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/alarms/{alarmId} [delete]
func (h *AlarmHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, alarmID, perr := parseAlarmPath(r)
	if perr != nil {
		perr.Write(w)
		return
	}

	if err := h.service.DeleteAlarm(r.Context(), userID, alarmID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Alarm not found").Write(w)
			return
		}
		problem.InternalError("Failed to delete alarm").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseAlarmPath(r *http.Request) (userID, alarmID uuid.UUID, perr *problem.Problem) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, problem.BadRequest("Invalid user ID format")
	}
	alarmID, err = uuid.Parse(chi.URLParam(r, "alarmId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, problem.BadRequest("Invalid alarm ID format")
	}
	return userID, alarmID, nil
}
