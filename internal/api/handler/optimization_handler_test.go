package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/google/uuid"
)

func TestOptimizationHandler_Record(t *testing.T) {
	userID := uuid.New()
	alarmID := uuid.New()

	validBody := `{
		"alarm_id": "` + alarmID.String() + `",
		"optimization_type": "cycle_alignment",
		"old_time": "07:00",
		"new_time": "06:45",
		"reason": "cycle boundary",
		"effective_date": "2026-08-01T00:00:00Z",
		"accepted": true
	}`

	tests := []struct {
		name           string
		body           string
		mockService    *MockOptimizationService
		wantStatusCode int
	}{
		{
			name:           "valid record",
			body:           validBody,
			mockService:    &MockOptimizationService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			mockService:    &MockOptimizationService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "unknown optimization type",
			body: `{
				"alarm_id": "` + alarmID.String() + `",
				"optimization_type": "mystery",
				"old_time": "07:00",
				"new_time": "06:45",
				"reason": "r",
				"effective_date": "2026-08-01T00:00:00Z"
			}`,
			mockService:    &MockOptimizationService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "alarm of another user",
			body: validBody,
			mockService: &MockOptimizationService{
				recordFunc: func(ctx context.Context, userID uuid.UUID, req *domain.RecordOptimizationRequest) (*domain.AlarmOptimization, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewOptimizationHandler(tt.mockService)

			req := httptest.NewRequest(http.MethodPost, "/v1/users/"+userID.String()+"/optimizations", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			req = withURLParams(req, map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			handler.Record(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Record() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestOptimizationHandler_History(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		query          string
		wantStatusCode int
	}{
		{
			name:           "all history",
			query:          "",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "filtered by alarm",
			query:          "?alarm_id=" + uuid.New().String(),
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "bad alarm filter",
			query:          "?alarm_id=not-a-uuid",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "bad limit",
			query:          "?limit=zero",
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewOptimizationHandler(&MockOptimizationService{})

			req := httptest.NewRequest(http.MethodGet, "/v1/users/"+userID.String()+"/optimizations"+tt.query, nil)
			req = withURLParams(req, map[string]string{"userId": userID.String()})
			rec := httptest.NewRecorder()

			handler.History(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("History() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
