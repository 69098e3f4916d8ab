package handler

import (
	"context"
	"time"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MockSessionService is a mock implementation of SessionService
type MockSessionService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSessionRequest) (*domain.SleepSession, error)
	listFunc   func(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error)
}

func (m *MockSessionService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateSleepSessionRequest) (*domain.SleepSession, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.SleepSession{
		ID:            uuid.New(),
		UserID:        userID,
		Bedtime:       req.Bedtime,
		WakeTime:      req.WakeTime,
		SleepDuration: req.SleepDuration,
		CreatedAt:     time.Now(),
	}, nil
}

func (m *MockSessionService) List(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) (*domain.SleepSessionListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.SleepSessionListResponse{
		Data:       []domain.SleepSession{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockScheduleService is a mock implementation of ScheduleService
type MockScheduleService struct {
	createFunc func(ctx context.Context, userID uuid.UUID, req *domain.CreateAlarmRequest) (*domain.Alarm, error)
	getFunc    func(ctx context.Context, userID, alarmID uuid.UUID) (*domain.Alarm, error)
	listFunc   func(ctx context.Context, userID uuid.UUID) ([]domain.Alarm, error)
	updateFunc func(ctx context.Context, userID, alarmID uuid.UUID, req *domain.UpdateAlarmRequest) (*domain.Alarm, error)
	deleteFunc func(ctx context.Context, userID, alarmID uuid.UUID) error
}

func testAlarm(userID uuid.UUID) *domain.Alarm {
	return &domain.Alarm{
		ID:           uuid.New(),
		UserID:       userID,
		Time:         "07:00",
		Days:         datatypes.JSONSlice[int]{1, 2, 3, 4, 5},
		Enabled:      true,
		SmartEnabled: true,
		WakeWindow:   30,
	}
}

func (m *MockScheduleService) CreateAlarm(ctx context.Context, userID uuid.UUID, req *domain.CreateAlarmRequest) (*domain.Alarm, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return testAlarm(userID), nil
}

func (m *MockScheduleService) GetAlarm(ctx context.Context, userID, alarmID uuid.UUID) (*domain.Alarm, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID, alarmID)
	}
	return testAlarm(userID), nil
}

func (m *MockScheduleService) ListAlarms(ctx context.Context, userID uuid.UUID) ([]domain.Alarm, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return []domain.Alarm{*testAlarm(userID)}, nil
}

func (m *MockScheduleService) UpdateAlarm(ctx context.Context, userID, alarmID uuid.UUID, req *domain.UpdateAlarmRequest) (*domain.Alarm, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, alarmID, req)
	}
	return testAlarm(userID), nil
}

func (m *MockScheduleService) DeleteAlarm(ctx context.Context, userID, alarmID uuid.UUID) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, alarmID)
	}
	return nil
}

func (m *MockScheduleService) RecomputeAll(ctx context.Context) (int, error) {
	return 0, nil
}

// MockGoalService is a mock implementation of GoalService
type MockGoalService struct {
	getFunc func(ctx context.Context, userID uuid.UUID) (*domain.SleepGoal, error)
	setFunc func(ctx context.Context, userID uuid.UUID, req *domain.SetSleepGoalRequest) (*domain.SleepGoal, error)
}

func (m *MockGoalService) Get(ctx context.Context, userID uuid.UUID) (*domain.SleepGoal, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, userID)
	}
	return domain.DefaultSleepGoal(userID), nil
}

func (m *MockGoalService) Set(ctx context.Context, userID uuid.UUID, req *domain.SetSleepGoalRequest) (*domain.SleepGoal, error) {
	if m.setFunc != nil {
		return m.setFunc(ctx, userID, req)
	}
	return &domain.SleepGoal{
		ID:                    uuid.New(),
		UserID:                userID,
		TargetBedtime:         req.TargetBedtime,
		TargetWakeTime:        req.TargetWakeTime,
		TargetDurationMinutes: req.TargetDurationMinutes,
	}, nil
}

// MockAnalysisService is a mock implementation of AnalysisService
type MockAnalysisService struct {
	analyzeFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserScheduleAnalysis, error)
}

func (m *MockAnalysisService) Analyze(ctx context.Context, userID uuid.UUID) (*domain.UserScheduleAnalysis, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, userID)
	}
	return nil, nil
}

// MockOptimizationService is a mock implementation of OptimizationService
type MockOptimizationService struct {
	recordFunc  func(ctx context.Context, userID uuid.UUID, req *domain.RecordOptimizationRequest) (*domain.AlarmOptimization, error)
	historyFunc func(ctx context.Context, userID uuid.UUID, filter domain.OptimizationFilter) (*domain.OptimizationListResponse, error)
}

func (m *MockOptimizationService) Record(ctx context.Context, userID uuid.UUID, req *domain.RecordOptimizationRequest) (*domain.AlarmOptimization, error) {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, userID, req)
	}
	return &domain.AlarmOptimization{
		ID:               uuid.New(),
		AlarmID:          req.AlarmID,
		UserID:           userID,
		OptimizationType: req.OptimizationType,
		OldTime:          req.OldTime,
		NewTime:          req.NewTime,
		Reason:           req.Reason,
		EffectiveDate:    req.EffectiveDate,
		Accepted:         req.Accepted,
		CreatedAt:        time.Now(),
	}, nil
}

func (m *MockOptimizationService) History(ctx context.Context, userID uuid.UUID, filter domain.OptimizationFilter) (*domain.OptimizationListResponse, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, userID, filter)
	}
	return &domain.OptimizationListResponse{
		Data:       []domain.AlarmOptimization{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.ScheduleInsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, userID uuid.UUID) (*domain.ScheduleInsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return nil, nil
}
