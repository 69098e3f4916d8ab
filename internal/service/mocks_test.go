package service

import (
	"context"
	"sort"
	"time"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockSleepSessionRepository is a mock implementation of SleepSessionRepository
type MockSleepSessionRepository struct {
	sessions []domain.SleepSession
	err      error
}

func NewMockSleepSessionRepository() *MockSleepSessionRepository {
	return &MockSleepSessionRepository{}
}

func (m *MockSleepSessionRepository) Create(ctx context.Context, session *domain.SleepSession) error {
	if m.err != nil {
		return m.err
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	session.CreatedAt = time.Now()
	m.sessions = append(m.sessions, *session)
	return nil
}

func (m *MockSleepSessionRepository) ListRecent(ctx context.Context, userID uuid.UUID, days int) ([]domain.SleepSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepSession
	for _, s := range m.sessions {
		if s.UserID == userID {
			result = append(result, s)
		}
	}
	// Newest first, like the real repository.
	sort.Slice(result, func(i, j int) bool {
		return result[i].Bedtime.After(result[j].Bedtime)
	})
	return result, nil
}

func (m *MockSleepSessionRepository) ListPage(ctx context.Context, userID uuid.UUID, filter domain.SleepSessionFilter) ([]domain.SleepSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.ListRecent(ctx, userID, 0)
}

func (m *MockSleepSessionRepository) HasOverlap(ctx context.Context, userID uuid.UUID, bedtime, wakeTime time.Time) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	for _, s := range m.sessions {
		if s.UserID == userID && s.Bedtime.Before(wakeTime) && s.WakeTime.After(bedtime) {
			return true, nil
		}
	}
	return false, nil
}

// MockAlarmRepository is a mock implementation of AlarmRepository
type MockAlarmRepository struct {
	alarms map[uuid.UUID]*domain.Alarm
	err    error
}

func NewMockAlarmRepository() *MockAlarmRepository {
	return &MockAlarmRepository{alarms: make(map[uuid.UUID]*domain.Alarm)}
}

func (m *MockAlarmRepository) Create(ctx context.Context, alarm *domain.Alarm) error {
	if m.err != nil {
		return m.err
	}
	if alarm.ID == uuid.Nil {
		alarm.ID = uuid.New()
	}
	stored := *alarm
	m.alarms[alarm.ID] = &stored
	return nil
}

func (m *MockAlarmRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Alarm, error) {
	if m.err != nil {
		return nil, m.err
	}
	alarm, ok := m.alarms[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *alarm
	return &copied, nil
}

func (m *MockAlarmRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Alarm, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Alarm
	for _, a := range m.alarms {
		if a.UserID == userID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Time < result[j].Time })
	return result, nil
}

func (m *MockAlarmRepository) ListAdaptive(ctx context.Context) ([]domain.Alarm, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Alarm
	for _, a := range m.alarms {
		if a.SmartEnabled && a.AdaptiveEnabled {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (m *MockAlarmRepository) Update(ctx context.Context, alarm *domain.Alarm) error {
	if m.err != nil {
		return m.err
	}
	stored := *alarm
	m.alarms[alarm.ID] = &stored
	return nil
}

func (m *MockAlarmRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.alarms[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.alarms, id)
	return nil
}

// MockSleepGoalRepository is a mock implementation of SleepGoalRepository
type MockSleepGoalRepository struct {
	goals map[uuid.UUID]*domain.SleepGoal
	err   error
}

func NewMockSleepGoalRepository() *MockSleepGoalRepository {
	return &MockSleepGoalRepository{goals: make(map[uuid.UUID]*domain.SleepGoal)}
}

func (m *MockSleepGoalRepository) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.SleepGoal, error) {
	if m.err != nil {
		return nil, m.err
	}
	goal, ok := m.goals[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return goal, nil
}

func (m *MockSleepGoalRepository) Upsert(ctx context.Context, goal *domain.SleepGoal) error {
	if m.err != nil {
		return m.err
	}
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	m.goals[goal.UserID] = goal
	return nil
}

// MockOptimizationRepository is a mock implementation of OptimizationRepository
type MockOptimizationRepository struct {
	records []domain.AlarmOptimization
	err     error
}

func NewMockOptimizationRepository() *MockOptimizationRepository {
	return &MockOptimizationRepository{}
}

func (m *MockOptimizationRepository) Append(ctx context.Context, opt *domain.AlarmOptimization) error {
	if m.err != nil {
		return m.err
	}
	if opt.ID == uuid.Nil {
		opt.ID = uuid.New()
	}
	// Strictly increasing timestamps keep newest-first ordering stable.
	opt.CreatedAt = time.Now().Add(time.Duration(len(m.records)) * time.Second)
	m.records = append(m.records, *opt)
	return nil
}

func (m *MockOptimizationRepository) List(ctx context.Context, userID uuid.UUID, filter domain.OptimizationFilter) ([]domain.AlarmOptimization, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.AlarmOptimization
	for _, r := range m.records {
		if r.UserID != userID {
			continue
		}
		if filter.AlarmID != nil && r.AlarmID != *filter.AlarmID {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// MockCycleRecommender returns a canned recommendation.
type MockCycleRecommender struct {
	rec *domain.WakeRecommendation
}

func (m *MockCycleRecommender) Recommend(alarm *domain.Alarm, pattern *domain.SleepPattern) *domain.WakeRecommendation {
	if pattern == nil {
		return nil
	}
	if m.rec == nil {
		return nil
	}
	copied := *m.rec
	return &copied
}

// MockPatternService returns a canned pattern.
type MockPatternService struct {
	pattern *domain.SleepPattern
	err     error
}

func (m *MockPatternService) Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.SleepPattern, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.pattern, nil
}

// MockInsightsLLM returns a canned narrative.
type MockInsightsLLM struct {
	output *domain.LLMInsightsOutput
	err    error
	gotCtx *domain.ScheduleInsightsContext
}

func (m *MockInsightsLLM) GenerateInsights(ctx context.Context, insightsCtx *domain.ScheduleInsightsContext) (*domain.LLMInsightsOutput, error) {
	m.gotCtx = insightsCtx
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// Helper functions
func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}
