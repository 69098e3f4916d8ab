package service

import (
	"context"
	"testing"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/driftlab/wakewise/internal/llm"
)

func TestInsightsNoLLMConfigured(t *testing.T) {
	f := newAnalysisFixture()
	svc := NewInsightsService(f.svc, NewGoalService(f.goalRepo, mustUserRepo(f)), f.alarmRepo, nil)

	_, err := svc.Generate(context.Background(), f.userID)
	if err != llm.ErrOpenAIUnavailable {
		t.Errorf("Generate() without an LLM = %v, want ErrOpenAIUnavailable", err)
	}
}

func TestInsightsNoHistory(t *testing.T) {
	f := newAnalysisFixture()
	mock := &MockInsightsLLM{output: &domain.LLMInsightsOutput{Summary: "s"}}
	svc := NewInsightsService(f.svc, NewGoalService(f.goalRepo, mustUserRepo(f)), f.alarmRepo, mock)

	resp, err := svc.Generate(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if resp != nil {
		t.Errorf("Generate() with no sleep history = %+v, want nil", resp)
	}
	if mock.gotCtx != nil {
		t.Error("the LLM must not be called without an analysis")
	}
}

func TestInsightsGenerate(t *testing.T) {
	f := newAnalysisFixture()
	f.addSessions(t, 7, 23, 0, 7, 0, 460)
	f.addAlarm(t, "07:00")

	mock := &MockInsightsLLM{output: &domain.LLMInsightsOutput{
		Summary:      "A steady schedule with a small nightly shortfall.",
		Observations: []string{"consistent bedtimes"},
		Guidance:     []string{"keep the 23:00 bedtime"},
	}}
	svc := NewInsightsService(f.svc, NewGoalService(f.goalRepo, mustUserRepo(f)), f.alarmRepo, mock)

	resp, err := svc.Generate(context.Background(), f.userID)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if resp == nil {
		t.Fatal("expected a response")
	}

	if resp.Insights.Summary != mock.output.Summary {
		t.Errorf("Summary = %q", resp.Insights.Summary)
	}
	if resp.Analysis.Pattern.AverageBedtime != "23:00" {
		t.Errorf("Analysis.Pattern.AverageBedtime = %q, want 23:00", resp.Analysis.Pattern.AverageBedtime)
	}

	// The LLM context must carry the analysis, the (defaulted) goal, and
	// the user's alarms.
	if mock.gotCtx == nil {
		t.Fatal("LLM was never called")
	}
	if mock.gotCtx.Goal.TargetBedtime != "22:30" {
		t.Errorf("context goal = %+v, want the display defaults", mock.gotCtx.Goal)
	}
	if len(mock.gotCtx.Alarms) != 1 {
		t.Errorf("context alarms = %+v, want the seeded alarm", mock.gotCtx.Alarms)
	}
}

func TestInsightsLLMFailure(t *testing.T) {
	f := newAnalysisFixture()
	f.addSessions(t, 7, 23, 0, 7, 0, 460)

	mock := &MockInsightsLLM{err: llm.ErrOpenAIRequest}
	svc := NewInsightsService(f.svc, NewGoalService(f.goalRepo, mustUserRepo(f)), f.alarmRepo, mock)

	_, err := svc.Generate(context.Background(), f.userID)
	if err != llm.ErrOpenAIRequest {
		t.Errorf("Generate() error = %v, want the LLM error surfaced", err)
	}
}

// mustUserRepo rebuilds a user repo containing the fixture's user, for
// services that take their own repository.
func mustUserRepo(f *analysisFixture) *MockUserRepository {
	repo := NewMockUserRepository()
	repo.users[f.userID] = &domain.User{ID: f.userID}
	return repo
}
