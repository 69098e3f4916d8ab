package service

import (
	"context"
	"testing"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/google/uuid"
)

func TestGoalGetAppliesDefaults(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID}
	goalRepo := NewMockSleepGoalRepository()

	svc := NewGoalService(goalRepo, userRepo)

	goal, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	if goal.TargetBedtime != "22:30" || goal.TargetWakeTime != "07:00" {
		t.Errorf("default times = %q/%q, want 22:30/07:00", goal.TargetBedtime, goal.TargetWakeTime)
	}
	if goal.TargetDurationMinutes != 510 {
		t.Errorf("default duration = %d, want 510", goal.TargetDurationMinutes)
	}
	if !goal.Consistency || !goal.AdaptToLifestyle {
		t.Errorf("default flags = %+v, want consistency and adapt_to_lifestyle on", goal)
	}
	if goal.WeekendVariationMinutes != 60 {
		t.Errorf("default weekend variation = %d, want 60", goal.WeekendVariationMinutes)
	}
}

func TestGoalGetUnknownUser(t *testing.T) {
	svc := NewGoalService(NewMockSleepGoalRepository(), NewMockUserRepository())

	if _, err := svc.Get(context.Background(), uuid.New()); err != domain.ErrNotFound {
		t.Errorf("Get() unknown user error = %v, want ErrNotFound", err)
	}
}

func TestGoalSetReplacesActive(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID}
	goalRepo := NewMockSleepGoalRepository()

	svc := NewGoalService(goalRepo, userRepo)

	first, err := svc.Set(context.Background(), userID, &domain.SetSleepGoalRequest{
		TargetBedtime:         "23:00",
		TargetWakeTime:        "06:30",
		TargetDurationMinutes: 450,
	})
	if err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if !first.Consistency {
		t.Error("Consistency should default to true")
	}

	second, err := svc.Set(context.Background(), userID, &domain.SetSleepGoalRequest{
		TargetBedtime:         "22:00",
		TargetWakeTime:        "06:00",
		TargetDurationMinutes: 480,
		Consistency:           boolPtr(false),
		WeekendVariationMinutes: intPtr(30),
	})
	if err != nil {
		t.Fatalf("second Set() error: %v", err)
	}
	if second.Consistency {
		t.Error("explicit consistency=false not honored")
	}
	if second.WeekendVariationMinutes != 30 {
		t.Errorf("WeekendVariationMinutes = %d, want 30", second.WeekendVariationMinutes)
	}

	// One active goal per user: Get returns the replacement.
	got, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got.TargetBedtime != "22:00" || got.TargetDurationMinutes != 480 {
		t.Errorf("active goal = %+v, want the second one", got)
	}
}

func TestStoredGoalDistinguishesUnset(t *testing.T) {
	userID := uuid.New()
	goalRepo := NewMockSleepGoalRepository()

	goal, err := storedGoal(context.Background(), goalRepo, userID)
	if err != nil {
		t.Fatalf("storedGoal() error: %v", err)
	}
	if goal != nil {
		t.Errorf("storedGoal() with nothing stored = %+v, want nil", goal)
	}

	goalRepo.goals[userID] = &domain.SleepGoal{UserID: userID, TargetDurationMinutes: 480}
	goal, err = storedGoal(context.Background(), goalRepo, userID)
	if err != nil {
		t.Fatalf("storedGoal() error: %v", err)
	}
	if goal == nil || goal.TargetDurationMinutes != 480 {
		t.Errorf("storedGoal() = %+v, want the stored goal", goal)
	}
}
