package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const seededDays = 30

// Run seeds the database with sample users, sleep sessions, alarms, and
// goals. Safe to call multiple times.
func Run(db *gorm.DB, log zerolog.Logger) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.SleepSession{},
		&domain.Alarm{},
		&domain.SleepGoal{},
		&domain.AlarmOptimization{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i, user := range users {
		// Stagger the seeded bedtimes so the three users land in
		// different chronotype buckets.
		baseBedHour := 21 + i
		if err := seedSessionsForUser(db, user, baseBedHour, rng); err != nil {
			return err
		}
		if err := seedAlarmForUser(db, user); err != nil {
			return err
		}
		if err := seedGoalForUser(db, user); err != nil {
			return err
		}
	}

	log.Info().Int("users", len(users)).Msg("seed completed")
	return nil
}

func seedSessionsForUser(db *gorm.DB, user domain.User, baseBedHour int, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		bedtime := time.Date(date.Year(), date.Month(), date.Day(), baseBedHour, rng.Intn(45), 0, 0, time.UTC)
		inBed := time.Duration(7*60+rng.Intn(120)) * time.Minute
		wake := bedtime.Add(inBed)
		duration := int(inBed.Minutes()) - 20 - rng.Intn(30)

		deep := duration / 4
		rem := duration / 5
		light := duration - deep - rem

		session := domain.SleepSession{
			UserID:        user.ID,
			Bedtime:       bedtime,
			WakeTime:      wake,
			SleepDuration: duration,
			DeepMinutes:   &deep,
			RemMinutes:    &rem,
			LightMinutes:  &light,
		}

		err := db.Where("user_id = ? AND bedtime = ?", user.ID, bedtime).
			FirstOrCreate(&session).Error
		if err != nil {
			return fmt.Errorf("failed to create sleep session: %w", err)
		}
	}
	return nil
}

func seedAlarmForUser(db *gorm.DB, user domain.User) error {
	alarm := domain.Alarm{
		UserID:           user.ID,
		Time:             "07:00",
		Label:            "Workday",
		Days:             datatypes.JSONSlice[int]{1, 2, 3, 4, 5},
		Enabled:          true,
		SmartEnabled:     true,
		WakeWindow:       30,
		AdaptiveEnabled:  true,
		SleepGoalMinutes: 480,
		Consistency:      true,
	}
	err := db.Where("user_id = ? AND time = ?", user.ID, alarm.Time).
		FirstOrCreate(&alarm).Error
	if err != nil {
		return fmt.Errorf("failed to create alarm: %w", err)
	}
	return nil
}

func seedGoalForUser(db *gorm.DB, user domain.User) error {
	goal := domain.SleepGoal{
		UserID:                  user.ID,
		TargetBedtime:           "22:30",
		TargetWakeTime:          "07:00",
		TargetDurationMinutes:   480,
		Consistency:             true,
		WeekendVariationMinutes: 60,
		AdaptToLifestyle:        true,
	}
	err := db.Where("user_id = ?", user.ID).FirstOrCreate(&goal).Error
	if err != nil {
		return fmt.Errorf("failed to create sleep goal: %w", err)
	}
	return nil
}
