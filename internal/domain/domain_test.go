package domain

import (
	"time"

	"github.com/google/uuid"
)

func testTime() time.Time {
	return time.Date(2026, 3, 14, 6, 30, 0, 0, time.UTC)
}

func testSession(bedtime, wake time.Time, duration int) SleepSession {
	return SleepSession{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Bedtime:       bedtime,
		WakeTime:      wake,
		SleepDuration: duration,
	}
}
