// Package timeofday provides helpers for working with clock times
// expressed as "HH:MM" strings and as minutes after midnight.
package timeofday

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 1440

// ErrInvalidTime indicates a string is not a valid HH:MM clock time.
var ErrInvalidTime = errors.New("invalid HH:MM time")

// Parse converts an "HH:MM" string to minutes after midnight.
func Parse(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return h*60 + m, nil
}

// Format converts minutes after midnight to HH:MM, normalizing
// negative or >24h values into [0, 1440).
func Format(minutes int) string {
	minutes = Normalize(minutes)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Normalize wraps a minute value into [0, 1440).
func Normalize(minutes int) int {
	return ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
}

// SignedOffset maps a minute-of-day value to a signed offset relative to
// midnight: times from noon onward become negative (minutes before
// midnight), times before noon stay positive (minutes after midnight).
// Averaging bedtimes that straddle midnight requires this representation.
func SignedOffset(minutes int) int {
	minutes = Normalize(minutes)
	if minutes >= minutesPerDay/2 {
		return minutes - minutesPerDay
	}
	return minutes
}

// CircularDiff returns the shortest distance in minutes between two
// clock times on the 24h circle.
func CircularDiff(a, b int) int {
	d := Normalize(a) - Normalize(b)
	if d < 0 {
		d = -d
	}
	if d > minutesPerDay/2 {
		d = minutesPerDay - d
	}
	return d
}

// IsValid reports whether s is a well-formed HH:MM string.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
