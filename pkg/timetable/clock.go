package timetable

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// timeNow is swapped out in tests to pin the wall clock.
var timeNow = time.Now

// CurrentClockString returns the local time formatted for display,
// e.g. "09:05 AM".
func CurrentClockString() string {
	return timeNow().Format("03:04 PM")
}

// CurrentWeekdayName returns the local weekday as a full English name
// ("Monday".."Sunday"). Stored day names may differ in casing, so callers
// compare case-insensitively.
func CurrentWeekdayName() string {
	return timeNow().Weekday().String()
}

// parseMinutes converts an "HH:MM" string to minutes since midnight.
func parseMinutes(hhmm string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(hhmm), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", hhmm, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", hhmm, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", hhmm)
	}
	return h*60 + m, nil
}

// nowMinutes is the current local time-of-day in minutes since midnight.
func nowMinutes() int {
	now := timeNow()
	return now.Hour()*60 + now.Minute()
}

// IsActiveNow reports whether the current local time lies within
// [start, end]. Both endpoints are inclusive: a class is still live at its
// exact end minute. No timezone conversion happens here; the published times
// and the clock are both local by convention.
func IsActiveNow(start, end string) bool {
	s, err := parseMinutes(start)
	if err != nil {
		return false
	}
	e, err := parseMinutes(end)
	if err != nil {
		return false
	}
	now := nowMinutes()
	return now >= s && now <= e
}
