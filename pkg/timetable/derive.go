package timetable

import (
	"sort"
	"strings"
)

// Weekdays is the fixed teaching week, in display order. Weekend entries, if
// a snapshot ever contains any, are excluded from the weekly view.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TodaysClasses returns the entries of gt scheduled on the given weekday,
// matched case-insensitively, in the dataset's original order. An empty
// result is a normal state, not an error.
func TodaysClasses(gt *GroupTimetable, day string) []ScheduleEntry {
	if gt == nil {
		return nil
	}
	var out []ScheduleEntry
	for _, e := range gt.Entries {
		if strings.EqualFold(e.Day, day) {
			out = append(out, e)
		}
	}
	return out
}

// NextClass returns the entry with the smallest start time strictly after
// the current time-of-day (in minutes since midnight), or false when no
// class remains today. The input is sorted by start time internally, so the
// result is chronologically correct even when the dataset is not time-ordered.
func NextClass(todays []ScheduleEntry, currentMinutes int) (ScheduleEntry, bool) {
	sorted := make([]ScheduleEntry, len(todays))
	copy(sorted, todays)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimeSlot.StartTime < sorted[j].TimeSlot.StartTime
	})

	for _, e := range sorted {
		start, err := parseMinutes(e.TimeSlot.StartTime)
		if err != nil {
			continue
		}
		if start > currentMinutes {
			return e, true
		}
	}
	return ScheduleEntry{}, false
}

// NextClassNow is NextClass against the live clock.
func NextClassNow(todays []ScheduleEntry) (ScheduleEntry, bool) {
	return NextClass(todays, nowMinutes())
}

// DaySchedule is one weekly-view bucket.
type DaySchedule struct {
	Day     string
	Entries []ScheduleEntry
}

// WeeklyView buckets a group's entries into the five teaching days, each
// bucket sorted ascending by start time. Day matching is case-insensitive
// throughout (the reference behavior mixed policies between views; one
// policy is used here, see DESIGN.md). Lexicographic comparison of the
// zero-padded 24-hour strings is a valid time ordering.
func WeeklyView(gt *GroupTimetable) []DaySchedule {
	week := make([]DaySchedule, 0, len(Weekdays))
	for _, day := range Weekdays {
		bucket := DaySchedule{Day: day}
		if gt != nil {
			for _, e := range gt.Entries {
				if strings.EqualFold(e.Day, day) {
					bucket.Entries = append(bucket.Entries, e)
				}
			}
		}
		sort.SliceStable(bucket.Entries, func(i, j int) bool {
			return bucket.Entries[i].TimeSlot.StartTime < bucket.Entries[j].TimeSlot.StartTime
		})
		week = append(week, bucket)
	}
	return week
}
