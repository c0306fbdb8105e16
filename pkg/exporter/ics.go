package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS writes a group's weekly schedule as calendar events. The
// published entries carry only a weekday and "HH:MM" times, so each entry is
// projected onto its next occurrence from `from` and repeated weekly for
// `weeks` weeks.
func GenerateICS(gt *timetable.GroupTimetable, from time.Time, weeks int, w io.Writer) error {
	if gt == nil || len(gt.Entries) == 0 {
		return fmt.Errorf("no entries to export")
	}
	if weeks < 1 {
		weeks = 1
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	layout := "15:04"

	for i, e := range gt.Entries {
		weekday, ok := parseWeekday(e.Day)
		if !ok {
			continue // Skip entries with unknown day names
		}

		startClock, err := time.Parse(layout, e.TimeSlot.StartTime)
		if err != nil {
			continue // Skip invalid times
		}
		endClock, err := time.Parse(layout, e.TimeSlot.EndTime)
		if err != nil {
			continue
		}

		first := nextWeekday(from, weekday)

		for week := 0; week < weeks; week++ {
			day := first.AddDate(0, 0, 7*week)
			startTime := time.Date(day.Year(), day.Month(), day.Day(),
				startClock.Hour(), startClock.Minute(), 0, 0, day.Location())
			endTime := time.Date(day.Year(), day.Month(), day.Day(),
				endClock.Hour(), endClock.Minute(), 0, 0, day.Location())

			event := cal.AddEvent(fmt.Sprintf("%s-%d-%d", startTime.Format("20060102T150405Z"), i, week))
			event.SetCreatedTime(time.Now())
			event.SetDtStampTime(time.Now())
			event.SetModifiedAt(time.Now())
			event.SetStartAt(startTime)
			event.SetEndAt(endTime)
			event.SetSummary(e.Course.CourseName)
			event.SetLocation(e.Room)

			description := fmt.Sprintf("Type: %s\nInstructor: %s\nGroup: %s",
				e.EntryType, e.Course.Instructor, gt.Group)
			event.SetDescription(description)
		}
	}

	return cal.SerializeTo(w)
}

// parseWeekday maps a stored day name to time.Weekday, case-insensitively.
func parseWeekday(day string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(day, d.String()) {
			return d, true
		}
	}
	return time.Sunday, false
}

// nextWeekday returns the first date on or after `from` falling on the given
// weekday, at midnight in from's location.
func nextWeekday(from time.Time, weekday time.Weekday) time.Time {
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	offset := (int(weekday) - int(day.Weekday()) + 7) % 7
	return day.AddDate(0, 0, offset)
}
