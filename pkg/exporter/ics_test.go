package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Muneer320/Class-Timetable/pkg/timetable"
)

func TestGenerateICS(t *testing.T) {
	gt := &timetable.GroupTimetable{
		Group: "A",
		Entries: []timetable.ScheduleEntry{
			{
				Group: "A",
				Day:   "Monday",
				TimeSlot: timetable.TimeSlot{
					StartTime:       "09:00",
					EndTime:         "10:30",
					DurationMinutes: 90,
				},
				Course: timetable.CourseRef{
					CourseCode: "DSA",
					CourseName: "Data Structures",
					Instructor: "Dr. Khan",
					Credits:    3,
				},
				Room:      "Room 204",
				EntryType: "Lecture",
			},
		},
	}

	// 2026-03-04 is a Wednesday, so the next Monday is 2026-03-09
	from := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := GenerateICS(gt, from, 2, &buf); err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:Data Structures") {
		t.Errorf("Expected ICS to contain course summary, got: \n%s", output)
	}
	if !strings.Contains(output, "LOCATION:Room 204") {
		t.Errorf("Expected ICS to contain room location")
	}
	if !strings.Contains(output, "DTSTART:20260309T090000Z") {
		t.Errorf("Expected first occurrence on Monday 2026-03-09 09:00, got: \n%s", output)
	}
	// Second weekly occurrence
	if !strings.Contains(output, "DTSTART:20260316T090000Z") {
		t.Errorf("Expected second occurrence one week later, got: \n%s", output)
	}
}

func TestGenerateICSNoEntries(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateICS(&timetable.GroupTimetable{Group: "A"}, time.Now(), 1, &buf); err == nil {
		t.Errorf("expected error for a dataset without entries")
	}
}

func TestNextWeekday(t *testing.T) {
	wednesday := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	monday := nextWeekday(wednesday, time.Monday)
	if monday.Day() != 9 {
		t.Errorf("expected next Monday to be the 9th, got %d", monday.Day())
	}

	// Same weekday resolves to the same date
	wed := nextWeekday(wednesday, time.Wednesday)
	if wed.Day() != 4 {
		t.Errorf("expected same-day resolution to the 4th, got %d", wed.Day())
	}
}
