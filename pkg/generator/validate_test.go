package generator

import (
	"testing"

	"github.com/Muneer320/Class-Timetable/pkg/timetable"
)

func validEntry() *timetable.ScheduleEntry {
	return &timetable.ScheduleEntry{
		ID: "e1", Group: "A", Day: "Monday",
		TimeSlot: timetable.TimeSlot{StartTime: "09:00", EndTime: "10:30", DurationMinutes: 90},
		Course:   timetable.CourseRef{CourseCode: "DSA", CourseName: "Data Structures", Instructor: "Dr. Khan", Credits: 3},
		Room:     "Room 204", EntryType: "Lecture",
	}
}

func TestValidateEntry(t *testing.T) {
	if err := ValidateEntry(validEntry()); err != nil {
		t.Fatalf("expected valid entry to pass, got: %v", err)
	}
}

func TestValidateEntryRejects(t *testing.T) {
	cases := map[string]func(*timetable.ScheduleEntry){
		"unpadded time":        func(e *timetable.ScheduleEntry) { e.TimeSlot.StartTime = "9:00" },
		"out-of-range hour":    func(e *timetable.ScheduleEntry) { e.TimeSlot.EndTime = "25:00" },
		"weekend day":          func(e *timetable.ScheduleEntry) { e.Day = "Sunday" },
		"unknown day":          func(e *timetable.ScheduleEntry) { e.Day = "Funday" },
		"start after end":      func(e *timetable.ScheduleEntry) { e.TimeSlot.StartTime = "11:00" },
		"inconsistent duration": func(e *timetable.ScheduleEntry) { e.TimeSlot.DurationMinutes = 45 },
		"missing course code":  func(e *timetable.ScheduleEntry) { e.Course.CourseCode = "" },
	}

	for name, mutate := range cases {
		e := validEntry()
		mutate(e)
		if err := ValidateEntry(e); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestValidateEntryCaseInsensitiveDay(t *testing.T) {
	e := validEntry()
	e.Day = "monday"
	if err := ValidateEntry(e); err != nil {
		t.Errorf("expected lowercased day name to validate, got: %v", err)
	}
}

func TestFilterValid(t *testing.T) {
	good := validEntry()
	bad := validEntry()
	bad.TimeSlot.EndTime = "08:00" // before start

	valid, rejected := FilterValid(map[string][]*timetable.ScheduleEntry{
		"A": {good, bad},
	})

	if len(valid["A"]) != 1 {
		t.Errorf("expected 1 surviving entry, got %d", len(valid["A"]))
	}
	if len(rejected) != 1 {
		t.Errorf("expected 1 rejected entry, got %d", len(rejected))
	}
}
