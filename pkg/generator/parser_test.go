package generator

import (
	"testing"
)

// testGrid mimics the master sheet layout: a title row, group section
// headers, weekday headers repeated per section, then time rows.
func testGrid() [][]string {
	return [][]string{
		{"Class Timetable", "", "", "", ""},
		{"", "Group A", "", "Group B", ""},
		{"Time", "Monday", "Tuesday", "Monday", "Tuesday"},
		{"9:00 - 10:00 AM",
			"Data Structures and Algorithms\n[Dr. Khan]\n[Room 204]",
			"",
			"Operating Systems\n[Prof. Sharma]\n[Lab 3]",
			""},
		{"10:00 - 11:00 AM",
			"Data Structures and Algorithms\n[Dr. Khan]\n[Room 204]",
			"",
			"",
			"Database Lab\n[Dr. Rao]\n[Lab 2]"},
		{"11:00 - 12:00 PM", "LUNCH", "LUNCH", "LUNCH", "LUNCH"},
		{"12:00 - 1:00 PM", "", "Computer Networks\n[Dr. Iyer]\n[Room 101]", "", ""},
	}
}

func TestParseGrid(t *testing.T) {
	entries, err := ParseGrid(testGrid(), []string{"A", "B"})
	if err != nil {
		t.Fatalf("ParseGrid failed: %v", err)
	}

	groupA := entries["A"]
	if len(groupA) != 2 {
		t.Fatalf("expected 2 entries for group A, got %d", len(groupA))
	}

	// Two consecutive rows of the same course merge into one block
	dsa := groupA[0]
	if dsa.Course.CourseCode != "DSA" {
		t.Errorf("expected course code DSA from initials, got %s", dsa.Course.CourseCode)
	}
	if dsa.Day != "Monday" || dsa.TimeSlot.StartTime != "09:00" || dsa.TimeSlot.EndTime != "11:00" {
		t.Errorf("expected merged Monday 09:00-11:00 block, got %s %s-%s",
			dsa.Day, dsa.TimeSlot.StartTime, dsa.TimeSlot.EndTime)
	}
	if dsa.TimeSlot.DurationMinutes != 120 {
		t.Errorf("expected merged duration 120, got %d", dsa.TimeSlot.DurationMinutes)
	}
	if dsa.Course.Instructor != "Dr. Khan" || dsa.Room != "Room 204" {
		t.Errorf("expected bracket-stripped instructor/room, got %q / %q",
			dsa.Course.Instructor, dsa.Room)
	}
	if dsa.ID == "" {
		t.Errorf("expected a generated entry id")
	}

	// A class after LUNCH starts a fresh block; the PM suffix resolves
	// "12:00 - 1:00" to afternoon times
	cn := groupA[1]
	if cn.Day != "Tuesday" || cn.TimeSlot.StartTime != "12:00" || cn.TimeSlot.EndTime != "13:00" {
		t.Errorf("expected Tuesday 12:00-13:00, got %s %s-%s",
			cn.Day, cn.TimeSlot.StartTime, cn.TimeSlot.EndTime)
	}

	groupB := entries["B"]
	if len(groupB) != 2 {
		t.Fatalf("expected 2 entries for group B, got %d", len(groupB))
	}

	// A blank continuation cell extends the block above it
	os := groupB[0]
	if os.TimeSlot.StartTime != "09:00" || os.TimeSlot.EndTime != "11:00" {
		t.Errorf("expected blank cell to extend OS to 09:00-11:00, got %s-%s",
			os.TimeSlot.StartTime, os.TimeSlot.EndTime)
	}

	// "Lab" in the course name sets the entry type and is stripped from
	// the display name
	lab := groupB[1]
	if lab.EntryType != "Lab" {
		t.Errorf("expected entry type Lab, got %s", lab.EntryType)
	}
	if lab.Course.CourseName != "Database" {
		t.Errorf("expected 'Lab' stripped from course name, got %q", lab.Course.CourseName)
	}
}

func TestParseGridMissingHeaders(t *testing.T) {
	rows := [][]string{
		{"just", "some"},
		{"random", "cells"},
		{"no", "headers"},
	}
	if _, err := ParseGrid(rows, []string{"A"}); err == nil {
		t.Errorf("expected error when header rows are missing")
	}
}

func TestCleanTimeRange(t *testing.T) {
	cases := []struct {
		rawStart, rawEnd   string
		wantStart, wantEnd string
	}{
		{"9:00 AM", "10:30 AM", "09:00", "10:30"},
		{"9:00", "10:30 AM", "09:00", "10:30"},     // suffix only on the end
		{"11:30", "12:30 PM", "11:30", "12:30"},    // crosses noon
		{"2:00 PM", "3:30 PM", "14:00", "15:30"},   // afternoon
		{"12:00", "1:00 PM", "12:00", "13:00"},     // bare 12 resolves to noon
	}

	for _, tc := range cases {
		gotStart, gotEnd := cleanTimeRange(tc.rawStart, tc.rawEnd)
		if gotStart != tc.wantStart || gotEnd != tc.wantEnd {
			t.Errorf("cleanTimeRange(%q, %q) = (%q, %q), want (%q, %q)",
				tc.rawStart, tc.rawEnd, gotStart, gotEnd, tc.wantStart, tc.wantEnd)
		}
	}
}

func TestCourseCode(t *testing.T) {
	cases := map[string]string{
		"Data Structures and Algorithms": "DSA",
		"Operating Systems":              "OS",
		"Maths":                          "M",
		"Éthique et Informatique":        "ÉEI", // accented initial stays one rune
	}
	for name, want := range cases {
		if got := courseCode(name); got != want {
			t.Errorf("courseCode(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestParseClassInfoDefaults(t *testing.T) {
	e := parseClassInfo("Compiler Design", "A", "Friday", "09:00", "10:30")
	if e == nil {
		t.Fatal("expected an entry for a name-only cell")
	}
	if e.Course.Instructor != "TBD" || e.Room != "TBD" {
		t.Errorf("expected TBD defaults for missing instructor/room, got %q / %q",
			e.Course.Instructor, e.Room)
	}
	if e.Course.Credits != 3 {
		t.Errorf("expected default credits 3, got %d", e.Course.Credits)
	}
}
