package generator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Muneer320/Class-Timetable/pkg/timetable"
)

func snapshotFixture() map[string][]*timetable.ScheduleEntry {
	dsa := &timetable.ScheduleEntry{
		ID: "e1", Group: "A", Day: "Monday",
		TimeSlot: timetable.TimeSlot{StartTime: "09:00", EndTime: "10:30", DurationMinutes: 90},
		Course:   timetable.CourseRef{CourseCode: "DSA", CourseName: "Data Structures", Instructor: "Dr. Khan", Credits: 3},
		Room:     "Room 204", EntryType: "Lecture",
	}
	dsaB := &timetable.ScheduleEntry{
		ID: "e2", Group: "B", Day: "Tuesday",
		TimeSlot: timetable.TimeSlot{StartTime: "11:00", EndTime: "12:30", DurationMinutes: 90},
		Course:   timetable.CourseRef{CourseCode: "DSA", CourseName: "Data Structures", Instructor: "Dr. Khan", Credits: 3},
		Room:     "Room 110", EntryType: "Lecture",
	}
	osA := &timetable.ScheduleEntry{
		ID: "e3", Group: "A", Day: "Wednesday",
		TimeSlot: timetable.TimeSlot{StartTime: "14:00", EndTime: "15:30", DurationMinutes: 90},
		Course:   timetable.CourseRef{CourseCode: "OS", CourseName: "Operating Systems", Instructor: "Prof. Sharma", Credits: 4},
		Room:     "Room 101", EntryType: "Lecture",
	}

	return map[string][]*timetable.ScheduleEntry{
		"A": {dsa, osA},
		"B": {dsaB},
		"C": nil, // a group with no parsed entries
	}
}

func TestBuildSnapshot(t *testing.T) {
	snap := BuildSnapshot(snapshotFixture(), []string{"A", "B", "C"})

	// Empty groups are dropped from the aggregate
	if snap.Timetable.TotalGroups != 2 || len(snap.Timetable.Data) != 2 {
		t.Fatalf("expected 2 populated groups, got %d", len(snap.Timetable.Data))
	}
	if !snap.Timetable.Success {
		t.Errorf("expected success flag on the aggregate")
	}
	if snap.Timetable.Data[0].Group != "A" || snap.Timetable.Data[1].Group != "B" {
		t.Errorf("expected configured group order [A, B], got [%s, %s]",
			snap.Timetable.Data[0].Group, snap.Timetable.Data[1].Group)
	}
	if snap.Timetable.Data[0].TotalClasses != 2 {
		t.Errorf("expected group A to report 2 classes, got %d", snap.Timetable.Data[0].TotalClasses)
	}

	// Metadata still counts every configured group
	if snap.Metadata.TotalEntries != 3 || len(snap.Metadata.Groups) != 3 {
		t.Errorf("unexpected metadata: %+v", snap.Metadata)
	}

	// One catalog card per course code, groups and slots accumulated
	if len(snap.Courses.Courses) != 2 {
		t.Fatalf("expected 2 catalog courses, got %d", len(snap.Courses.Courses))
	}
	dsa := snap.Courses.Courses[0]
	if dsa.CourseCode != "DSA" {
		t.Fatalf("expected DSA card first, got %s", dsa.CourseCode)
	}
	if len(dsa.Groups) != 2 {
		t.Errorf("expected DSA taken by 2 groups, got %v", dsa.Groups)
	}
	if len(dsa.Schedule) != 2 {
		t.Fatalf("expected 2 pre-joined slots on the DSA card, got %d", len(dsa.Schedule))
	}
	if dsa.Schedule[0].Time != "09:00 - 10:30" {
		t.Errorf("expected coarse time string '09:00 - 10:30', got %q", dsa.Schedule[0].Time)
	}
}

func TestWriteJSON(t *testing.T) {
	outDir, err := os.MkdirTemp("", "timetable-export-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(outDir)

	snap := BuildSnapshot(snapshotFixture(), []string{"A", "B", "C"})
	if err := WriteJSON(snap, outDir); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	// Per-group files use lowercased identifiers; group C had no entries
	for _, name := range []string{"timetable.json", "group_a.json", "group_b.json", "courses.json", "metadata.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("expected %s to be written: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "group_c.json")); !os.IsNotExist(err) {
		t.Errorf("expected no file for an empty group")
	}

	// The written group file round-trips into the viewer's model
	data, err := os.ReadFile(filepath.Join(outDir, "group_a.json"))
	if err != nil {
		t.Fatalf("failed to read group_a.json: %v", err)
	}
	var gt timetable.GroupTimetable
	if err := json.Unmarshal(data, &gt); err != nil {
		t.Fatalf("group_a.json does not decode: %v", err)
	}
	if gt.Group != "A" || len(gt.Entries) != 2 {
		t.Errorf("unexpected group_a.json contents: %+v", gt)
	}
	if gt.Entries[0].TimeSlot.StartTime != "09:00" {
		t.Errorf("expected start_time to survive the round trip, got %q", gt.Entries[0].TimeSlot.StartTime)
	}
}
