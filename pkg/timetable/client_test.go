package timetable

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

const groupAJSON = `{
	"group": "A",
	"entries": [
		{
			"id": "e1",
			"group": "A",
			"day": "Monday",
			"time_slot": {"start_time": "09:00", "end_time": "10:30", "duration_minutes": 90},
			"course": {"course_code": "DSA", "course_name": "Data Structures", "instructor": "Dr. Khan", "credits": 3},
			"room": "Room 204",
			"entry_type": "Lecture"
		}
	],
	"total_classes": 1
}`

// isolateHome keeps the disk cache out of the real home directory.
func isolateHome(t *testing.T) {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "timetable-client-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)
}

func TestFetchGroup(t *testing.T) {
	isolateHome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The group identifier must be lowercased in the file name
		if r.URL.Path != "/group_a.json" {
			t.Errorf("expected request for /group_a.json, got %s", r.URL.Path)
		}
		w.Write([]byte(groupAJSON))
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL)
	gt, err := client.FetchGroup("A")
	if err != nil {
		t.Fatalf("FetchGroup failed: %v", err)
	}

	if gt.Group != "A" || gt.TotalClasses != 1 {
		t.Errorf("unexpected dataset header: %+v", gt)
	}
	if len(gt.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(gt.Entries))
	}

	e := gt.Entries[0]
	if e.Course.CourseName != "Data Structures" || e.TimeSlot.StartTime != "09:00" || e.Room != "Room 204" {
		t.Errorf("entry fields not decoded correctly: %+v", e)
	}
}

func TestFetchGroupUsesCache(t *testing.T) {
	isolateHome(t)

	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(groupAJSON))
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL)

	if _, err := client.FetchGroup("a"); err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	if _, err := client.FetchGroup("a"); err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}
	if requests != 1 {
		t.Errorf("expected the second fetch to hit the disk cache, server saw %d requests", requests)
	}

	client.SkipCache = true
	if _, err := client.FetchGroup("a"); err != nil {
		t.Fatalf("refresh fetch failed: %v", err)
	}
	if requests != 2 {
		t.Errorf("expected SkipCache to force a network fetch, server saw %d requests", requests)
	}
}

func TestFetchGroupNotFound(t *testing.T) {
	isolateHome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL)
	if _, err := client.FetchGroup("z"); err == nil {
		t.Errorf("expected error for missing group dataset")
	}
}

func TestFetchTimetableBadJSON(t *testing.T) {
	isolateHome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL)
	if _, err := client.FetchTimetable(); err == nil {
		t.Errorf("expected decode error for malformed JSON")
	}
}

func TestFetchMetadata(t *testing.T) {
	isolateHome(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/metadata.json" {
			t.Errorf("expected request for /metadata.json, got %s", r.URL.Path)
		}
		w.Write([]byte(`{"last_updated": "2026-03-02T06:00:00", "total_groups": 3, "total_entries": 78, "groups": ["A", "B", "C"]}`))
	}))
	defer server.Close()

	client := NewClientWithBase(server.URL)
	md, err := client.FetchMetadata()
	if err != nil {
		t.Fatalf("FetchMetadata failed: %v", err)
	}
	if md.TotalEntries != 78 || len(md.Groups) != 3 {
		t.Errorf("metadata not decoded correctly: %+v", md)
	}
}
