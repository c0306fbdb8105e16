package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Muneer320/Class-Timetable/pkg/timetable"
)

// Snapshot is one complete generation result, ready to publish.
type Snapshot struct {
	Timetable timetable.TimetableResponse
	Courses   timetable.CoursesResponse
	Metadata  timetable.Metadata
}

// BuildSnapshot assembles the aggregate, per-group, catalog and metadata
// documents from parsed entries. groups fixes the output order; groups with
// no entries are dropped from the aggregate but still counted in metadata.
func BuildSnapshot(entries map[string][]*timetable.ScheduleEntry, groups []string) *Snapshot {
	now := time.Now().Format(time.RFC3339)

	var data []timetable.GroupTimetable
	total := 0
	for _, g := range groups {
		list := entries[g]
		total += len(list)
		if len(list) == 0 {
			continue
		}
		gt := timetable.GroupTimetable{
			Group:        g,
			TotalClasses: len(list),
		}
		for _, e := range list {
			gt.Entries = append(gt.Entries, *e)
		}
		data = append(data, gt)
	}

	snap := &Snapshot{
		Timetable: timetable.TimetableResponse{
			Success:     true,
			Data:        data,
			TotalGroups: len(data),
			LastUpdated: now,
		},
		Courses: buildCatalog(data),
		Metadata: timetable.Metadata{
			LastUpdated:  now,
			TotalGroups:  len(data),
			TotalEntries: total,
			Groups:       groups,
		},
	}
	return snap
}

// buildCatalog derives the course catalog from the per-group entries: one
// card per course code, carrying the groups that take it and a pre-joined
// schedule row per occurrence. The card's name/instructor/credits come from
// the first entry seen; the generator is the only place responsible for
// keeping this denormalization consistent.
func buildCatalog(data []timetable.GroupTimetable) timetable.CoursesResponse {
	byCode := make(map[string]*timetable.Course)
	var order []string

	for _, gt := range data {
		for _, e := range gt.Entries {
			code := e.Course.CourseCode
			course, ok := byCode[code]
			if !ok {
				course = &timetable.Course{
					CourseCode: code,
					CourseName: e.Course.CourseName,
					Instructor: e.Course.Instructor,
					Credits:    e.Course.Credits,
				}
				byCode[code] = course
				order = append(order, code)
			}

			if !containsString(course.Groups, gt.Group) {
				course.Groups = append(course.Groups, gt.Group)
			}

			course.Schedule = append(course.Schedule, timetable.CourseSlot{
				Group: gt.Group,
				Day:   e.Day,
				Time:  fmt.Sprintf("%s - %s", e.TimeSlot.StartTime, e.TimeSlot.EndTime),
				Room:  e.Room,
				Type:  e.EntryType,
			})
		}
	}

	var out timetable.CoursesResponse
	for _, code := range order {
		out.Courses = append(out.Courses, *byCode[code])
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// WriteJSON publishes a snapshot to outDir as the static files the viewer
// consumes: timetable.json, group_{id}.json per group, courses.json and
// metadata.json. Each file is written whole, so a reader always sees either
// the previous or the new complete document.
func WriteJSON(snap *Snapshot, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("could not create output directory: %w", err)
	}

	if err := writeFile(filepath.Join(outDir, "timetable.json"), snap.Timetable); err != nil {
		return err
	}

	for _, gt := range snap.Timetable.Data {
		name := fmt.Sprintf("group_%s.json", strings.ToLower(gt.Group))
		if err := writeFile(filepath.Join(outDir, name), gt); err != nil {
			return err
		}
	}

	if err := writeFile(filepath.Join(outDir, "courses.json"), snap.Courses); err != nil {
		return err
	}

	return writeFile(filepath.Join(outDir, "metadata.json"), snap.Metadata)
}

func writeFile(path string, doc interface{}) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
