package generator

import (
	"fmt"
	"time"

	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const createEntriesTable = `
CREATE TABLE IF NOT EXISTS timetable_entries (
	id TEXT PRIMARY KEY,
	group_name TEXT NOT NULL,
	day TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	duration_minutes INTEGER NOT NULL,
	course_code TEXT NOT NULL,
	course_name TEXT NOT NULL,
	instructor TEXT NOT NULL,
	room TEXT NOT NULL,
	credits INTEGER DEFAULT 3,
	entry_type TEXT DEFAULT 'Lecture',
	updated_at TEXT NOT NULL
)`

const createMetadataTable = `
CREATE TABLE IF NOT EXISTS metadata (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

const deleteEntries = `DELETE FROM timetable_entries`

const insertEntry = `
INSERT INTO timetable_entries
	(id, group_name, day, start_time, end_time, duration_minutes,
	 course_code, course_name, instructor, room, credits, entry_type, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

const upsertMetadata = `
INSERT INTO metadata (key, value, updated_at) VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

// SaveToDatabase replaces the backup snapshot in Postgres with the freshly
// parsed entries. The whole snapshot is swapped inside one transaction so a
// reader never observes a half-written state.
func SaveToDatabase(dsn string, entries map[string][]*timetable.ScheduleEntry, groups []string) error {
	if dsn == "" {
		return fmt.Errorf("database connection string can not be empty")
	}

	conn, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(createEntriesTable); err != nil {
		return fmt.Errorf("failed to create entries table: %w", err)
	}
	if _, err := conn.Exec(createMetadataTable); err != nil {
		return fmt.Errorf("failed to create metadata table: %w", err)
	}

	tx, err := conn.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(deleteEntries); err != nil {
		return fmt.Errorf("failed to clear previous snapshot: %w", err)
	}

	stmt, err := tx.Preparex(insertEntry)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Format(time.RFC3339)
	total := 0
	for _, g := range groups {
		for _, e := range entries[g] {
			if _, err := stmt.Exec(
				e.ID, e.Group, e.Day,
				e.TimeSlot.StartTime, e.TimeSlot.EndTime, e.TimeSlot.DurationMinutes,
				e.Course.CourseCode, e.Course.CourseName, e.Course.Instructor,
				e.Room, e.Course.Credits, e.EntryType, now,
			); err != nil {
				return fmt.Errorf("failed to insert entry %s: %w", e.ID, err)
			}
			total++
		}
	}

	if _, err := tx.Exec(upsertMetadata, "last_updated", now, now); err != nil {
		return fmt.Errorf("failed to update metadata: %w", err)
	}
	if _, err := tx.Exec(upsertMetadata, "total_entries", fmt.Sprintf("%d", total), now); err != nil {
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return tx.Commit()
}
