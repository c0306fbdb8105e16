package generator

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/google/uuid"
)

// headerScanDepth limits how far down the sheet the header rows are searched.
const headerScanDepth = 6

// ParseGrid converts the raw spreadsheet grid into per-group schedule
// entries. The sheet layout: a header row naming the group sections
// ("Group A", "Group B", ...), below it a row of weekday names repeated per
// section, then time rows ("9:00 - 10:30 AM") whose cells hold class blocks.
// A class spanning several time rows appears once with its full window;
// blank continuation cells extend the previous block, LUNCH ends it.
func ParseGrid(rows [][]string, groups []string) (map[string][]*timetable.ScheduleEntry, error) {
	result := make(map[string][]*timetable.ScheduleEntry, len(groups))
	for _, g := range groups {
		result[g] = nil
	}
	if len(rows) < 3 {
		return result, fmt.Errorf("grid too small: %d rows", len(rows))
	}

	groupRow, dayRow := findHeaderRows(rows, groups)
	if groupRow < 0 || dayRow < 0 {
		return result, fmt.Errorf("could not locate group/day header rows")
	}

	groupCols := mapGroupDayColumns(rows, groupRow, dayRow, groups)

	type blockKey struct {
		group string
		day   string
		col   int
	}
	lastBlock := make(map[blockKey]*timetable.ScheduleEntry)

	extend := func(e *timetable.ScheduleEntry, endTime string) {
		e.TimeSlot.EndTime = endTime
		if start, err := minutesOf(e.TimeSlot.StartTime); err == nil {
			if end, err := minutesOf(endTime); err == nil {
				e.TimeSlot.DurationMinutes = end - start
			}
		}
	}

	for rowIdx := dayRow + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if len(row) == 0 {
			continue
		}

		timeInfo := strings.TrimSpace(row[0])
		upper := strings.ToUpper(timeInfo)
		if !strings.Contains(upper, "AM") && !strings.Contains(upper, "PM") {
			continue
		}

		rawStart, rawEnd, ok := splitTimeRange(timeInfo)
		if !ok {
			continue
		}
		startTime, endTime := cleanTimeRange(rawStart, rawEnd)

		for group, cols := range groupCols {
			for _, dc := range cols {
				key := blockKey{group: group, day: dc.day, col: dc.col}

				var text string
				if dc.col < len(row) {
					text = strings.TrimSpace(row[dc.col])
				}

				// Breaks end any ongoing block
				if strings.EqualFold(text, "LUNCH") {
					delete(lastBlock, key)
					continue
				}

				// Blank cell under a merged block extends the previous
				// entry to this row's end time
				if text == "" {
					if prev, ok := lastBlock[key]; ok {
						extend(prev, endTime)
					}
					continue
				}

				entry := parseClassInfo(text, group, dc.day, startTime, endTime)
				if entry == nil {
					if prev, ok := lastBlock[key]; ok {
						extend(prev, endTime)
					}
					continue
				}

				if prev, ok := lastBlock[key]; ok && prev.Course.CourseCode == entry.Course.CourseCode {
					// Same class continuing across rows
					extend(prev, endTime)
					continue
				}

				result[group] = append(result[group], entry)
				lastBlock[key] = entry
			}
		}
	}

	return result, nil
}

// dayColumn pairs a sheet column with the weekday it holds for one group.
type dayColumn struct {
	col int
	day string
}

// findHeaderRows locates the row naming the group sections and the row
// holding the weekday names.
func findHeaderRows(rows [][]string, groups []string) (groupRow, dayRow int) {
	groupRow, dayRow = -1, -1

	limit := headerScanDepth
	if len(rows) < limit {
		limit = len(rows)
	}

	for i := 0; i < limit; i++ {
		for _, cell := range rows[i] {
			for _, g := range groups {
				if strings.Contains(cell, "Group "+g) {
					groupRow = i
				}
			}
			for _, d := range timetable.Weekdays {
				if strings.TrimSpace(cell) == d {
					dayRow = i
				}
			}
		}
	}
	return groupRow, dayRow
}

// mapGroupDayColumns builds group -> ordered (column, weekday) pairs. Each
// group owns the columns from its header cell up to the next group's header
// (or the end of the day row); within that span the first unclaimed column
// matching each weekday wins.
func mapGroupDayColumns(rows [][]string, groupRow, dayRow int, groups []string) map[string][]dayColumn {
	groupHeader := rows[groupRow]
	dayHeader := rows[dayRow]

	type section struct {
		group string
		start int
	}
	var sections []section
	for col, cell := range groupHeader {
		for _, g := range groups {
			if strings.Contains(cell, "Group "+g) {
				sections = append(sections, section{group: g, start: col})
			}
		}
	}

	out := make(map[string][]dayColumn, len(sections))
	for i, sec := range sections {
		end := len(dayHeader)
		if i+1 < len(sections) {
			end = sections[i+1].start
		}

		used := make(map[int]bool)
		for _, d := range timetable.Weekdays {
			for col := sec.start; col < end && col < len(dayHeader); col++ {
				if used[col] {
					continue
				}
				if strings.TrimSpace(dayHeader[col]) == d {
					used[col] = true
					out[sec.group] = append(out[sec.group], dayColumn{col: col, day: d})
					break
				}
			}
		}
	}
	return out
}

// splitTimeRange splits "9:00 - 10:30 AM" into its raw halves.
func splitTimeRange(timeInfo string) (start, end string, ok bool) {
	parts := strings.SplitN(timeInfo, " - ", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// cleanTimeRange normalizes a 12-hour range to zero-padded 24-hour "HH:MM"
// strings. Sheet cells often carry the AM/PM suffix on only one endpoint
// ("11:30 - 12:30 PM"), so every consistent suffix combination is tried and
// the one yielding the shortest positive duration wins. On failure the raw
// strings are returned unchanged for the validator to reject downstream.
func cleanTimeRange(rawStart, rawEnd string) (string, string) {
	parse := func(raw, suffix string) (time.Time, error) {
		ts := strings.ToUpper(strings.TrimSpace(raw))
		if !strings.Contains(ts, "AM") && !strings.Contains(ts, "PM") {
			ts += suffix
		}
		return time.Parse("3:04PM", strings.ReplaceAll(ts, " ", ""))
	}

	suffixes := func(raw string) []string {
		up := strings.ToUpper(raw)
		if strings.Contains(up, "AM") || strings.Contains(up, "PM") {
			return []string{""}
		}
		return []string{"AM", "PM"}
	}

	bestDuration := time.Duration(-1)
	var bestStart, bestEnd time.Time

	for _, ss := range suffixes(rawStart) {
		for _, es := range suffixes(rawEnd) {
			s, err := parse(rawStart, ss)
			if err != nil {
				continue
			}
			e, err := parse(rawEnd, es)
			if err != nil {
				continue
			}
			if !e.After(s) {
				e = e.Add(24 * time.Hour)
			}
			d := e.Sub(s)
			if d > 0 && (bestDuration < 0 || d < bestDuration) {
				bestDuration = d
				bestStart, bestEnd = s, e
			}
		}
	}

	if bestDuration < 0 {
		return rawStart, rawEnd
	}
	return bestStart.Format("15:04"), bestEnd.Format("15:04")
}

// parseClassInfo builds a schedule entry from one class cell. Cell layout:
// course name on the first line, then "[Instructor]" and "[Room]" lines.
func parseClassInfo(text, group, day, startTime, endTime string) *timetable.ScheduleEntry {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(ln); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return nil
	}

	courseName := lines[0]
	instructor := "TBD"
	room := "TBD"
	if len(lines) > 1 {
		instructor = stripBrackets(lines[1])
	}
	if len(lines) > 2 {
		room = stripBrackets(lines[2])
	}

	start, err := minutesOf(startTime)
	if err != nil {
		return nil
	}
	end, err := minutesOf(endTime)
	if err != nil {
		return nil
	}

	entryType := "Lecture"
	displayName := courseName
	if strings.Contains(strings.ToLower(courseName), "lab") {
		entryType = "Lab"
		displayName = strings.TrimSpace(strings.ReplaceAll(courseName, "Lab", ""))
	}

	return &timetable.ScheduleEntry{
		ID:    uuid.NewString(),
		Group: group,
		Day:   day,
		TimeSlot: timetable.TimeSlot{
			StartTime:       startTime,
			EndTime:         endTime,
			DurationMinutes: end - start,
		},
		Course: timetable.CourseRef{
			CourseCode: courseCode(courseName),
			CourseName: displayName,
			Instructor: instructor,
			Credits:    3,
		},
		Room:      room,
		EntryType: entryType,
	}
}

func stripBrackets(s string) string {
	s = strings.ReplaceAll(s, "[", "")
	s = strings.ReplaceAll(s, "]", "")
	return strings.TrimSpace(s)
}

// courseCode derives a short code from the initials of the first three words
// of the course name, e.g. "Data Structures and Algorithms" -> "DSA".
func courseCode(courseName string) string {
	var code strings.Builder
	words := strings.Fields(courseName)
	if len(words) > 3 {
		words = words[:3]
	}
	for _, w := range words {
		// First rune, not first byte: course names may start with an
		// accented letter
		r, _ := utf8.DecodeRuneInString(w)
		code.WriteRune(unicode.ToUpper(r))
	}
	return code.String()
}

// minutesOf converts "HH:MM" to minutes since midnight.
func minutesOf(hhmm string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(hhmm))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
