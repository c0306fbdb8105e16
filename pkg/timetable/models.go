package timetable

// TimeSlot is the time window of a single class, using zero-padded 24-hour
// "HH:MM" strings as published in the JSON files.
type TimeSlot struct {
	StartTime       string `json:"start_time" validate:"required,hhmm"`
	EndTime         string `json:"end_time" validate:"required,hhmm"`
	DurationMinutes int    `json:"duration_minutes" validate:"gt=0"`
}

// CourseRef is the course info embedded in each schedule entry. It is
// denormalized from the course catalog by the generator; the viewer never
// reconciles the two.
type CourseRef struct {
	CourseCode string `json:"course_code" validate:"required"`
	CourseName string `json:"course_name" validate:"required"`
	Instructor string `json:"instructor"`
	Credits    int    `json:"credits"`
}

// ScheduleEntry is one scheduled class occurrence for a group.
type ScheduleEntry struct {
	ID        string    `json:"id"`
	Group     string    `json:"group" validate:"required"`
	Day       string    `json:"day" validate:"required,weekday"`
	TimeSlot  TimeSlot  `json:"time_slot"`
	Course    CourseRef `json:"course"`
	Room      string    `json:"room"`
	EntryType string    `json:"entry_type"`
}

// GroupTimetable is the per-group dataset (group_{id}.json).
type GroupTimetable struct {
	Group        string          `json:"group"`
	Entries      []ScheduleEntry `json:"entries"`
	TotalClasses int             `json:"total_classes"`
}

// TimetableResponse is the all-groups aggregate (timetable.json), used only
// by cross-group search.
type TimetableResponse struct {
	Success     bool             `json:"success"`
	Data        []GroupTimetable `json:"data"`
	TotalGroups int              `json:"total_groups"`
	LastUpdated string           `json:"last_updated"`
}

// CourseSlot is one pre-joined schedule row on a catalog card. Coarser than
// ScheduleEntry: the time window is a single "HH:MM - HH:MM" string.
type CourseSlot struct {
	Group string `json:"group"`
	Day   string `json:"day"`
	Time  string `json:"time"`
	Room  string `json:"room"`
	Type  string `json:"type"`
}

// Course is a catalog entry (courses.json), keyed by course code.
type Course struct {
	CourseCode string       `json:"course_code"`
	CourseName string       `json:"course_name"`
	Instructor string       `json:"instructor"`
	Credits    int          `json:"credits"`
	Groups     []string     `json:"groups"`
	Schedule   []CourseSlot `json:"schedule"`
}

// CoursesResponse wraps the catalog file.
type CoursesResponse struct {
	Courses []Course `json:"courses"`
}

// Metadata describes the published snapshot (metadata.json). Display only,
// never used in derivations.
type Metadata struct {
	LastUpdated  string   `json:"last_updated"`
	TotalGroups  int      `json:"total_groups"`
	TotalEntries int      `json:"total_entries"`
	Groups       []string `json:"groups"`
}
