package timetable

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// ErrNoQuery distinguishes "nothing was asked" from a query with zero
// matches. Blank and whitespace-only queries both produce it.
var ErrNoQuery = errors.New("empty search query")

// SearchResult is a matched entry tagged with the group it came from.
type SearchResult struct {
	Group string
	Entry ScheduleEntry
}

// Search scans the aggregate dataset for entries whose course name,
// instructor, room or course code contains the query, case-insensitively.
// When groupFilter is non-empty, only the matching group's dataset is
// scanned (compared case-insensitively). Results keep dataset order, then
// entry order; there is no relevance ranking.
func Search(agg *TimetableResponse, query, groupFilter string) ([]SearchResult, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, ErrNoQuery
	}
	if agg == nil {
		return nil, nil
	}

	var results []SearchResult
	for _, gt := range agg.Data {
		if groupFilter != "" && !strings.EqualFold(gt.Group, groupFilter) {
			continue
		}
		for _, e := range gt.Entries {
			if entryMatches(e, q) {
				results = append(results, SearchResult{Group: gt.Group, Entry: e})
			}
		}
	}
	return results, nil
}

func entryMatches(e ScheduleEntry, loweredQuery string) bool {
	fields := []string{
		strings.ToLower(e.Course.CourseName),
		strings.ToLower(e.Course.Instructor),
		strings.ToLower(e.Room),
		strings.ToLower(e.Course.CourseCode),
	}
	for _, f := range fields {
		if strings.Contains(f, loweredQuery) {
			return true
		}
	}
	return false
}

// DebounceDelay is the quiet period a query must survive before the search
// actually runs.
const DebounceDelay = 300 * time.Millisecond

// Debouncer serializes keystroke-driven searches: every Trigger restarts the
// timer, so only the last pending query executes. Cancel drops any pending
// query, so stale results can never surface after leaving the search view.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending uint64
}

// NewDebouncer returns a Debouncer with the standard delay.
func NewDebouncer() *Debouncer {
	return &Debouncer{delay: DebounceDelay}
}

// Trigger schedules fn to run after the quiet period, replacing any search
// still waiting. fn runs on the timer goroutine. A pending fn that is
// superseded by a newer Trigger or dropped by Cancel never runs at all, so
// a caller that blocks until fn completes must wait before issuing the next
// Trigger or Cancel.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending++
	id := d.pending

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stale := id != d.pending
		d.mu.Unlock()
		if !stale {
			fn()
		}
	})
}

// Cancel discards whatever is pending. Safe to call with nothing scheduled.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending++
}
