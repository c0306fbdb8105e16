package timetable

import "sync"

// Store is the single state container behind the interactive views. Each
// view switch begins a new request token; a fetch result is applied only
// while its token is still the current one, so a slow superseded response
// can never overwrite fresher state.
type Store struct {
	mu       sync.Mutex
	token    uint64
	group    *GroupTimetable
	results  []SearchResult
	lastErr  error
	hasQuery bool
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Begin invalidates all outstanding requests and returns the token for the
// next one.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token++
	return s.token
}

// ApplyGroup installs a fetched group dataset if token is still current.
// Reports whether the result was accepted.
func (s *Store) ApplyGroup(token uint64, gt *GroupTimetable, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		return false
	}
	s.group = gt
	s.lastErr = err
	return true
}

// ApplySearch installs search results if token is still current.
func (s *Store) ApplySearch(token uint64, results []SearchResult) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		return false
	}
	s.results = results
	s.hasQuery = true
	return true
}

// ClearSearch wipes displayed results immediately, used when leaving the
// search view. Also bumps the token so in-flight searches are dropped.
func (s *Store) ClearSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token++
	s.results = nil
	s.hasQuery = false
}

// Group returns the current group dataset and the error, if any, from the
// fetch that produced it.
func (s *Store) Group() (*GroupTimetable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.group, s.lastErr
}

// SearchResults returns the current results and whether any query has
// produced them (distinguishing "no query yet" from zero matches).
func (s *Store) SearchResults() ([]SearchResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results, s.hasQuery
}
