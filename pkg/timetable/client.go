package timetable

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// defaultBaseURL points at the published data directory of the deployed
// site. Overridable per-client for self-hosted snapshots (and in tests).
var defaultBaseURL = "https://muneer320.github.io/Class-Timetable/data"

// Client fetches the published timetable JSON files.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// SkipCache forces a network fetch even when an unexpired disk cache
	// exists.
	SkipCache bool
}

// NewClient creates a client against the default published data location.
func NewClient() *Client {
	return NewClientWithBase(defaultBaseURL)
}

// NewClientWithBase creates a client against a custom base URL, e.g. a
// locally generated data directory served for testing.
func NewClientWithBase(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// getJSON fetches one published file and decodes it into out.
func (c *Client) getJSON(file string, out interface{}) error {
	url := fmt.Sprintf("%s/%s", c.baseURL, file)
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "class-timetable-cli/1.0 (https://github.com/Muneer320/Class-Timetable)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", file, err)
	}
	return nil
}

// FetchGroup retrieves the dataset for one group (identifier lowercased in
// the file name, e.g. "A" -> group_a.json). Results are cached on disk.
func (c *Client) FetchGroup(group string) (*GroupTimetable, error) {
	file := fmt.Sprintf("group_%s.json", strings.ToLower(group))

	if !c.SkipCache {
		var cached GroupTimetable
		if ok := readCache(file, &cached); ok {
			return &cached, nil
		}
	}

	var gt GroupTimetable
	if err := c.getJSON(file, &gt); err != nil {
		return nil, err
	}
	writeCache(file, &gt)
	return &gt, nil
}

// FetchTimetable retrieves the all-groups aggregate used by search.
func (c *Client) FetchTimetable() (*TimetableResponse, error) {
	if !c.SkipCache {
		var cached TimetableResponse
		if ok := readCache("timetable.json", &cached); ok {
			return &cached, nil
		}
	}

	var tr TimetableResponse
	if err := c.getJSON("timetable.json", &tr); err != nil {
		return nil, err
	}
	writeCache("timetable.json", &tr)
	return &tr, nil
}

// FetchCourses retrieves the course catalog.
func (c *Client) FetchCourses() (*CoursesResponse, error) {
	if !c.SkipCache {
		var cached CoursesResponse
		if ok := readCache("courses.json", &cached); ok {
			return &cached, nil
		}
	}

	var cr CoursesResponse
	if err := c.getJSON("courses.json", &cr); err != nil {
		return nil, err
	}
	writeCache("courses.json", &cr)
	return &cr, nil
}

// FetchMetadata retrieves the snapshot metadata. Never cached: it is the
// cheapest file and the one used to see how fresh the published data is.
func (c *Client) FetchMetadata() (*Metadata, error) {
	var md Metadata
	if err := c.getJSON("metadata.json", &md); err != nil {
		return nil, err
	}
	return &md, nil
}
