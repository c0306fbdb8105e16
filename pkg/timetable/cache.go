package timetable

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// cacheDuration determines how long a fetched dataset is kept before the
// client goes back to the network. The publisher regenerates roughly daily.
const cacheDuration = 6 * time.Hour

// cacheEntry wraps a cached document with its fetch time.
type cacheEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Document  json.RawMessage `json:"document"`
}

func getCachePath(file string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".timetable_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, file), nil
}

// readCache loads an unexpired cached document into out, reporting whether
// it succeeded. Any failure (missing file, bad JSON, expired) just means a
// network fetch happens instead.
func readCache(file string, out interface{}) bool {
	path, err := getCachePath(file)
	if err != nil {
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}

	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return false
	}

	if time.Since(entry.Timestamp) > cacheDuration {
		return false
	}

	return json.Unmarshal(entry.Document, out) == nil
}

// writeCache saves a fetched document to disk. Best effort; the viewer
// works identically without a cache.
func writeCache(file string, doc interface{}) {
	path, err := getCachePath(file)
	if err != nil {
		return
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return
	}

	entry := cacheEntry{
		Timestamp: time.Now(),
		Document:  raw,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
