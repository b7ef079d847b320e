package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"afspraaksms/internal/models"
)

// FileStore keeps sent-reminder records in a single JSON file, keyed
// "eventID|label". Suited to deployments without a database; volumes
// are small and the file only ever grows.
type FileStore struct {
	path string

	mu      sync.Mutex
	records map[string]time.Time
}

// NewFileStore opens (or creates) the store file at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		records: make(map[string]time.Time),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read reminder store file: %w", err)
	}

	if err := json.Unmarshal(data, &s.records); err != nil {
		return nil, fmt.Errorf("failed to parse reminder store file: %w", err)
	}
	return s, nil
}

func recordKey(eventID string, label models.Label) string {
	return eventID + "|" + string(label)
}

func (s *FileStore) HasSent(eventID string, label models.Label) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.records[recordKey(eventID, label)]
	return ok, nil
}

// RecordSent adds the pair and rewrites the file. Recording an
// already-present pair is a no-op, so overlapping passes cannot
// double-record.
func (s *FileStore) RecordSent(eventID string, label models.Label, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := recordKey(eventID, label)
	if _, ok := s.records[key]; ok {
		return nil
	}
	s.records[key] = sentAt

	if err := s.flushLocked(); err != nil {
		delete(s.records, key)
		return err
	}
	return nil
}

// flushLocked writes the full record map to a temp file and renames it
// into place, so a crash mid-write cannot corrupt the store.
func (s *FileStore) flushLocked() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reminder records: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write reminder store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace reminder store file: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}

// DefaultFilePath returns the store location used when
// REMINDER_STORE_FILE is not set.
func DefaultFilePath() string {
	return filepath.Join(".", "sent_reminders.json")
}
