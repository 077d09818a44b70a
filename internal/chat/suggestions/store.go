// Package suggestions persists the vehicles most recently recommended to
// each chat session in a flat JSON file, so the frontend can re-fetch the
// current suggestion set after a reload.
package suggestions

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"vehicle_advisor_backend/internal/events"
	"vehicle_advisor_backend/platform/logger"
)

// Entry records the suggestion set for one session.
type Entry struct {
	SessionID  string    `json:"session_id"`
	VehicleIDs []string  `json:"vehicle_ids"`
	Method     string    `json:"method"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Store is a mutex guarded flat-file store. Writes rewrite the whole
// file; the data set is one entry per active session and stays tiny.
type Store struct {
	mu      sync.Mutex
	path    string
	entries map[string]Entry
	log     *logger.Logger
}

// NewStore opens the store, loading existing entries when the file is
// present. A missing file is not an error.
func NewStore(path string, log *logger.Logger) (*Store, error) {
	s := &Store{
		path:    path,
		entries: make(map[string]Entry),
		log:     log,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		var entries []Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			// A corrupt file should not block startup; start fresh.
			log.Warn("suggestions file unreadable, starting empty", "path", path, "error", err.Error())
			return s, nil
		}
		for _, e := range entries {
			s.entries[e.SessionID] = e
		}
	}
	return s, nil
}

// Save records the suggestion set for a session and persists to disk.
func (s *Store) Save(sessionID string, vehicleIDs []string, method string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[sessionID] = Entry{
		SessionID:  sessionID,
		VehicleIDs: vehicleIDs,
		Method:     method,
		UpdatedAt:  time.Now(),
	}
	return s.flushLocked()
}

// Get returns the current suggestion set for a session.
func (s *Store) Get(sessionID string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[sessionID]
	return e, ok
}

// All returns every stored entry.
func (s *Store) All() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out
}

func (s *Store) flushLocked() error {
	entries := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Handle subscribes the store to recommendation events.
func (s *Store) Handle(ctx context.Context, event events.Event) error {
	e, ok := event.(events.RecommendationsGenerated)
	if !ok {
		return nil
	}
	return s.Save(e.SessionID, e.VehicleIDs, e.Method)
}
