package suggestions

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"vehicle_advisor_backend/internal/events"
	"vehicle_advisor_backend/platform/logger"
)

func TestStore_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "suggestions.json")

	store, err := NewStore(path, logger.New("test"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save("session-1", []string{"rav4-hybrid-2024", "camry-2024"}, "deterministic_fallback"); err != nil {
		t.Fatalf("save: %v", err)
	}

	reloaded, err := NewStore(path, logger.New("test"))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	entry, ok := reloaded.Get("session-1")
	if !ok {
		t.Fatalf("expected session-1 after reload")
	}
	if !reflect.DeepEqual(entry.VehicleIDs, []string{"rav4-hybrid-2024", "camry-2024"}) {
		t.Fatalf("unexpected vehicle ids %v", entry.VehicleIDs)
	}
	if entry.Method != "deterministic_fallback" {
		t.Fatalf("unexpected method %s", entry.Method)
	}
}

func TestStore_SaveOverwritesSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suggestions.json")
	store, err := NewStore(path, logger.New("test"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Save("s", []string{"a"}, "nemotron_agent"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save("s", []string{"b", "c"}, "nemotron_agent"); err != nil {
		t.Fatalf("save: %v", err)
	}

	entry, _ := store.Get("s")
	if !reflect.DeepEqual(entry.VehicleIDs, []string{"b", "c"}) {
		t.Fatalf("expected latest save to win, got %v", entry.VehicleIDs)
	}
	if len(store.All()) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(store.All()))
	}
}

func TestStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suggestions.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	store, err := NewStore(path, logger.New("test"))
	if err != nil {
		t.Fatalf("corrupt file must not fail startup: %v", err)
	}
	if len(store.All()) != 0 {
		t.Fatalf("expected empty store, got %d entries", len(store.All()))
	}
}

func TestStore_HandlesRecommendationEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suggestions.json")
	store, err := NewStore(path, logger.New("test"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	event := events.RecommendationsGenerated{
		BaseEvent:  events.NewBaseEvent(),
		SessionID:  "session-9",
		VehicleIDs: []string{"prius-2024"},
		Method:     "nemotron_agent",
	}
	if err := store.Handle(context.Background(), event); err != nil {
		t.Fatalf("handle: %v", err)
	}

	entry, ok := store.Get("session-9")
	if !ok || entry.VehicleIDs[0] != "prius-2024" {
		t.Fatalf("expected event to persist suggestions, got %v %v", entry, ok)
	}
}
