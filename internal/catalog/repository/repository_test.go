package repository

import (
	"strings"
	"testing"
)

func TestNewFromJSON_RejectsEmptyCatalog(t *testing.T) {
	if _, err := NewFromJSON([]byte(`[]`)); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
}

func TestNewFromJSON_RejectsMissingID(t *testing.T) {
	_, err := NewFromJSON([]byte(`[{"make": "Toyota", "model": "Camry"}]`))
	if err == nil || !strings.Contains(err.Error(), "no id") {
		t.Fatalf("expected missing id error, got %v", err)
	}
}

func TestNewFromJSON_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewFromJSON([]byte(`[
		{"id": "camry-2024", "make": "Toyota", "model": "Camry"},
		{"id": "camry-2024", "make": "Toyota", "model": "Camry"}
	]`))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestAll_ReturnsACopy(t *testing.T) {
	repo, err := NewFromJSON([]byte(`[
		{"id": "a", "make": "Toyota", "model": "Corolla"},
		{"id": "b", "make": "Toyota", "model": "Camry"}
	]`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	first := repo.All()
	first[0], first[1] = first[1], first[0]

	second := repo.All()
	if second[0].ID != "a" {
		t.Fatalf("mutating the returned slice must not reorder the catalog")
	}
}

func TestByID(t *testing.T) {
	repo, err := NewFromJSON([]byte(`[{"id": "a", "make": "Toyota", "model": "Corolla"}]`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if v, ok := repo.ByID("a"); !ok || v.Model != "Corolla" {
		t.Fatalf("expected to find vehicle a, got %v %v", v, ok)
	}
	if _, ok := repo.ByID("missing"); ok {
		t.Fatalf("expected miss for unknown id")
	}
	if repo.Count() != 1 {
		t.Fatalf("expected count 1, got %d", repo.Count())
	}
}
