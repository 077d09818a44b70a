// Package repository loads the vehicle catalog from its JSON source and
// serves it as an immutable in-memory store.
package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"vehicle_advisor_backend/internal/catalog/domain"
)

// Repository provides read access to the vehicle catalog.
type Repository interface {
	// All returns every vehicle in catalog order.
	All() []domain.Vehicle
	// ByID returns the vehicle with the given id.
	ByID(id string) (domain.Vehicle, bool)
	// Count returns the number of vehicles in the catalog.
	Count() int
}

type fileRepository struct {
	vehicles []domain.Vehicle
	byID     map[string]int
}

// NewFromFile loads the catalog from a JSON file. The catalog is read once;
// a load failure is fatal for the caller since no request can be served
// without it.
func NewFromFile(path string) (Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return NewFromJSON(data)
}

// NewFromJSON builds the catalog store from raw JSON bytes.
func NewFromJSON(data []byte) (Repository, error) {
	var vehicles []domain.Vehicle
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(vehicles) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	byID := make(map[string]int, len(vehicles))
	for i, v := range vehicles {
		if v.ID == "" {
			return nil, fmt.Errorf("catalog record %d has no id", i)
		}
		if _, exists := byID[v.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog id %q", v.ID)
		}
		byID[v.ID] = i
	}

	return &fileRepository{vehicles: vehicles, byID: byID}, nil
}

func (r *fileRepository) All() []domain.Vehicle {
	// Copy the slice header contents so callers cannot reorder the catalog.
	out := make([]domain.Vehicle, len(r.vehicles))
	copy(out, r.vehicles)
	return out
}

func (r *fileRepository) ByID(id string) (domain.Vehicle, bool) {
	i, ok := r.byID[id]
	if !ok {
		return domain.Vehicle{}, false
	}
	return r.vehicles[i], true
}

func (r *fileRepository) Count() int {
	return len(r.vehicles)
}
