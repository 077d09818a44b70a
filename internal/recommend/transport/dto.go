package transport

import "vehicle_advisor_backend/internal/recommend/scoring"

// ScoreRequest carries the profile to rank the catalog against. All fields
// are optional; defaults apply to anything missing.
type ScoreRequest struct {
	BudgetMax      *float64           `json:"budget_max,omitempty" validate:"omitempty,min=0"`
	BudgetFlexible bool               `json:"budget_flexible,omitempty"`
	Passengers     *int               `json:"passengers,omitempty" validate:"omitempty,min=1,max=12"`
	CommuteMiles   *int               `json:"commute_miles,omitempty" validate:"omitempty,min=0,max=500"`
	HasChildren    *bool              `json:"has_children,omitempty"`
	Terrain        string             `json:"terrain,omitempty" validate:"omitempty,oneof=city highway offroad rough_city mixed"`
	FeaturesWanted []string           `json:"features_wanted,omitempty" validate:"omitempty,max=20,dive,max=50"`
	Priorities     []string           `json:"priorities,omitempty" validate:"omitempty,max=8,dive,max=50"`
	TopPriority    string             `json:"top_priority,omitempty" validate:"omitempty,max=50"`
	Weights        map[string]float64 `json:"weights,omitempty"`
}

// Profile converts the request into an engine profile. When priorities are
// given without an explicit weight override, they are turned into a
// normalized weight vector.
func (r ScoreRequest) Profile() scoring.UserProfile {
	weights := r.Weights
	if weights == nil && len(r.Priorities) > 0 {
		top := r.TopPriority
		if top == "" {
			top = r.Priorities[0]
		}
		weights = scoring.PrioritiesToWeights(r.Priorities, top)
	}

	return scoring.UserProfile{
		BudgetMax:      r.BudgetMax,
		BudgetFlexible: r.BudgetFlexible,
		Passengers:     r.Passengers,
		CommuteMiles:   r.CommuteMiles,
		HasChildren:    r.HasChildren,
		Terrain:        r.Terrain,
		FeaturesWanted: r.FeaturesWanted,
		Priorities:     r.Priorities,
		Weights:        weights,
	}
}

// ScoreResponse is the full ranking plus the effective profile echoed back.
type ScoreResponse struct {
	UserProfile scoring.UserProfile `json:"user_profile"`
	ScoredCars  []scoring.ScoredCar `json:"scored_cars"`
	Top3        []scoring.ScoredCar `json:"top_3"`
}
