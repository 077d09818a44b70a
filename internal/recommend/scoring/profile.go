package scoring

// UserProfile describes what the user is looking for. Every field is
// optional; extraction upstream is best effort and the engine substitutes
// conservative defaults for anything missing.
type UserProfile struct {
	BudgetMax      *float64           `json:"budget_max,omitempty"`
	BudgetFlexible bool               `json:"budget_flexible,omitempty"`
	Passengers     *int               `json:"passengers,omitempty"`
	CommuteMiles   *int               `json:"commute_miles,omitempty"`
	HasChildren    *bool              `json:"has_children,omitempty"`
	Terrain        string             `json:"terrain,omitempty"`
	FeaturesWanted []string           `json:"features_wanted,omitempty"`
	Priorities     []string           `json:"priorities,omitempty"`
	Weights        map[string]float64 `json:"weights,omitempty"`
}

// Defaults used when the profile is silent on a field.
const (
	defaultBudgetMax  = 50000.0
	defaultPassengers = 5
	defaultTerrain    = "mixed"
)

func (p UserProfile) budgetMax() float64 {
	if p.BudgetMax != nil && *p.BudgetMax > 0 {
		return *p.BudgetMax
	}
	return defaultBudgetMax
}

func (p UserProfile) passengers() int {
	if p.Passengers != nil && *p.Passengers > 0 {
		return *p.Passengers
	}
	return defaultPassengers
}

func (p UserProfile) commuteMiles() int {
	if p.CommuteMiles != nil && *p.CommuteMiles > 0 {
		return *p.CommuteMiles
	}
	return 0
}

func (p UserProfile) hasChildren() bool {
	return p.HasChildren != nil && *p.HasChildren
}

func (p UserProfile) terrain() string {
	if p.Terrain != "" {
		return p.Terrain
	}
	return defaultTerrain
}

func (p UserProfile) wantsFeature(tag string) bool {
	for _, f := range p.FeaturesWanted {
		if f == tag {
			return true
		}
	}
	return false
}

func (p UserProfile) hasPriority(tag string) bool {
	for _, pr := range p.Priorities {
		if pr == tag {
			return true
		}
	}
	return false
}
