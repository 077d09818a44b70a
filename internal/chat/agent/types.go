package agent

import (
	catalogtransport "vehicle_advisor_backend/internal/catalog/transport"
	"vehicle_advisor_backend/internal/finance/affordability"
	"vehicle_advisor_backend/internal/recommend/scoring"
)

// Tool input/output types. Field names form the JSON schema the model
// sees, so they stay close to the conversational vocabulary.

// FindCarsInput filters the catalog.
type FindCarsInput struct {
	VehicleType string  `json:"vehicle_type,omitempty"`
	BodyStyle   string  `json:"body_style,omitempty"`
	FuelType    string  `json:"fuel_type,omitempty"`
	MaxPrice    float64 `json:"max_price,omitempty"`
	MinMPG      int     `json:"min_mpg,omitempty"`
	MinSeating  int     `json:"min_seating,omitempty"`
	Year        int     `json:"year,omitempty"`
}

type FindCarsOutput struct {
	Vehicles []catalogtransport.VehicleResponse `json:"vehicles"`
	Count    int                                `json:"count"`
}

// GetVehicleDetailsInput looks up one vehicle.
type GetVehicleDetailsInput struct {
	VehicleID string `json:"vehicle_id"`
}

type GetVehicleDetailsOutput struct {
	Found   bool                              `json:"found"`
	Vehicle *catalogtransport.VehicleResponse `json:"vehicle,omitempty"`
	Message string                            `json:"message,omitempty"`
}

// CalculateTrueCostInput estimates ownership cost for a commute.
type CalculateTrueCostInput struct {
	VehicleID    string  `json:"vehicle_id"`
	CommuteMiles int     `json:"commute_miles"`
	GasPrice     float64 `json:"gas_price,omitempty"`
}

type CalculateTrueCostOutput struct {
	Found   bool                               `json:"found"`
	Cost    *catalogtransport.TrueCostResponse `json:"cost,omitempty"`
	Message string                             `json:"message,omitempty"`
}

// ScoreCarsInput ranks the catalog against a profile.
type ScoreCarsInput struct {
	BudgetMax      float64            `json:"budget_max,omitempty"`
	Passengers     int                `json:"passengers,omitempty"`
	CommuteMiles   int                `json:"commute_miles,omitempty"`
	HasChildren    bool               `json:"has_children,omitempty"`
	Terrain        string             `json:"terrain,omitempty"`
	FeaturesWanted []string           `json:"features_wanted,omitempty"`
	Priorities     []string           `json:"priorities,omitempty"`
	TopPriority    string             `json:"top_priority,omitempty"`
	Weights        map[string]float64 `json:"weights,omitempty"`
}

type ScoreCarsOutput struct {
	ScoredCars []scoring.ScoredCar `json:"scored_cars"`
	Top3       []scoring.ScoredCar `json:"top_3"`
}

// EvaluateAffordabilityInput checks financing fit for one vehicle.
type EvaluateAffordabilityInput struct {
	VehicleID        string                         `json:"vehicle_id"`
	FinancialProfile affordability.FinancialProfile `json:"financial_profile"`
}

type EvaluateAffordabilityOutput struct {
	Found   bool                  `json:"found"`
	Result  *affordability.Result `json:"result,omitempty"`
	Message string                `json:"message,omitempty"`
}

// ToolInfo describes a tool for the orchestrator status endpoints.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
