package transport

import "vehicle_advisor_backend/internal/finance/affordability"

// EvaluateAffordabilityRequest pairs a catalog vehicle with a financial
// profile. Profile fields are optional and degrade to defaults.
type EvaluateAffordabilityRequest struct {
	VehicleID string                         `json:"vehicle_id" validate:"required"`
	Profile   affordability.FinancialProfile `json:"financial_profile"`
}

// EvaluateAffordabilityResponse wraps the evaluation with the vehicle it
// was computed for.
type EvaluateAffordabilityResponse struct {
	VehicleID   string               `json:"vehicle_id"`
	VehicleName string               `json:"vehicle_name"`
	Price       float64              `json:"price"`
	Result      affordability.Result `json:"result"`
}
