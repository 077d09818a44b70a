package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogservice "vehicle_advisor_backend/internal/catalog/service"
	"vehicle_advisor_backend/internal/finance/affordability"
	"vehicle_advisor_backend/internal/finance/transport"
	"vehicle_advisor_backend/platform/httpkit"
	"vehicle_advisor_backend/platform/validator"
)

// Handler handles HTTP requests for affordability evaluation.
type Handler struct {
	catalog *catalogservice.Service
	val     *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new finance handler.
func New(catalog *catalogservice.Service, val *validator.Validator) *Handler {
	return &Handler{catalog: catalog, val: val}
}

// EvaluateAffordability evaluates a vehicle against a financial profile.
// POST /api/finance/affordability
func (h *Handler) EvaluateAffordability(c *gin.Context) {
	var req transport.EvaluateAffordabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	vehicle, err := h.catalog.ByID(req.VehicleID)
	if httpkit.HandleError(c, err) {
		return
	}

	result := affordability.Evaluate(vehicle, req.Profile)
	httpkit.OK(c, transport.EvaluateAffordabilityResponse{
		VehicleID:   vehicle.ID,
		VehicleName: vehicle.DisplayName(),
		Price:       vehicle.Price(),
		Result:      result,
	})
}
