package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vehicle_advisor_backend/internal/catalog/service"
	"vehicle_advisor_backend/internal/catalog/transport"
	"vehicle_advisor_backend/platform/httpkit"
	"vehicle_advisor_backend/platform/validator"
)

// Handler handles HTTP requests for the vehicle catalog.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new catalog handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// ListVehicles returns a page of the catalog.
// GET /api/vehicles
func (h *Handler) ListVehicles(c *gin.Context) {
	var req transport.ListVehiclesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.List(req))
}

// SearchVehicles filters the catalog.
// GET /api/vehicles/search
func (h *Handler) SearchVehicles(c *gin.Context) {
	var req transport.SearchVehiclesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.Find(req))
}

// CatalogStats summarizes the loaded catalog.
// GET /api/vehicles/stats
func (h *Handler) CatalogStats(c *gin.Context) {
	httpkit.OK(c, h.svc.Stats())
}

// GetVehicleByID returns a single vehicle.
// GET /api/vehicles/:id
func (h *Handler) GetVehicleByID(c *gin.Context) {
	v, err := h.svc.ByID(c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, v)
}

// TrueCost estimates five year ownership cost for a commute.
// POST /api/vehicles/true-cost
func (h *Handler) TrueCost(c *gin.Context) {
	var req transport.TrueCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.TrueCost(req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
