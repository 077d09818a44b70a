package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogservice "vehicle_advisor_backend/internal/catalog/service"
	"vehicle_advisor_backend/internal/recommend/scoring"
	"vehicle_advisor_backend/internal/recommend/transport"
	"vehicle_advisor_backend/platform/httpkit"
	"vehicle_advisor_backend/platform/validator"
)

// Handler handles HTTP requests for catalog scoring.
type Handler struct {
	engine  *scoring.Engine
	catalog *catalogservice.Service
	val     *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new scoring handler.
func New(engine *scoring.Engine, catalog *catalogservice.Service, val *validator.Validator) *Handler {
	return &Handler{engine: engine, catalog: catalog, val: val}
}

// ListCars returns the raw catalog without filtering, for scoring clients.
// GET /api/scoring/cars
func (h *Handler) ListCars(c *gin.Context) {
	cars := h.catalog.All()
	httpkit.OK(c, gin.H{"cars": cars, "count": len(cars)})
}

// ScoreCars ranks the catalog against the supplied profile.
// POST /api/scoring/score
func (h *Handler) ScoreCars(c *gin.Context) {
	var req transport.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	profile := req.Profile()
	scored := h.engine.ScoreCarsForUser(profile)

	top := scored
	if len(top) > 3 {
		top = top[:3]
	}

	httpkit.OK(c, transport.ScoreResponse{
		UserProfile: profile,
		ScoredCars:  scored,
		Top3:        top,
	})
}
