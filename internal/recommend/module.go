// Package recommend provides the catalog scoring bounded context module.
package recommend

import (
	"vehicle_advisor_backend/internal/catalog/repository"
	catalogservice "vehicle_advisor_backend/internal/catalog/service"
	apphttp "vehicle_advisor_backend/internal/http"
	"vehicle_advisor_backend/internal/recommend/handler"
	"vehicle_advisor_backend/internal/recommend/scoring"
	"vehicle_advisor_backend/platform/logger"
	"vehicle_advisor_backend/platform/validator"
)

// Module is the scoring bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	engine  *scoring.Engine
}

// NewModule creates and initializes the scoring module.
func NewModule(repo repository.Repository, catalog *catalogservice.Service, val *validator.Validator, log *logger.Logger) *Module {
	engine := scoring.NewEngine(repo, log)
	h := handler.New(engine, catalog, val)

	return &Module{
		handler: h,
		engine:  engine,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "recommend"
}

// Engine returns the scoring engine for use by other modules.
func (m *Module) Engine() *scoring.Engine {
	return m.engine
}

// RegisterRoutes mounts scoring routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/scoring")
	group.GET("/cars", m.handler.ListCars)
	group.POST("/score", m.handler.ScoreCars)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
