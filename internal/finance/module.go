// Package finance provides the affordability bounded context module.
package finance

import (
	catalogservice "vehicle_advisor_backend/internal/catalog/service"
	"vehicle_advisor_backend/internal/finance/handler"
	apphttp "vehicle_advisor_backend/internal/http"
	"vehicle_advisor_backend/platform/validator"
)

// Module is the finance bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the finance module.
func NewModule(catalog *catalogservice.Service, val *validator.Validator) *Module {
	return &Module{
		handler: handler.New(catalog, val),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "finance"
}

// RegisterRoutes mounts finance routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.API.Group("/finance")
	group.POST("/affordability", m.handler.EvaluateAffordability)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
