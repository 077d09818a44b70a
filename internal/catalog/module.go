// Package catalog provides the vehicle catalog bounded context module.
package catalog

import (
	"vehicle_advisor_backend/internal/catalog/handler"
	"vehicle_advisor_backend/internal/catalog/repository"
	"vehicle_advisor_backend/internal/catalog/service"
	apphttp "vehicle_advisor_backend/internal/http"
	"vehicle_advisor_backend/platform/logger"
	"vehicle_advisor_backend/platform/validator"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the catalog module around an already
// loaded repository.
func NewModule(repo repository.Repository, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// Service returns the service layer for use by other modules.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the catalog store for direct read access.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts catalog routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	vehicles := ctx.API.Group("/vehicles")
	vehicles.GET("", m.handler.ListVehicles)
	vehicles.GET("/search", m.handler.SearchVehicles)
	vehicles.GET("/stats", m.handler.CatalogStats)
	vehicles.GET("/:id", m.handler.GetVehicleByID)
	vehicles.POST("/true-cost", m.handler.TrueCost)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
