// Package chat provides the conversational advisor bounded context
// module: profile extraction, agent orchestration, and suggestion
// persistence.
package chat

import (
	"fmt"

	catalogservice "vehicle_advisor_backend/internal/catalog/service"
	"vehicle_advisor_backend/internal/chat/agent"
	"vehicle_advisor_backend/internal/chat/handler"
	"vehicle_advisor_backend/internal/chat/service"
	"vehicle_advisor_backend/internal/chat/suggestions"
	"vehicle_advisor_backend/internal/events"
	apphttp "vehicle_advisor_backend/internal/http"
	"vehicle_advisor_backend/internal/recommend/scoring"
	"vehicle_advisor_backend/platform/config"
	"vehicle_advisor_backend/platform/logger"
	"vehicle_advisor_backend/platform/validator"
)

// Module is the chat bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the chat module. The ADK agent is
// only constructed when a usable API key is configured; without one the
// service answers with the deterministic fallback.
func NewModule(cfg config.ChatConfig, catalog *catalogservice.Service, engine *scoring.Engine, bus events.Bus, val *validator.Validator, log *logger.Logger) (*Module, error) {
	store, err := suggestions.NewStore(cfg.GetSuggestionsPath(), log)
	if err != nil {
		return nil, fmt.Errorf("suggestions store: %w", err)
	}
	bus.Subscribe(events.RecommendationsGeneratedName, store)

	var advisor *agent.VehicleAdvisor
	if cfg.IsAgentEnabled() {
		advisor, err = agent.NewVehicleAdvisor(cfg, &agent.ToolDependencies{
			Catalog: catalog,
			Engine:  engine,
		}, log)
		if err != nil {
			return nil, fmt.Errorf("vehicle advisor: %w", err)
		}
	} else {
		log.Warn("no model API key configured, chat falls back to deterministic responses")
	}

	svc := service.New(advisor, engine, catalog, bus, log)
	h := handler.New(svc, store, cfg, val)

	return &Module{handler: h}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "chat"
}

// RegisterRoutes mounts chat and orchestrator routes on the provided
// router context. The conversational POST routes share the per-IP rate
// limiter because each turn can fan out into model calls.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	limited := ctx.RateLimiter.RateLimit()

	chat := ctx.API.Group("/chat")
	chat.POST("", limited, m.handler.Chat)
	chat.GET("/suggestions/:sessionId", m.handler.Suggestions)

	orch := ctx.API.Group("/orchestrator")
	orch.POST("/chat", limited, m.handler.OrchestratorChat)
	orch.POST("/chat/stream", limited, m.handler.OrchestratorChatStream)
	orch.GET("/tools", m.handler.Tools)
	orch.GET("/status", m.handler.Status)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
