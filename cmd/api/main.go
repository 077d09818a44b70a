package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"vehicle_advisor_backend/internal/catalog"
	"vehicle_advisor_backend/internal/catalog/repository"
	"vehicle_advisor_backend/internal/chat"
	"vehicle_advisor_backend/internal/events"
	"vehicle_advisor_backend/internal/finance"
	apphttp "vehicle_advisor_backend/internal/http"
	"vehicle_advisor_backend/internal/http/router"
	"vehicle_advisor_backend/internal/recommend"
	"vehicle_advisor_backend/platform/config"
	"vehicle_advisor_backend/platform/logger"
	"vehicle_advisor_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	repo, err := repository.NewFromFile(cfg.GetCatalogPath())
	if err != nil {
		log.Error("failed to load vehicle catalog", "error", err, "path", cfg.GetCatalogPath())
		panic("failed to load vehicle catalog: " + err.Error())
	}
	log.Info("vehicle catalog loaded", "vehicles", repo.Count())

	eventBus := events.NewInMemoryBus(log)
	val := validator.New()

	// ========================================================================
	// Domain Modules
	// ========================================================================

	catalogModule := catalog.NewModule(repo, val, log)
	recommendModule := recommend.NewModule(repo, catalogModule.Service(), val, log)
	financeModule := finance.NewModule(catalogModule.Service(), val)

	chatModule, err := chat.NewModule(cfg, catalogModule.Service(), recommendModule.Engine(), eventBus, val, log)
	if err != nil {
		log.Error("failed to initialize chat module", "error", err)
		panic("failed to initialize chat module: " + err.Error())
	}

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			catalogModule,
			recommendModule,
			financeModule,
			chatModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
