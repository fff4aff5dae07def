package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"librisvc/internal/config"
	handlers "librisvc/internal/http/handler"
	"librisvc/internal/http/middleware"
	"librisvc/internal/otel"
	"librisvc/internal/repository/memory"
	"librisvc/internal/seed"
	"librisvc/internal/service"
	"librisvc/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(shutdownCtx)
	}()

	// Object storage is optional; without it digital documents can only
	// carry external URLs.
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}

	// All domain state is in-memory and resets on restart.
	docRepo := memory.NewDocumentMemory()
	brwRepo := memory.NewBorrowingMemory()
	usrRepo := memory.NewUserMemory()

	inventorySvc := service.NewInventoryService(docRepo, objStore)
	userSvc := service.NewUserService(usrRepo)
	borrowingSvc := service.NewBorrowingService(brwRepo, inventorySvc, userSvc, cfg.FeePerDay)

	if cfg.SeedDemo {
		if err := seed.Apply(ctx, inventorySvc, userSvc, borrowingSvc); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		Inventory:      inventorySvc,
		Borrowings:     borrowingSvc,
		Users:          userSvc,
		StorageEnabled: objStore != nil,
		Metrics:        registry,
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
