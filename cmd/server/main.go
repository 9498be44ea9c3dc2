package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/adapter/http/fiber/handlers"
	"github.com/drivelink/drivelink/internal/adapter/http/fiber/middleware"
	"github.com/drivelink/drivelink/internal/adapter/storage/memory"
	"github.com/drivelink/drivelink/internal/observability/telemetry"
	"github.com/drivelink/drivelink/internal/service/felix"
	"github.com/drivelink/drivelink/internal/service/fines"
	"github.com/drivelink/drivelink/internal/service/garage"
	"github.com/drivelink/drivelink/internal/service/parking"
	"github.com/drivelink/drivelink/internal/service/servicing"
	"github.com/drivelink/drivelink/pkg/config"
)

const (
	serviceName    = "drivelink"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting Drivelink",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Initialize Tracing (optional)
	if cfg.Tracing.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName, serviceVersion, cfg.Tracing.JaegerEndpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 4. Initialize the in-memory Store
	store := memory.NewStore(logger)
	if cfg.Seed.Demo {
		store.SeedDemo()
	}

	// 5. Initialize Repositories
	userRepo := memory.NewUserRepository(store)
	vehicleRepo := memory.NewVehicleRepository(store)
	driverRepo := memory.NewDriverRepository(store)
	sessionRepo := memory.NewParkingSessionRepository(store)
	carParkRepo := memory.NewCarParkRepository(store)
	recordRepo := memory.NewServiceRecordRepository(store)
	fineRepo := memory.NewFineRepository(store)

	// 6. Initialize Services (Business Logic Layer)
	garageService := garage.NewService(userRepo, vehicleRepo, driverRepo, logger)
	parkingService := parking.NewService(sessionRepo, carParkRepo, logger)
	servicingService := servicing.NewService(recordRepo, logger)
	fineService := fines.NewService(fineRepo, logger)
	felixService := felix.NewService(felix.Options{
		MinDelay: cfg.Assistant.MinDelay,
		MaxDelay: cfg.Assistant.MaxDelay,
	}, logger)

	// 7. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.RequestID())
	if cfg.CORS.Enabled {
		app.Use(middleware.NewCORS(cfg.CORS))
	}
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.CircuitBreaker(logger))
	}

	// Health Check Endpoints
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		// The store is in-process, so readiness equals liveness
		return c.SendString("Ready")
	})

	// Metrics endpoint for Prometheus
	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	// API Routes
	api := app.Group("/api")
	handlers.RegisterRoutes(api,
		handlers.NewGarageHandler(garageService, logger),
		handlers.NewParkingHandler(parkingService, logger),
		handlers.NewServicingHandler(servicingService, logger),
		handlers.NewFineHandler(fineService, logger),
		handlers.NewFelixHandler(felixService, logger),
	)

	// 8. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 9. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
