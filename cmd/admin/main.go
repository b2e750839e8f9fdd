package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"

	"github.com/fleetdesk/fleetdesk/internal/pkg/config"
	"github.com/fleetdesk/fleetdesk/internal/pkg/database"
	"github.com/fleetdesk/fleetdesk/internal/pkg/health"
	"github.com/fleetdesk/fleetdesk/internal/pkg/logger"
	"github.com/fleetdesk/fleetdesk/internal/pkg/middleware"
	natspkg "github.com/fleetdesk/fleetdesk/internal/pkg/nats"
	nrpkg "github.com/fleetdesk/fleetdesk/internal/pkg/newrelic"
	"github.com/fleetdesk/fleetdesk/internal/pkg/server"
	bookingGateway "github.com/fleetdesk/fleetdesk/services/bookings/gateway"
	bookingHandler "github.com/fleetdesk/fleetdesk/services/bookings/handler"
	bookingRepository "github.com/fleetdesk/fleetdesk/services/bookings/repository"
	bookingUsecase "github.com/fleetdesk/fleetdesk/services/bookings/usecase"
	dashboardHandler "github.com/fleetdesk/fleetdesk/services/dashboard/handler"
	dashboardRepository "github.com/fleetdesk/fleetdesk/services/dashboard/repository"
	dashboardUsecase "github.com/fleetdesk/fleetdesk/services/dashboard/usecase"
	fleetHandler "github.com/fleetdesk/fleetdesk/services/fleet/handler"
	fleetRepository "github.com/fleetdesk/fleetdesk/services/fleet/repository"
	fleetUsecase "github.com/fleetdesk/fleetdesk/services/fleet/usecase"
)

func main() {
	appName := "fleetdesk-admin"
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	// Initialize New Relic and Zap logger
	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs, nrApp)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// Initialize NATS
	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Initialize repositories
	bookingRepo := bookingRepository.NewBookingRepository(configs, postgresClient.GetDB())
	fleetRepo := fleetRepository.NewFleetRepository(configs, postgresClient.GetDB())
	dashboardRepo := dashboardRepository.NewDashboardRepository(configs, postgresClient.GetDB())

	// Initialize gateways
	bookingGW := bookingGateway.NewNATSGateway(natsClient)

	// Initialize usecases
	bookingUC := bookingUsecase.NewBookingUC(bookingRepo, fleetRepo, bookingGW, configs)
	fleetUC := fleetUsecase.NewFleetUC(fleetRepo, configs)
	dashboardUC := dashboardUsecase.NewDashboardUC(dashboardRepo, redisClient, configs)

	// Initialize handlers
	bookingsH := bookingHandler.NewHandler(bookingUC, configs)
	fleetH := fleetHandler.NewHandler(fleetUC, configs)
	dashboardH := dashboardHandler.NewHandler(dashboardUC, natsClient, configs)

	// Initialize NATS consumers
	if err := dashboardH.InitNATSConsumers(); err != nil {
		zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
	}

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	// Add middlewares
	if nrApp != nil {
		e.Use(nrecho.Middleware(nrApp))
	}
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName)

	// Register authenticated service routes
	api := e.Group("/api/v1", middleware.JWTAuthMiddleware(configs.JWT))
	bookingsH.RegisterRoutes(api)
	fleetH.RegisterRoutes(api)
	dashboardH.RegisterRoutes(api)

	// Register component cleanup
	shutdownManager := server.NewShutdownManager(zapLogger)
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownManager.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	// Start server and block until shutdown
	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown with error", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", logger.Err(err))
	}
}
