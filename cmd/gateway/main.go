package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openride/tripgate/internal/pkg/config"
	"github.com/openride/tripgate/internal/pkg/database"
	"github.com/openride/tripgate/internal/pkg/health"
	"github.com/openride/tripgate/internal/pkg/logger"
	"github.com/openride/tripgate/internal/pkg/middleware"
	natspkg "github.com/openride/tripgate/internal/pkg/nats"
	nrpkg "github.com/openride/tripgate/internal/pkg/newrelic"
	wspkg "github.com/openride/tripgate/internal/pkg/websocket"
	"github.com/openride/tripgate/services/trip/gateway"
	"github.com/openride/tripgate/services/trip/handler"
	httpHandler "github.com/openride/tripgate/services/trip/handler/http"
	wsHandler "github.com/openride/tripgate/services/trip/handler/websocket"
	"github.com/openride/tripgate/services/trip/repository"
	"github.com/openride/tripgate/services/trip/usecase"
)

func main() {
	appName := "trip-gateway"
	configPath := config.GetEnv("CONFIG_PATH", "config/gateway.env")
	configs := config.InitConfig(configPath)

	nrApp := nrpkg.InitNewRelic(configs)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			log.Printf("Warning: New Relic connection timeout: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
	}
	defer natsClient.Close()

	// Repositories
	tripRepo := repository.NewTripRepository(postgresClient.GetDB())
	directory := repository.NewDriverDirectory(redisClient)
	positionCache := repository.NewPositionCache(redisClient, configs.Tracking)

	// Gateway
	tripGW := gateway.NewTripGW(natsClient)

	// UseCase
	tripUC := usecase.NewTripUC(configs, tripRepo, directory, tripGW, positionCache)

	// Handlers for HTTP
	tripHandler := httpHandler.NewTripHandler(tripUC)
	driverHandler := httpHandler.NewDriverHandler(tripUC)

	// Handlers for WebSocket
	manager := wspkg.NewManager(configs.JWT)
	registry := wsHandler.NewRegistry()
	wsManager := wsHandler.NewWebSocketManager(tripUC, manager, registry)

	// The registry routes use case events back to connected clients
	tripUC.SetNotifier(registry)

	h := handler.NewHandler(tripHandler, driverHandler, wsManager)

	e := echo.New()
	e.HideBanner = true

	// panic recovery goes first
	e.Use(middleware.PanicRecoveryMiddleware())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName,
		health.NewPostgresHealthChecker(postgresClient),
		health.NewRedisHealthChecker(redisClient),
		health.NewNATSHealthChecker(natsClient),
	)

	h.RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Server stopped", logger.String("app", appName))
}
