package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kilat-Pet-Delivery/service-routing/internal/application"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/config"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/directions"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/handler"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/health"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/logger"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/metrics"
	"github.com/Kilat-Pet-Delivery/service-routing/internal/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "service-routing"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamedWithFile(cfg.AppEnv, serviceName, logger.DefaultFileOptions(cfg.LogFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-routing",
		zap.String("port", cfg.Port),
		zap.String("directions_url", cfg.Upstream.DirectionsURL),
		zap.Duration("upstream_timeout", cfg.Upstream.Timeout),
	)

	m := metrics.New()

	// Initialize directions provider
	provider := directions.NewGoogleClient(
		cfg.Upstream.DirectionsURL,
		cfg.Upstream.APIKey,
		cfg.Upstream.Timeout,
		m,
	)

	// Initialize application service and handlers
	routeService := application.NewRouteService(provider, log)
	routeHandler := handler.NewRouteHandler(routeService)

	router := newRouter(cfg.AppEnv, log, m)
	health.NewHandler(serviceName, m.Registry).RegisterRoutes(router)
	routeHandler.RegisterRoutes(&router.RouterGroup)

	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-routing...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("service-routing stopped")
}

func newRouter(appEnv string, log *zap.Logger, m *metrics.Metrics) *gin.Engine {
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.MetricsMiddleware(m))
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	return router
}
