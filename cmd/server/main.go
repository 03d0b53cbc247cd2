// Package main is the entry point for the tour search and booking gateway.
//
//	@title						Tour Search & Booking API
//	@version					1.0.0
//	@description				A gateway service that searches, filters, and books tour packages against the remote tour backend.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/tour-search/tour-search-and-booking-system/docs"

	tourhttp "github.com/tour-search/tour-search-and-booking-system/internal/adapter/http"
	"github.com/tour-search/tour-search-and-booking-system/internal/adapter/http/middleware"
	"github.com/tour-search/tour-search-and-booking-system/internal/adapter/tourapi"
	"github.com/tour-search/tour-search-and-booking-system/internal/config"
	"github.com/tour-search/tour-search-and-booking-system/internal/infrastructure/cache"
	"github.com/tour-search/tour-search-and-booking-system/internal/infrastructure/timeutil"
	"github.com/tour-search/tour-search-and-booking-system/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("tour_api", cfg.TourAPI.BaseURL).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger)

	resultCache := setupCache(cfg)
	if resultCache != nil {
		defer resultCache.Close()
	}

	setupRoutes(e, cfg, resultCache)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// setupCache connects the Redis result cache when enabled. The service runs
// without it: a missing cache only costs upstream round trips.
func setupCache(cfg *config.Config) *cache.ResultCache {
	if !cfg.Cache.Enabled {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resultCache, err := cache.New(ctx, cache.Config{
		URL: cfg.Cache.RedisURL,
		TTL: cfg.Cache.TTL,
	})
	if err != nil {
		log.Warn().Err(err).Msg("Result cache unavailable, continuing without it")
		return nil
	}

	log.Info().Dur("ttl", cfg.Cache.TTL).Msg("Result cache connected")
	return resultCache
}

// setupRoutes wires the application layers and registers the HTTP routes.
func setupRoutes(e *echo.Echo, cfg *config.Config, resultCache *cache.ResultCache) {
	client := tourapi.New(tourapi.Config{
		BaseURL:      cfg.TourAPI.BaseURL,
		Timeout:      cfg.TourAPI.Timeout,
		RateLimitRPS: cfg.TourAPI.RateLimitRPS,
		Retry:        tourapi.DefaultConfig(cfg.TourAPI.BaseURL).Retry.WithMaxAttempts(cfg.TourAPI.MaxRetries),
	}, log.Logger)

	searchUseCase := usecase.NewTourSearchUseCase(client, resultCache, log.Logger)
	bookingUseCase := usecase.NewBookingUseCase(client, log.Logger)

	handler := tourhttp.NewTourHandler(searchUseCase, bookingUseCase, timeutil.NewRealClock())
	tourhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
