package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	httpapi "github.com/i474232898/weather-lookup/internal/api/http"
	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/logging"
	"github.com/i474232898/weather-lookup/internal/scheduler"
	"github.com/i474232898/weather-lookup/internal/session"
	"github.com/i474232898/weather-lookup/internal/store"
	"github.com/i474232898/weather-lookup/internal/weather"
	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg := logging.New(cfg.LogLevel, cfg.LogFormat)

	// Shared HTTP client for outbound geocoding and weather calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	geocoder := providers.NewOpenMeteoGeocoder(httpClient, cfg.GeocodingURL, cfg.Language)
	forecaster := providers.NewOpenMeteoProvider(httpClient, cfg.ForecastURL)

	// Search history, loaded once at start.
	kv, closeKV := newKV(cfg, lg)
	defer closeKV()

	history := store.NewHistoryStore(kv, cfg.HistoryKey, lg)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	entries := history.Load(loadCtx)
	cancelLoad()
	lg.WithField("entries", len(entries)).Info("search history loaded")

	resolver := weather.NewResolver(geocoder, cfg.ResolveCount, lg)
	fetcher := weather.NewFetcher(forecaster, history, lg)
	service := weather.NewService(resolver, fetcher)

	suggester := weather.NewSuggester(
		providers.NewRateLimitedGeocoder(geocoder, cfg.SuggestRPS, cfg.SuggestBurst),
		cfg.SuggestCount,
		lg,
	)

	unit, err := weather.ParseUnit(cfg.DefaultUnit)
	if err != nil {
		lg.WithError(err).Fatal("invalid default unit")
	}

	controller := session.NewController(service, suggester, history, unit, lg)

	// Optional auto-refresh of the displayed location.
	sched := scheduler.New(controller, cfg.RefreshInterval, 2*cfg.HTTPTimeout, lg)
	if err := sched.Start(); err != nil {
		lg.WithError(err).Fatal("failed to start scheduler")
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-lookup",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          3 * cfg.HTTPTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-lookup",
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpapi.RegisterRoutes(app, controller)

	go func() {
		lg.WithField("port", cfg.Port).Info("starting http server")
		if err := app.Listen(":" + cfg.Port); err != nil {
			lg.WithError(err).Error("fiber server stopped")
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		lg.WithError(err).Error("error during shutdown")
	}
}

// newKV builds the configured history backend and its cleanup function.
func newKV(cfg *config.AppConfig, lg logrus.FieldLogger) (store.KV, func()) {
	switch cfg.HistoryBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		lg.WithField("addr", cfg.RedisAddr).Info("search history stored in redis")
		return store.NewRedisKV(client), func() {
			if err := client.Close(); err != nil {
				lg.WithError(err).Warn("closing redis client")
			}
		}
	case "memory":
		lg.Warn("search history is in memory and will not survive a restart")
		return store.NewMemoryKV(), func() {}
	default:
		lg.WithField("path", cfg.HistoryPath).Info("search history stored on disk")
		return store.NewFileKV(cfg.HistoryPath), func() {}
	}
}
