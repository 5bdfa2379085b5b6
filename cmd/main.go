package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/amopromo/roundtrip-flight-service/internal/app/config"
	"github.com/amopromo/roundtrip-flight-service/internal/app/dto"
	"github.com/amopromo/roundtrip-flight-service/internal/app/endpoints"
	"github.com/amopromo/roundtrip-flight-service/internal/app/service"
	"github.com/amopromo/roundtrip-flight-service/internal/app/transport"
	"github.com/amopromo/roundtrip-flight-service/internal/pkg/airport"
	"github.com/amopromo/roundtrip-flight-service/internal/pkg/airportsapi"
	"github.com/amopromo/roundtrip-flight-service/internal/pkg/logger"
	"github.com/amopromo/roundtrip-flight-service/internal/pkg/pricing"
	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// @title           Round-Trip Flight Service API
// @version         0.0.1
// @description     roundtrip-flight-service
// @host      localhost:8080
// @BasePath  /
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	directorySvc, endpts := buildServices(ctx, cfg)

	scheduler := startImporter(cfg, directorySvc)
	defer func() {
		<-scheduler.Stop().Done()
	}()

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg, endpts)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config, endpts endpoints.Endpoints) {
	router := transport.MakeHTTPRouter(endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func buildServices(ctx context.Context, cfg config.Config) (*service.DirectoryService, endpoints.Endpoints) {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	directoryCache := airport.NewDirectoryCache(redisClient, cfg.Cache.AirportTTL)

	pricingClient := pricing.NewClient(pricing.Config{
		BaseURL:      cfg.PricingAPI.BaseURL,
		APIKey:       cfg.PricingAPI.APIKey,
		Login:        cfg.PricingAPI.Login,
		Password:     cfg.PricingAPI.Password,
		Timeout:      cfg.PricingAPI.Timeout,
		RateLimitRPS: cfg.PricingAPI.RateLimitRPS,
		Limiter:      redis_rate.NewLimiter(redisClient),
	})

	airportsClient := airportsapi.NewClient(airportsapi.Config{
		BaseURL:    cfg.AirportsAPI.BaseURL,
		Login:      cfg.AirportsAPI.Login,
		Password:   cfg.AirportsAPI.Password,
		Timeout:    cfg.AirportsAPI.Timeout,
		MaxRetries: cfg.AirportsAPI.MaxRetries,
	})

	searchSvc := service.NewSearchService(directoryCache, pricingClient)
	directorySvc := service.NewDirectoryService(airportsClient, directoryCache, cfg.Cache.AirportTTL)

	return directorySvc, endpoints.MakeEndpoints(searchSvc, directorySvc)
}

// startImporter schedules the periodic directory refresh and kicks a
// warm-up import so searches do not wait for the first cron run.
func startImporter(cfg config.Config, directorySvc *service.DirectoryService) *cron.Cron {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Importer.Timeout)
		defer cancel()

		if _, err := directorySvc.Import(ctx, dto.SyncRequest{}); err != nil {
			slog.Error("warm-up airport import failed", slog.String("error", err.Error()))
		}
	}()

	scheduler := cron.New()

	if _, err := scheduler.AddFunc(cfg.Importer.Schedule, func() {
		directorySvc.RunScheduledImport(cfg.Importer.Timeout)
	}); err != nil {
		slog.Error("invalid importer schedule", slog.String("schedule", cfg.Importer.Schedule),
			slog.String("error", err.Error()))
		panic(err)
	}

	scheduler.Start()

	return scheduler
}
