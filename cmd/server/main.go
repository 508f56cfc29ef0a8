package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"placesWs/internal/config"
	"placesWs/internal/modules/places/application/handler"
	"placesWs/internal/modules/places/application/usecase"
	"placesWs/internal/modules/places/domain"
	"placesWs/internal/modules/places/infrastructure"
	transport "placesWs/internal/modules/places/interface"
	"placesWs/internal/platform/broker"
	"placesWs/internal/shared/auth"
	"placesWs/internal/shared/logging"
)

func main() {
	// Local runs pick up overrides from .env; a missing file is fine.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logCloser, logger, err := logging.Setup(logging.Config{
		Directory: cfg.Logging.Directory,
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: true,
	}, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized", slog.String("directory", cfg.Logging.Directory), slog.String("level", cfg.Logging.Level), slog.String("format", cfg.Logging.Format))
	slog.Info("kafka config resolved", slog.Any("brokers", cfg.Kafka.Brokers), slog.String("group", cfg.Kafka.GroupID), slog.String("searchEvents", cfg.Kafka.SearchEventsTopic), slog.String("catalog", cfg.Kafka.CatalogTopic))

	if err := run(cfg); err != nil {
		slog.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	catalog, err := infrastructure.LoadCatalog(cfg.Store.CatalogFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	repository := infrastructure.NewMockRepository(catalog, cfg.Store.FetchLatency)
	slog.Info("catalog loaded", slog.Int("restaurants", repository.Size()), slog.String("file", cfg.Store.CatalogFile), slog.Duration("latency", cfg.Store.FetchLatency))

	placesUC := usecase.NewPlacesUseCase(repository)
	filters := domain.DefaultFilters()

	publisher := infrastructure.NewEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.SearchEventsTopic)
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Warn("search event publisher close error", slog.Any("error", err))
		}
	}()

	validator, err := auth.NewJWTValidator(cfg.Security.JWTSecret, cfg.Security.JWTPublicKey)
	if err != nil {
		return err
	}
	if !validator.Enabled() {
		slog.Warn("websocket sessions are anonymous: no JWT key configured")
	}

	hub := infrastructure.NewHub(cfg.Websocket.CommandTimeout)
	registry := infrastructure.NewHandlerRegistry()
	registry.Register(handler.NewCatalogRefreshHandler(hub, hub))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	consumers := broker.StartKafkaConsumers(ctx, registry, cfg.Kafka.Brokers, cfg.Kafka.GroupID, []string{cfg.Kafka.CatalogTopic})

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())

	transport.NewPlacesHandler(placesUC, filters, cfg.Session.DefaultLocation).Register(e.Group("/api"))
	e.GET("/healthz", transport.Health)

	wsHandler := transport.NewSessionWebsocketHandler(hub, placesUC, validator, transport.SessionOptions{
		Location:       cfg.Session.DefaultLocation,
		Filters:        filters,
		DefaultFilter:  domain.DefaultFilterTitle,
		Policy:         cfg.Session.StalePolicy,
		Events:         publisher,
		SendBuffer:     cfg.Websocket.SendBuffer,
		CommandTimeout: cfg.Websocket.CommandTimeout,
	})
	e.GET("/ws/session/:token", wsHandler)
	e.GET("/ws/session", wsHandler)

	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		cancel()
		consumers.Wait()
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", slog.Int("sessions", hub.Count()))
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Warn("http shutdown error", slog.Any("error", err))
	}
	hub.CloseAll()
	consumers.Wait()
	return nil
}
