package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/couchcryptid/worldtrotter-service/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/worldtrotter-service/internal/adapter/kafka"
	"github.com/couchcryptid/worldtrotter-service/internal/adapter/mapbox"
	"github.com/couchcryptid/worldtrotter-service/internal/adapter/web"
	"github.com/couchcryptid/worldtrotter-service/internal/config"
	"github.com/couchcryptid/worldtrotter-service/internal/domain"
	"github.com/couchcryptid/worldtrotter-service/internal/observability"
	"github.com/couchcryptid/worldtrotter-service/internal/pipeline"
	"github.com/couchcryptid/worldtrotter-service/internal/session"
)

// geocodeTimeout bounds annotation enrichment at startup.
const geocodeTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize geocoder and static maps (feature-flagged via MAPBOX_ENABLED / MAPBOX_TOKEN).
	var (
		geocoder  domain.Geocoder
		snapshots httpadapter.SnapshotRenderer
	)
	if cfg.MapboxEnabled {
		client := mapbox.NewClient(cfg.MapboxToken, cfg.MapboxTimeout, metrics, logger)
		geocoder = mapbox.NewCachedGeocoder(client, cfg.MapboxCacheSize, metrics)
		snapshots = mapbox.NewStaticMaps(cfg.MapboxToken)
		metrics.GeocodeEnabled.Set(1)
		logger.Info("mapbox enabled", "cache_size", cfg.MapboxCacheSize, "timeout", cfg.MapboxTimeout)
	} else {
		logger.Info("mapbox disabled")
	}

	geoCtx, geoCancel := context.WithTimeout(ctx, geocodeTimeout)
	annotations := domain.EnrichLocations(geoCtx, domain.FixedLocations(), geocoder, logger)
	geoCancel()

	// Initialize conversion event publishing (feature-flagged via KAFKA_ENABLED).
	var (
		loader pipeline.BatchLoader
		writer *kafkaadapter.Writer
	)
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		loader = writer
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	publisher := pipeline.NewPublisher(loader, cfg.BatchSize, cfg.BatchFlushInterval, logger, metrics)

	srv := httpadapter.NewServer(httpadapter.Options{
		Addr:          cfg.HTTPAddr,
		Sessions:      session.NewStore(cfg.SessionCacheSize, annotations, metrics, logger),
		Annotations:   annotations,
		DefaultLocale: cfg.DefaultLocale,
		Publisher:     publisher,
		Book:          web.NewLoader(cfg.BookTimeout, logger),
		BookURL:       cfg.BookURL,
		Snapshots:     snapshots,
		Ready:         publisher,
		Metrics:       metrics,
		Logger:        logger,
	})

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	// Start event publisher.
	publisherDone := make(chan struct{})
	go func() {
		defer close(publisherDone)
		if err := publisher.Run(ctx); err != nil {
			logger.Error("publisher error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	select {
	case <-publisherDone:
	case <-shutdownCtx.Done():
		logger.Warn("publisher did not stop before shutdown timeout")
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
