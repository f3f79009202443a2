package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/cwcfrank/lifepic-backend/internal/config"
	"github.com/cwcfrank/lifepic-backend/internal/domain"
	"github.com/cwcfrank/lifepic-backend/internal/geocoding"
	"github.com/cwcfrank/lifepic-backend/internal/server"
	"github.com/cwcfrank/lifepic-backend/internal/service"
	"github.com/cwcfrank/lifepic-backend/internal/storage/postgres"
	"github.com/cwcfrank/lifepic-backend/internal/tdx"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	parkingStore := postgres.NewParkingLotStore(db)
	chargingStore := postgres.NewChargingStationStore(db)
	statusStore := postgres.NewSyncStatusStore(db)

	tokens := tdx.NewTokenSource(tdx.AuthConfig{
		TokenURL:     cfg.TDX.AuthURL,
		ClientID:     cfg.TDX.ClientID,
		ClientSecret: cfg.TDX.ClientSecret,
	}, logger)
	client := tdx.NewClient(cfg.TDX.BaseURL, tokens, logger)

	geocoder := geocoding.New(geocoding.Config{APIKey: cfg.Geocoding.APIKey}, logger)

	srv := server.New(server.Deps{
		Parking:        parkingStore,
		Charging:       chargingStore,
		ParkingNearby:  service.NewNearbyService[domain.ParkingLot](parkingStore, logger),
		ChargingNearby: service.NewNearbyService[domain.ChargingStation](chargingStore, logger),
		ParkingSync: service.NewSyncService[domain.ParkingLot](
			tdx.NewParkingSource(client, logger),
			parkingStore,
			statusStore,
			nil,
			logger,
		),
		ChargingSync: service.NewSyncService[domain.ChargingStation](
			tdx.NewChargingSource(client, logger),
			chargingStore,
			statusStore,
			nil,
			logger,
		),
		Geocode: service.NewGeocodeService(geocoder, chargingStore, logger),
		APIKey:  cfg.Sync.APIKey,
	}, logger)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: srv.Router(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down server")
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("starting server", "port", cfg.Server.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
