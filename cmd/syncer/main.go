package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/cwcfrank/lifepic-backend/internal/config"
	"github.com/cwcfrank/lifepic-backend/internal/domain"
	"github.com/cwcfrank/lifepic-backend/internal/publisher"
	"github.com/cwcfrank/lifepic-backend/internal/scheduler"
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

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Sync-event publisher is optional; leave the RabbitMQ URL empty to
	// run without one.
	var events service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	// Stores
	parkingStore := postgres.NewParkingLotStore(db)
	chargingStore := postgres.NewChargingStationStore(db)
	statusStore := postgres.NewSyncStatusStore(db)

	// TDX sources share one token source and client
	tokens := tdx.NewTokenSource(tdx.AuthConfig{
		TokenURL:     cfg.TDX.AuthURL,
		ClientID:     cfg.TDX.ClientID,
		ClientSecret: cfg.TDX.ClientSecret,
	}, logger)
	client := tdx.NewClient(cfg.TDX.BaseURL, tokens, logger)

	parkingSync := service.NewSyncService[domain.ParkingLot](
		tdx.NewParkingSource(client, logger),
		parkingStore,
		statusStore,
		events,
		logger,
	)
	chargingSync := service.NewSyncService[domain.ChargingStation](
		tdx.NewChargingSource(client, logger),
		chargingStore,
		statusStore,
		events,
		logger,
	)

	sched := scheduler.NewScheduler(
		[]scheduler.Syncer{parkingSync, chargingSync},
		cfg.Sync.Interval,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting facility syncer", "interval", cfg.Sync.Interval)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
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
