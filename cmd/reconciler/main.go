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

	"biblio_reconciler/internal/config"
	"biblio_reconciler/internal/publisher"
	"biblio_reconciler/internal/scheduler"
	"biblio_reconciler/internal/service"
	"biblio_reconciler/internal/source/csvfile"
	"biblio_reconciler/internal/source/docstore"
	"biblio_reconciler/internal/source/jsonfile"
	"biblio_reconciler/internal/source/relational"
	"biblio_reconciler/internal/storage/postgres"
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

	// Warehouse unavailability at startup is the one fatal condition: no
	// reconciliation can proceed without it.
	db, err := sqlx.Connect("postgres", cfg.Warehouse.DSN())
	if err != nil {
		logger.Error("failed to connect to warehouse", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping warehouse", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to warehouse")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Event stream is optional; an empty URL runs the pipeline without it.
	var pub service.Publisher
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
		pub = rabbitMQ
	}

	authorStore := postgres.NewAuthorStore(db)
	journalStore := postgres.NewJournalStore(db)
	quartileStore := postgres.NewQuartileStore(db)
	publicationStore := postgres.NewPublicationStore(db)
	runStateStore := postgres.NewRunStateStore(db)
	txManager := postgres.NewTransactionManager(db)

	sources, cleanup, err := buildSources(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize sources", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	reconciler := service.NewReconcileService(
		sources,
		authorStore,
		journalStore,
		quartileStore,
		publicationStore,
		runStateStore,
		txManager,
		pub,
		logger,
	)

	sched := scheduler.NewScheduler(reconciler, cfg.Reconcile.Interval, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting warehouse reconciler",
		"sources", len(sources),
		"interval", cfg.Reconcile.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

// buildSources wires the four source adapters in the pipeline's fixed order.
func buildSources(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]service.Source, func(), error) {
	docSource, err := docstore.New(ctx, docstore.Config{
		URI:        cfg.Sources.DocumentStore.URI,
		Database:   cfg.Sources.DocumentStore.Database,
		Collection: cfg.Sources.DocumentStore.Collection,
	}, logger)
	if err != nil {
		return nil, func() {}, err
	}

	relSource, err := relational.New(relational.Config{
		DSN:   cfg.Sources.Relational.DSN,
		Table: cfg.Sources.Relational.Table,
	}, logger)
	if err != nil {
		_ = docSource.Close(ctx)
		return nil, func() {}, err
	}

	sources := []service.Source{
		docSource,
		relSource,
		jsonfile.New(jsonfile.Config{Path: cfg.Sources.JSONFile.Path}, logger),
		csvfile.New(csvfile.Config{Path: cfg.Sources.CSVFile.Path}, logger),
	}

	cleanup := func() {
		_ = relSource.Close()
		_ = docSource.Close(context.Background())
	}

	return sources, cleanup, nil
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
