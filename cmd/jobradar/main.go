package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"jobradar/internal/ai"
	"jobradar/internal/api"
	"jobradar/internal/config"
	"jobradar/internal/fetch"
	"jobradar/internal/notify"
	"jobradar/internal/scheduler"
	"jobradar/internal/search"
	"jobradar/internal/source"
	"jobradar/internal/source/aisearch"
	"jobradar/internal/source/arbeitnow"
	"jobradar/internal/source/catho"
	"jobradar/internal/source/freelas99"
	"jobradar/internal/source/glassdoor"
	"jobradar/internal/source/googlejobs"
	"jobradar/internal/source/jooble"
	"jobradar/internal/source/jsearch"
	"jobradar/internal/source/linkedin"
	"jobradar/internal/source/programathor"
	"jobradar/internal/source/remotive"
	"jobradar/internal/storage/postgres"
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

	// The publisher is optional. An empty URL keeps it out of the wiring so
	// the service sees a nil interface, not a typed-nil pointer.
	var pub search.Publisher
	var rabbitMQ *notify.RabbitMQ
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err = notify.NewRabbitMQ(notify.Config{
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

	jobStore := postgres.NewJobStore(db)
	configStore := postgres.NewConfigStore(db)
	txManager := postgres.NewTransactionManager(db)

	fetcher := fetch.New(cfg.Fetch.Timeout, logger)
	aiClient := ai.NewClient(cfg.Credentials.GroqKey, logger)

	registry := source.NewRegistry(
		jsearch.New(jsearch.Config{APIKey: cfg.Credentials.RapidAPIKey}, fetcher, logger),
		jooble.New(jooble.Config{APIKey: cfg.Credentials.JoobleKey}, fetcher, logger),
		remotive.New(remotive.Config{}, fetcher, logger),
		arbeitnow.New(arbeitnow.Config{}, fetcher, logger),
		linkedin.New(linkedin.Config{}, fetcher, logger),
		catho.New(catho.Config{}, fetcher, logger),
		googlejobs.New(googlejobs.Config{}, fetcher, logger),
		glassdoor.New(glassdoor.Config{}, fetcher, logger),
		programathor.New(programathor.Config{}, fetcher, logger),
		freelas99.New(freelas99.Config{}, fetcher, logger),
		aisearch.New(aiClient, logger),
	)

	orchestrator := search.NewOrchestrator(registry, logger)
	svc := search.NewService(
		orchestrator,
		jobStore,
		configStore,
		txManager,
		aiClient,
		pub,
		logger,
		cfg.Search.SummaryBatch,
	)

	sched := scheduler.NewScheduler(svc, configStore, cfg.Search.CheckInterval, logger)

	handler := api.NewHandler(api.Deps{
		Jobs:   jobStore,
		Config: configStore,
		Runner: svc,
		Credentials: api.Credentials{
			Groq:     cfg.Credentials.GroqKey != "",
			RapidAPI: cfg.Credentials.RapidAPIKey != "",
			Jooble:   cfg.Credentials.JoobleKey != "",
		},
		Logger: logger,
	})
	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("scheduler error", "error", err)
		}
	}()

	go func() {
		logger.Info("starting http server", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "error", err)
	}
	logger.Info("shutdown complete")
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
