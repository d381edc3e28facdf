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

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"homeboard/internal/client/lastfm"
	"homeboard/internal/client/pinboard"
	"homeboard/internal/client/pocket"
	"homeboard/internal/config"
	"homeboard/internal/metrics"
	"homeboard/internal/publisher"
	"homeboard/internal/server"
	"homeboard/internal/service"
	"homeboard/internal/store"
	"homeboard/internal/worker"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	// Connect to redis
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Error("failed to parse redis url", "error", err)
		os.Exit(1)
	}

	rdb := redis.NewClient(redisOpts)
	defer rdb.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Error("failed to ping redis", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to redis")

	st := store.New(rdb)

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	workerMetrics := metrics.New(registry)

	workerOpts := []worker.Option{worker.WithObserver(workerMetrics)}

	// Initialize refresh event publisher
	if cfg.RabbitMQ.Enabled {
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
		workerOpts = append(workerOpts, worker.WithObserver(rabbitMQ))
	}

	// Initialize upstream clients
	lastfmClient, err := lastfm.New(lastfm.Config{
		BaseURL: cfg.Lastfm.BaseURL,
		APIKey:  cfg.Lastfm.APIKey,
		User:    cfg.Lastfm.User,
		Timeout: cfg.Lastfm.Timeout,
	})
	if err != nil {
		logger.Error("failed to create lastfm client", "error", err)
		os.Exit(1)
	}

	pinboardClient, err := pinboard.New(pinboard.Config{
		BaseURL:  cfg.Pinboard.BaseURL,
		APIToken: cfg.Pinboard.APIToken,
		Timeout:  cfg.Pinboard.Timeout,
	})
	if err != nil {
		logger.Error("failed to create pinboard client", "error", err)
		os.Exit(1)
	}

	pocketClient, err := pocket.New(pocket.Config{
		BaseURL:     cfg.Pocket.BaseURL,
		ConsumerKey: cfg.Pocket.ConsumerKey,
		Timeout:     cfg.Pocket.Timeout,
	})
	if err != nil {
		logger.Error("failed to create pocket client", "error", err)
		os.Exit(1)
	}

	// Initialize workers
	lastfmWorker, err := worker.NewLastfmWorker(lastfmClient, st, cfg.Lastfm.RateLimitWindow,
		worker.LoggingCallback(logger, "lastfm"), workerOpts...)
	if err != nil {
		logger.Error("failed to create lastfm worker", "error", err)
		os.Exit(1)
	}

	pinboardWorker, err := worker.NewPinboardWorker(pinboardClient, st, cfg.Pinboard.RateLimitWindow,
		worker.LoggingCallback(logger, "pinboard"), workerOpts...)
	if err != nil {
		logger.Error("failed to create pinboard worker", "error", err)
		os.Exit(1)
	}

	pocketWorker, err := worker.NewPocketWorker(pocketClient, st,
		worker.LoggingCallback(logger, "pocket"), workerOpts...)
	if err != nil {
		logger.Error("failed to create pocket worker", "error", err)
		os.Exit(1)
	}

	// Initialize services
	lastfmService := service.NewLastfmService(st)
	pinboardService := service.NewPinboardService(st)
	pocketService := service.NewPocketService(st, pocketClient, pocketWorker, cfg.Pocket.UserRateLimit)

	// Start workers
	if err := lastfmWorker.Start(cfg.Lastfm.Interval); err != nil {
		logger.Error("failed to start lastfm worker", "error", err)
		os.Exit(1)
	}
	defer lastfmWorker.Cancel()

	if err := pinboardWorker.Start(cfg.Pinboard.Interval); err != nil {
		logger.Error("failed to start pinboard worker", "error", err)
		os.Exit(1)
	}
	defer pinboardWorker.Cancel()

	// the pocket worker only runs while an authorization is stored; the
	// OAuth callback starts it for freshly linked accounts
	auth, err := pocketService.Authorization(ctx)
	if err != nil {
		logger.Error("failed to read pocket authorization", "error", err)
		os.Exit(1)
	}
	if auth != nil {
		if err := pocketService.StartWorker(); err != nil {
			logger.Error("failed to start pocket worker", "error", err)
			os.Exit(1)
		}
		defer pocketService.StopWorker()
		logger.Info("pocket worker started", "username", auth.Username)
	}

	// Initialize HTTP server
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	srv := server.New(server.Config{
		AdminPassword: cfg.Server.AdminPassword,
		SessionSecret: cfg.Server.SessionSecret,
	}, lastfmService, pinboardService, pocketService, metricsHandler, logger)

	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown failed", "error", err)
		}
		cancel()
	}()

	logger.Info("starting homeboard",
		"addr", cfg.Server.Addr,
		"lastfm_interval", cfg.Lastfm.Interval,
		"pinboard_interval", cfg.Pinboard.Interval,
	)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server error", "error", err)
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
