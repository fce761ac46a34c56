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

	"feeddeck/internal/config"
	"feeddeck/internal/infra/adapter/persistence/localstore"
	"feeddeck/internal/infra/scraper"

	fetchUC "feeddeck/internal/usecase/fetch"
	refreshUC "feeddeck/internal/usecase/refresh"
	subUC "feeddeck/internal/usecase/subscription"

	hhttp "feeddeck/internal/handler/http"
	harticle "feeddeck/internal/handler/http/article"
	hfeed "feeddeck/internal/handler/http/feed"
	"feeddeck/internal/handler/http/middleware"
	"feeddeck/internal/handler/http/requestid"
)

func main() {
	logger := initLogger()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	fetchSvc := &fetchUC.Service{
		Transport: scraper.NewRSSFetcher(nil),
		Timeout:   cfg.Fetch.Timeout,
	}

	store, err := initStore(logger, cfg, fetchSvc)
	if err != nil {
		logger.Error("failed to initialize subscription store", slog.Any("error", err))
		os.Exit(1)
	}

	handler, stopCleanup := setupServer(logger, cfg, fetchSvc, store)
	defer stopCleanup()

	runServer(logger, cfg, handler)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// initStore wires the persistence, transport and use case layers and restores
// the subscription list. Subscribed feeds are refreshed once in the background
// so the timeline is populated without waiting for the first client trigger.
func initStore(logger *slog.Logger, cfg config.ServerConfig, fetchSvc *fetchUC.Service) (*subUC.Store, error) {
	kv, err := localstore.NewStore(cfg.Storage.Dir)
	if err != nil {
		return nil, err
	}

	refreshSvc := &refreshUC.Service{Fetcher: fetchSvc}

	store := subUC.NewStore(fetchSvc, refreshSvc, localstore.NewFeedRepo(kv))
	store.Restore(context.Background())

	if len(store.Feeds()) > 0 {
		go store.RefreshAll(context.Background())
	}

	logger.Info("subscription store ready", slog.String("storage_dir", cfg.Storage.Dir))
	return store, nil
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, cfg config.ServerConfig, fetchSvc *fetchUC.Service, store *subUC.Store) (http.Handler, func()) {
	fetchLimiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	stopCleanup := fetchLimiter.StartCleanup(time.Minute)

	mux := http.NewServeMux()
	mux.Handle("GET /health", hhttp.HealthHandler{Version: getVersion()})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	hfeed.Register(mux, fetchSvc, store, fetchLimiter)
	harticle.Register(mux, store)

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsCfg.AllowedOrigins = cfg.CORS.AllowedOrigins
	}

	var handler http.Handler = mux
	handler = hhttp.Timeout(cfg.Server.RequestTimeout)(handler)
	handler = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(handler)
	handler = middleware.CORS(corsCfg)(handler)
	handler = hhttp.Metrics()(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = hhttp.Recover(logger)(handler)
	handler = requestid.Middleware(handler)

	return handler, stopCleanup
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// runServer starts the HTTP server and blocks until shutdown.
func runServer(logger *slog.Logger, cfg config.ServerConfig, handler http.Handler) {
	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting", slog.String("addr", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
