package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aferrando/golbot/internal/adapters/embedder"
	"github.com/aferrando/golbot/internal/adapters/http/api"
	"github.com/aferrando/golbot/internal/adapters/store"
	"github.com/aferrando/golbot/internal/app"
	"github.com/aferrando/golbot/internal/config"
	"github.com/aferrando/golbot/internal/domain/facts"
	"github.com/aferrando/golbot/internal/domain/retrieval"
	"github.com/aferrando/golbot/internal/domain/superlative"
	"github.com/aferrando/golbot/pkg/logger"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Disable the default Go collectors; the custom registry carries only
	// the pipeline's own metrics.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// External collaborators: the stats database and the embedding model.
	st, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "failed to open stats database", logger.Error(err))
		return
	}
	emb := embedder.NewClient(cfg.OllamaURL, cfg.EmbedModel)

	// Assemble the pipeline.
	engine := retrieval.NewEngine(emb, st,
		retrieval.WithTopK(cfg.RetrievalTopK),
		retrieval.WithThreshold(cfg.RetrievalThreshold),
		retrieval.WithLogger(log.Named("retrieval")),
	)
	svc := app.New(
		superlative.NewResolver(st),
		facts.Chain(st),
		engine,
		app.WithLogger(log.Named("pipeline")),
	)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, api.WithAllowedOrigin(cfg.AllowedOrigin))
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "graceful shutdown failed", logger.Error(err))
	}
}
