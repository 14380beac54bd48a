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

	"github.com/gin-gonic/gin"

	"github.com/seo-optimizer/textprocessor/analyzer"
	"github.com/seo-optimizer/textprocessor/api"
	"github.com/seo-optimizer/textprocessor/config"
	"github.com/seo-optimizer/textprocessor/logging"
	"github.com/seo-optimizer/textprocessor/middleware"
	"github.com/seo-optimizer/textprocessor/stats"
)

const (
	statsRetainMonths = 12
	shutdownTimeout   = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg)
	gin.SetMode(cfg.GinMode)

	if cfg.IsDevelopment() {
		if cfg.EnvFile == "" {
			slog.Info("no .env file found, using environment variables")
		} else {
			slog.Debug("loaded env file", "file", cfg.EnvFile)
		}
	}

	storage, err := stats.NewStorage(cfg.DataDir)
	if err != nil {
		slog.Error("failed to open statistics storage", "data_dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}
	storage.Cleanup(statsRetainMonths)

	textAnalyzer := analyzer.New(cfg.AnalyzerConfig())
	handler := api.NewHandler(textAnalyzer, cfg.Detector(), storage, cfg.MaxInputLength)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(rateLimiter.RateLimit(handler.RecordRejected))

	handler.RegisterRoutes(r.Group("/api"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", "http://localhost:"+cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	if err := storage.Shutdown(); err != nil {
		slog.Error("failed to persist statistics", "error", err)
	}
}
