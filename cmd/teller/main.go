package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bank_teller/internal/api"
	"bank_teller/internal/config"
	"bank_teller/internal/processor"
	"bank_teller/internal/repository/memory"
	"bank_teller/internal/service"
	"bank_teller/pkg/crypto"
	"bank_teller/pkg/metrics"
)

const (
	appName = "bank_teller"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := setupLogger(cfg.LogLevel)
	logger.Info("Starting application",
		slog.String("name", appName))

	metricsCollector := metrics.NewMetricsCollector(logger)
	signer := crypto.NewSigner(cfg.ReportSecret, logger)
	ledger := memory.NewAccountRepository()
	teller := processor.NewTeller(ledger, time.Now, logger)
	journal := service.NewJournal(cfg.JournalSize, logger)
	apiHandler := api.NewAPIHandler(teller, metricsCollector, signer, journal, logger)
	metricsServer := metricsCollector.StartMetricsServer(cfg.MetricsAddr)
	httpServer := startHTTPServer(cfg.HTTPAddr, apiHandler, logger)
	waitForShutdown(logger, httpServer, metricsServer, journal, metricsCollector)
	logger.Info("Application shutdown complete")
}

func setupLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}

func startHTTPServer(addr string, apiHandler *api.APIHandler, logger *slog.Logger) *http.Server {
	r := apiHandler.Router()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"name": "%s", "status": "ok"}`, appName)
	})

	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	return server
}

func waitForShutdown(
	logger *slog.Logger,
	httpServer *http.Server,
	metricsServer *http.Server,
	journal *service.Journal,
	metricsCollector *metrics.MetricsCollector,
) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(ctx); err != nil {
		logger.Error("Metrics server shutdown failed", slog.String("error", err.Error()))
	}

	if err := journal.Shutdown(ctx); err != nil {
		logger.Error("Journal shutdown failed", slog.String("error", err.Error()))
	}
	if err := metricsCollector.Shutdown(ctx); err != nil {
		logger.Error("Metrics collector shutdown failed", slog.String("error", err.Error()))
	}
}
