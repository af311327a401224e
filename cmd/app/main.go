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

	"github.com/prometheus/client_golang/prometheus/promhttp"

	cfg "github.com/zetherabarter/Rec-Backend2/internal/config"
	"github.com/zetherabarter/Rec-Backend2/internal/di"
	"github.com/zetherabarter/Rec-Backend2/internal/metrics"
)

const serverAddr = ":8080"

func main() {

	envfile := flag.String("envfile", "", "path to an env file to load")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var envfileArg *string

	if *envfile != "" {
		envfileArg = envfile
	}

	loader, err := cfg.NewEnvConfig(envfileArg)

	if err != nil {
		slog.Error("failed to load config", "reason", err)
		os.Exit(1)
	}

	engine, err := di.InjectBackend(ctx, envfileArg)

	if err != nil {
		slog.Error("failed to build backend", "reason", err)
		os.Exit(1)
	}

	metrics.Init()

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	metricsServer := &http.Server{
		Addr:    ":" + loader.GetMetricsPort(),
		Handler: metricsMux,
	}

	go func() {
		slog.Info("metrics server started", "addr", metricsServer.Addr)

		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server error", "reason", err)
		}
	}()

	server := &http.Server{
		Addr:    serverAddr,
		Handler: engine,
	}

	go func() {
		slog.Info("server started", "addr", serverAddr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "reason", err)
			cancel()
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "reason", err)
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("metrics shutdown failed", "reason", err)
	}

	slog.Info("shutdown complete")
}
