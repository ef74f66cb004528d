package main

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hindnews/internal/app"
	"hindnews/internal/config"
	"hindnews/internal/logger"
	"hindnews/internal/metrics"
)

func main() {
	mode := flag.String("mode", "all", "run mode: all, multisource, exempt, imageretry")
	maxRetryPosts := flag.Int("max-retry-posts", 10, "posts to examine in imageretry mode")
	flag.Parse()

	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration error", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	if os.Getenv("ENABLE_HTTP_MONITORING") == "true" {
		go startMonitoringServer(a)
	}

	switch *mode {
	case "all":
		err = a.RunAll(ctx)
	case "multisource":
		err = a.RunMultiSource(ctx)
	case "exempt":
		err = a.RunExempt(ctx)
	case "imageretry":
		err = a.RetryImages(ctx, *maxRetryPosts)
	default:
		logger.Error("unknown mode", "mode", *mode)
		os.Exit(2)
	}

	if err != nil {
		metrics.Global.SetError(err.Error())
		logger.Error("run failed", "mode", *mode, "error", err)
		os.Exit(1)
	}
}

func startMonitoringServer(a *app.App) {
	port := os.Getenv("MONITORING_PORT")
	if port == "" {
		port = "8080"
	}

	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/metrics", metricsHandler(a))

	logger.Info("starting monitoring server", "port", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		logger.Error("monitoring server error", "error", err)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	stats := metrics.Global.GetStats()

	status := "ok"
	if !stats["is_healthy"].(bool) {
		status = "error"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	response := map[string]interface{}{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func metricsHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := metrics.Global.GetStats()
		stats["ai_usage"] = a.LimiterStats()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}
