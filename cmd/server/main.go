// Package main is the entry point for the directory service.
// It wires together all modules and starts the HTTP server.
package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/rai/clean-directory-go/internal/platform/audit"
	"github.com/rai/clean-directory-go/internal/platform/httpserver"
	"github.com/rai/clean-directory-go/internal/platform/tracing"
	"github.com/rai/clean-directory-go/modules/businesses"
	"github.com/rai/clean-directory-go/modules/notifications"
	"github.com/rai/clean-directory-go/modules/taxonomies"
	"github.com/rai/clean-directory-go/modules/terms"
	"github.com/rai/clean-directory-go/modules/users"
)

// routeRegistrar is satisfied by every module.
type routeRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(getEnv("LOG_LEVEL", "info")),
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("directory service failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting directory service")

	tracingCfg := tracing.DefaultConfig()
	tracingCfg.Enabled = getEnvBool("OTEL_ENABLED", false)
	tracingCfg.ServiceName = getEnv("OTEL_SERVICE_NAME", tracingCfg.ServiceName)
	tracingCfg.SampleRatio = getEnvFloat("OTEL_SAMPLE_RATIO", tracingCfg.SampleRatio)
	shutdownTracing, err := tracing.Init(ctx, logger, tracingCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
			logger.Error("tracing shutdown error", slog.Any("error", err))
		}
	}()

	auditOut, closeAudit, err := openAuditLog(getEnv("AUDIT_LOG_PATH", ""))
	if err != nil {
		return err
	}
	defer closeAudit()
	auditLog := audit.NewWriter(auditOut)

	// Notifications owns no aggregates; it plugs handlers into other modules' buses.
	notificationsModule := notifications.New(notifications.Config{Logger: logger})

	modules := []routeRegistrar{
		businesses.New(businesses.Config{Logger: logger, AuditLog: auditLog}),
		taxonomies.New(taxonomies.Config{Logger: logger, AuditLog: auditLog}),
		terms.New(terms.Config{Logger: logger, AuditLog: auditLog}),
		users.New(users.Config{
			Logger:   logger,
			AuditLog: auditLog,
			Handlers: notificationsModule.UserHandlers(),
		}),
	}

	handler := httpserver.Middleware(buildRouter(modules...),
		httpserver.Recovery(logger),
		httpserver.Tracing(),
		httpserver.Logging(logger),
		httpserver.CORS(strings.Split(getEnv("CORS_ORIGINS", "*"), ",")),
	)

	cfg := httpserver.DefaultConfig()
	cfg.Host = getEnv("HTTP_HOST", cfg.Host)
	cfg.Port = getEnvInt("HTTP_PORT", cfg.Port)

	if err := httpserver.New(cfg, handler, logger).Run(ctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// buildRouter creates the main HTTP router with all module handlers.
func buildRouter(modules ...routeRegistrar) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpserver.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	for _, m := range modules {
		m.RegisterRoutes(mux)
	}
	return mux
}

// openAuditLog opens path for appending, or returns stdout when path is empty.
func openAuditLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
