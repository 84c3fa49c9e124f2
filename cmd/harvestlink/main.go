// Package main is the entry point for the HarvestLink storefront server.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/stacklok/toolhive-core/logging"
	"go.opentelemetry.io/otel/trace"

	"github.com/harvestlink/harvestlink/cmd/harvestlink/app"
	"github.com/harvestlink/harvestlink/internal/config"
)

// getLogLevel parses the HARVESTLINK_LOG_LEVEL environment variable and returns the corresponding slog.Level.
// Falls back to LOG_LEVEL, and to slog.LevelInfo if neither is set or the value is invalid.
func getLogLevel() slog.Level {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	levelStr := v.GetString("LOG_LEVEL")
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}

	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		slog.Warn("Invalid LOG_LEVEL, using INFO", "value", levelStr)
		return slog.LevelInfo
	}
}

// traceHandler wraps an slog.Handler to inject OpenTelemetry trace_id and
// span_id into every log record.
type traceHandler struct {
	slog.Handler
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(
			slog.String("trace_id", span.SpanContext().TraceID().String()),
			slog.String("span_id", span.SpanContext().SpanID().String()),
		)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithGroup(name)}
}

// newLogHandler builds the process log handler: toolhive-core's JSON
// defaults, with trace and span ids added from the record context.
func newLogHandler(level slog.Leveler, w io.Writer) slog.Handler {
	base := logging.New(logging.WithLevel(level), logging.WithOutput(w)).Handler()
	return &traceHandler{Handler: base}
}

func main() {
	// A missing .env file is normal outside development
	_ = godotenv.Load()

	// Logs go to stderr so stdout stays clean for version --format json
	slog.SetDefault(slog.New(newLogHandler(getLogLevel(), os.Stderr)))

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
