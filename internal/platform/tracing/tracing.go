// Package tracing installs the process-wide OpenTelemetry tracer provider.
// Platform packages create spans through otel.Tracer; until Init runs those
// spans go to the no-op provider.
package tracing

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type Config struct {
	Enabled     bool
	ServiceName string
	// SampleRatio is the fraction of root spans recorded, clamped to [0, 1].
	SampleRatio float64
	// Output receives exported spans as JSON. Defaults to stdout.
	Output io.Writer
}

func DefaultConfig() Config {
	return Config{
		ServiceName: "directory",
		SampleRatio: 1,
	}
}

// Init installs a tracer provider exporting to cfg.Output and returns its
// shutdown func, which flushes pending spans. When tracing is disabled the
// returned func is a no-op.
func Init(ctx context.Context, logger *slog.Logger, cfg Config) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(out))
	if err != nil {
		return nil, err
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", cfg.ServiceName),
	))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(clamp(cfg.SampleRatio)))),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("tracing initialized", slog.String("service", cfg.ServiceName), slog.Float64("sample_ratio", clamp(cfg.SampleRatio)))
	return tp.Shutdown, nil
}

func clamp(ratio float64) float64 {
	return min(max(ratio, 0), 1)
}
