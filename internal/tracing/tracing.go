package tracing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "card-shuffler-go"

var tracer trace.Tracer

// Config selects where deck spans go. TracesExport is "stdout" (the default)
// or "none"/"noop"; Writer replaces stdout for the stdout exporter, which the
// CLI points at stderr so the card listing stays clean.
type Config struct {
	ServiceName  string
	Environment  string
	PrettyPrint  bool
	TracesExport string
	Writer       io.Writer
}

// InitTracer installs a global tracer provider and propagators and returns
// its shutdown func, which flushes pending spans.
func InitTracer(ctx context.Context, cfg Config) (func(context.Context) error, error) {
	if cfg.ServiceName == "" {
		return nil, errors.New("tracing: ServiceName is required")
	}
	if cfg.Environment == "" {
		cfg.Environment = envOr("APP_ENV", "development")
	}
	if cfg.TracesExport == "" {
		cfg.TracesExport = envOr("OTEL_TRACES_EXPORTER", "stdout")
	}

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.DeploymentEnvironmentKey.String(cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tracing: create resource: %w", err)
	}

	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(os.Getenv("OTEL_TRACES_SAMPLER"))),
	}
	exporter, err := newExporter(cfg)
	if err != nil {
		return nil, err
	}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	tp := sdktrace.NewTracerProvider(opts...)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	tracer = tp.Tracer(cfg.ServiceName)

	return tp.Shutdown, nil
}

// newExporter returns nil when spans should be dropped.
func newExporter(cfg Config) (sdktrace.SpanExporter, error) {
	switch strings.ToLower(cfg.TracesExport) {
	case "none", "noop":
		return nil, nil
	case "stdout":
		var opts []stdouttrace.Option
		if cfg.PrettyPrint {
			opts = append(opts, stdouttrace.WithPrettyPrint())
		}
		if cfg.Writer != nil {
			opts = append(opts, stdouttrace.WithWriter(cfg.Writer))
		}
		exp, err := stdouttrace.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("tracing: init stdout exporter: %w", err)
		}
		return exp, nil
	default:
		return nil, fmt.Errorf("tracing: unsupported exporter %q", cfg.TracesExport)
	}
}

// newSampler records every deck request unless sampling is switched off.
func newSampler(name string) sdktrace.Sampler {
	switch name {
	case "", "always_on", "parentbased_always_on":
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case "always_off":
		return sdktrace.NeverSample()
	default:
		log.Printf("tracing: unsupported OTEL_TRACES_SAMPLER=%q; sampling everything", name)
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
}

func GetTracer() trace.Tracer {
	if tracer == nil {
		tracer = otel.Tracer(defaultTracerName)
	}
	return tracer
}

func StartSpan(ctx context.Context, spanName string) (context.Context, trace.Span) {
	return GetTracer().Start(ctx, spanName)
}

// SetDeckAttributes tags a span with the deck order and, for shuffles, the seed.
func SetDeckAttributes(span trace.Span, order string, seed *int32) {
	attrs := []attribute.KeyValue{attribute.String("deck.order", order)}
	if seed != nil {
		attrs = append(attrs, attribute.Int("deck.seed", int(*seed)))
	}
	span.SetAttributes(attrs...)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
