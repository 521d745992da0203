// Package otel wires OpenTelemetry tracing for the sanbase processes.
package otel

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/santiment/sanbase/internal/platform/config"
)

const (
	// EnabledEnv switches tracing off when set to "false".
	EnabledEnv = "SANBASE_OTEL_ENABLED"
	// EndpointEnv is the OTLP/HTTP collector URL; tracing is off when empty.
	EndpointEnv = "SANBASE_OTEL_ENDPOINT"
	// SampleRatioEnv sets the root span sampling ratio in [0, 1].
	SampleRatioEnv = "SANBASE_OTEL_SAMPLE_RATIO"
)

// Settings is the tracing configuration read from the environment.
type Settings struct {
	Enabled     string  `env:"OTEL_ENABLED"`
	Endpoint    string  `env:"OTEL_ENDPOINT"`
	SampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// Active reports whether spans should be exported.
func (s Settings) Active() bool {
	return !strings.EqualFold(strings.TrimSpace(s.Enabled), "false") && strings.TrimSpace(s.Endpoint) != ""
}

// LoadSettings reads the SANBASE_OTEL_* variables.
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := config.ParseEnv(&settings); err != nil {
		return Settings{}, fmt.Errorf("parse otel env: %w", err)
	}
	if settings.SampleRatio < 0 || settings.SampleRatio > 1 {
		return Settings{}, fmt.Errorf("%s must be within [0, 1], got %v", SampleRatioEnv, settings.SampleRatio)
	}
	return settings, nil
}

// Setup registers a global tracer provider for serviceName when tracing is
// active and returns its flush function. Inactive tracing yields a no-op.
func Setup(ctx context.Context, serviceName string) (func(context.Context) error, error) {
	noop := func(context.Context) error { return nil }

	settings, err := LoadSettings()
	if err != nil {
		return noop, err
	}
	if !settings.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(strings.TrimSpace(settings.Endpoint)))
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, fmt.Errorf("otel resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(settings.SampleRatio))),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return provider.Shutdown, nil
}
