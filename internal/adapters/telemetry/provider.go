package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/emojilens/internal/core/ports"
)

var _ ports.Tracing = (*Tracing)(nil)

// Tracing implements ports.Tracing with an SDK provider feeding a SpanLogger.
type Tracing struct {
	provider *sdktrace.TracerProvider
	spans    *SpanLogger
}

// NewTracing creates a provider whose finished spans go to logger once enabled.
func NewTracing(logger ports.Logger) *Tracing {
	spans := NewSpanLogger(logger)
	return &Tracing{
		provider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)),
		spans:    spans,
	}
}

// TracerProvider returns the SDK provider.
func (t *Tracing) TracerProvider() trace.TracerProvider {
	return t.provider
}

// SetEnabled toggles span logging.
func (t *Tracing) SetEnabled(enabled bool) {
	t.spans.SetEnabled(enabled)
}

// Shutdown stops the provider.
func (t *Tracing) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}
