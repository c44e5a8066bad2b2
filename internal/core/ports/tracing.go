package ports

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Tracing owns the trace provider handed to the emoji cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=tracing.go -destination=mocks/mock_tracing.go -package=mocks
type Tracing interface {
	// TracerProvider returns the provider spans are started from.
	TracerProvider() trace.TracerProvider
	// SetEnabled toggles reporting of finished spans.
	SetEnabled(enabled bool)
	// Shutdown flushes and stops the provider.
	Shutdown(ctx context.Context) error
}
