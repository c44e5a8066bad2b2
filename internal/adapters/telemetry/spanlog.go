// Package telemetry reports OpenTelemetry spans of the emoji cache through the logger.
package telemetry

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/emojilens/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*SpanLogger)(nil)

// SpanLogger implements sdktrace.SpanProcessor by logging one line per finished span.
// It is silent until enabled.
type SpanLogger struct {
	logger  ports.Logger
	enabled atomic.Bool
}

// NewSpanLogger returns a disabled SpanLogger writing to logger.
func NewSpanLogger(logger ports.Logger) *SpanLogger {
	return &SpanLogger{logger: logger}
}

// SetEnabled toggles logging.
func (s *SpanLogger) SetEnabled(enabled bool) {
	s.enabled.Store(enabled)
}

// OnStart does nothing.
func (s *SpanLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its attributes and its duration.
func (s *SpanLogger) OnEnd(span sdktrace.ReadOnlySpan) {
	if !s.enabled.Load() || !span.SpanContext().IsValid() {
		return
	}
	s.logger.Info(FormatSpan(span.Name(), span.Attributes(), span.EndTime().Sub(span.StartTime()), span.Status()))
}

// ForceFlush does nothing.
func (s *SpanLogger) ForceFlush(context.Context) error {
	return nil
}

// Shutdown does nothing.
func (s *SpanLogger) Shutdown(context.Context) error {
	return nil
}

// FormatSpan renders a finished span as "name key=value ... (duration)".
func FormatSpan(name string, attrs []attribute.KeyValue, d time.Duration, status sdktrace.Status) string {
	var b strings.Builder
	b.WriteString(name)
	for _, kv := range attrs {
		fmt.Fprintf(&b, " %s=%s", kv.Key, kv.Value.Emit())
	}
	if status.Code == codes.Error && status.Description != "" {
		fmt.Fprintf(&b, " error=%q", status.Description)
	}
	fmt.Fprintf(&b, " (%s)", d.Round(time.Millisecond))
	return b.String()
}
