// Package tracing opens child spans for in-process layers. Spans are only
// started below an existing sampled parent, so background work and filtered
// routes stay span-free.
package tracing

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var noopSpan = trace.SpanFromContext(context.Background())

type Scope struct {
	tracer   trace.Tracer
	prefixes []string
}

// NewScope returns a scope backed by the global tracer provider. When prefixes
// are given, only span names starting with one of them are recorded.
func NewScope(instrumentation string, prefixes ...string) Scope {
	return Scope{
		tracer:   otel.Tracer(instrumentation),
		prefixes: prefixes,
	}
}

func (s Scope) Allows(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	if len(s.prefixes) == 0 {
		return true
	}
	for _, prefix := range s.prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (s Scope) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() || !s.Allows(name) {
		return ctx, noopSpan
	}
	if len(attrs) == 0 {
		return s.tracer.Start(ctx, name)
	}
	return s.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}
