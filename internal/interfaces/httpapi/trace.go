package httpapi

import (
	"context"

	"github.com/riskibarqy/football-explorer/internal/platform/tracing"
	"go.opentelemetry.io/otel/trace"
)

// Only handler spans are recorded; middleware and response helpers share the
// request span opened by otelhttp.
var apiSpans = tracing.NewScope("football-explorer/internal/interfaces/httpapi", "httpapi.Handler.")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return apiSpans.Start(ctx, name)
}
