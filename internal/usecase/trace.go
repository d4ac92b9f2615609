package usecase

import (
	"context"

	"github.com/riskibarqy/football-explorer/internal/platform/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseSpans = tracing.NewScope("football-explorer/internal/usecase")

func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return usecaseSpans.Start(ctx, name, attrs...)
}

func countryAttr(country string) attribute.KeyValue {
	return attribute.String("football.country", country)
}
