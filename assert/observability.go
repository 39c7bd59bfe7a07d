package assert

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/LerianStudio/lib-cron/assert"

var (
	counterOnce    sync.Once
	failureCounter metric.Int64Counter
)

func failures() metric.Int64Counter {
	counterOnce.Do(func() {
		meter := otel.Meter(instrumentationName)

		counter, err := meter.Int64Counter(
			"assert.failures",
			metric.WithDescription("Count of failed invariant checks."),
		)
		if err == nil {
			failureCounter = counter
		}
	})

	return failureCounter
}

func recordAssertionObservability(ctx context.Context, assertion, message, component, operation string) {
	attrs := []attribute.KeyValue{
		attribute.String("assertion", assertion),
		attribute.String("component", component),
		attribute.String("operation", operation),
	}

	if counter := failures(); counter != nil {
		counter.Add(ctx, 1, metric.WithAttributes(attrs...))
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.AddEvent("assertion failed", trace.WithAttributes(attrs...))
		span.SetStatus(codes.Error, message)
	}
}
