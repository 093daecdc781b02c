package modelrunner

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter              = otel.Meter("modelrunner")
	LLMRequestDuration metric.Float64Histogram
)

func init() {
	var err error
	LLMRequestDuration, err = meter.Float64Histogram(
		"llm_request_duration_seconds",
		metric.WithDescription("Duration of chat completion requests"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMRequestDuration records how long a chat completion request took.
func RecordLLMRequestDuration(ctx context.Context, model string, started time.Time, success bool) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	LLMRequestDuration.Record(ctx, time.Since(started).Seconds(), metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("outcome", outcome),
	))
}
