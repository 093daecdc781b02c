package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("")
)

// ErrorKindKey is the span attribute carrying the kind of a domain error.
const ErrorKindKey = attribute.Key("error.kind")

// SpanNameFormatter names HTTP server spans after the matched route pattern.
func SpanNameFormatter(_ string, r *http.Request) string {
	return getHttpRoute(r)
}

func getHttpRoute(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
}

// Start a new span named after the calling function.
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, getCallerName(2), opts...)
}

// RecordErrorAndStatus records an error in the span and sets the status to Error.
// Domain errors also tag the span with their kind.
// Returns true if an error was recorded, false otherwise.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err == nil {
		span.SetStatus(codes.Ok, "OK")
		return false
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	var kinded interface{ Kind() domain.ErrorKind }
	if errors.As(err, &kinded) {
		span.SetAttributes(ErrorKindKey.String(string(kinded.Kind())))
	}
	return true
}

// Middleware returns an HTTP middleware that instruments handlers with OpenTelemetry.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithMetricAttributesFn(
			WithHttpMetricAttributes,
		),
	)
}

// getCallerName retrieves the name of the function at the specified stack depth.
// Anonymous functions keep the name of their enclosing function.
func getCallerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	parts := strings.Split(fn.Name(), "/")
	name := parts[len(parts)-1]
	if i := strings.Index(name, ".func"); i > 0 {
		name = name[:i]
	}

	return strings.ReplaceAll(name, ".", "::")
}

// newTracerProvider creates a tracer provider exporting over OTLP HTTP.
// samplePercent applies to root spans; children follow their parent.
func newTracerProvider(ctx context.Context, res *resource.Resource, samplePercent int) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	otlpExporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(otlpExporter,
			sdktrace.WithBatchTimeout(time.Second),
		),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(newSampler(samplePercent)),
	)
	return tracerProvider, otlpExporter, nil
}

func newSampler(samplePercent int) sdktrace.Sampler {
	switch {
	case samplePercent >= 100:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case samplePercent <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(float64(samplePercent) / 100))
	}
}
