package telemetry

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// InitOpenTelemetry is a component that sets up OpenTelemetry tracing and metrics.
// Each signal is disabled when its endpoint is "-".
type InitOpenTelemetry struct {
	Logger          *log.Logger `resolve:""`
	ServiceName     string      `config:"OTEL_SERVICE_NAME" default:"toolchat"`
	ServiceVersion  string      `config:"OTEL_SERVICE_VERSION" default:"dev"`
	Environment     string      `config:"DEPLOYMENT_ENVIRONMENT" default:"local"`
	TracesEndpoint  string      `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string      `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	// Percentage of root traces sampled
	TracesSamplePercent   int `config:"OTEL_TRACES_SAMPLE_PERCENT" default:"100"`
	MetricsExportInterval int `config:"OTEL_METRIC_EXPORT_INTERVAL_SECONDS" default:"5"`

	tp *sdktrace.TracerProvider
	se sdktrace.SpanExporter
	mp *sdkmetric.MeterProvider
	me sdkmetric.Exporter
}

// Initialize sets up OpenTelemetry tracing and exporting.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	var err error
	// Set up propagator.
	prop := newPropagator()
	otel.SetTextMapPropagator(prop)

	// Set up resource.
	res, err := newAppResource(ctx, o.ServiceName, o.ServiceVersion, o.Environment)
	if err != nil {
		return ctx, err
	}

	if o.TracesEndpoint != "-" {
		// Set up trace provider.
		o.tp, o.se, err = newTracerProvider(ctx, res, o.TracesSamplePercent)
		if err != nil {
			return ctx, err
		}
		otel.SetTracerProvider(o.tp)
	}

	if o.MetricsEndpoint != "-" {
		// Set up meter provider.
		o.mp, o.me, err = newMeterProvider(ctx, res, time.Duration(o.MetricsExportInterval)*time.Second)
		if err != nil {
			return ctx, err
		}
		otel.SetMeterProvider(o.mp)
	}

	o.Logger.Printf("InitOpenTelemetry: %s %s (%s) traces=%t metrics=%t",
		o.ServiceName, o.ServiceVersion, o.Environment, o.tp != nil, o.mp != nil)
	return ctx, nil
}

// Close flushes and shuts down the enabled providers and exporters.
func (o *InitOpenTelemetry) Close() {
	if o.tp == nil && o.mp == nil {
		return
	}

	cancelCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if o.tp != nil {
		if err := o.tp.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("InitOpenTelemetry: error shutting down tracer provider: %v", err)
		}
		if err := o.se.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("InitOpenTelemetry: error shutting down span exporter: %v", err)
		}
	}
	if o.mp != nil {
		if err := o.mp.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("InitOpenTelemetry: error shutting down meter provider: %v", err)
		}
		if err := o.me.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("InitOpenTelemetry: error shutting down meter exporter: %v", err)
		}
	}
}

// InitHttpClient initializes the outbound HTTP client used by the chat transport.
// It retries transient failures and is instrumented with OpenTelemetry.
type InitHttpClient struct {
	Logger       *log.Logger `resolve:""`
	RetryMax     int         `config:"HTTP_CLIENT_RETRY_MAX" default:"3"`
	RetryWaitMax int         `config:"HTTP_CLIENT_RETRY_WAIT_MAX_SECONDS" default:"5"`
	// Upper bound for a single model request including retries
	Timeout int `config:"HTTP_CLIENT_TIMEOUT_SECONDS" default:"120"`
}

func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	client := newHttpClient(i.Logger, i.RetryMax, time.Duration(i.RetryWaitMax)*time.Second)
	if i.Timeout > 0 {
		client.Timeout = time.Duration(i.Timeout) * time.Second
	}
	depend.Register(client)
	return ctx, nil
}

func newHttpClient(logger *log.Logger, retryMax int, retryWaitMax time.Duration) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.RetryMax = retryMax
	retryClient.CheckRetry = dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	retryClient.Logger = logger
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	stdClient := retryClient.StandardClient()
	stdClient.Transport = otelhttp.NewTransport(
		stdClient.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)
	return stdClient
}

// newPropagator creates a new composite text map propagator.
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newAppResource(ctx context.Context, serviceName, version, environment string) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
			semconv.DeploymentEnvironmentName(environment),
		),
		resource.WithHost(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// dontRetry500StatusPolicy wraps a retryablehttp policy so that 500 responses
// are returned to the caller immediately. A model backend answering 500 has
// usually rejected the payload and will reject it again.
func dontRetry500StatusPolicy(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		// do not retry on context.Canceled or context.DeadlineExceeded
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		if resp != nil && resp.StatusCode == http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}
