package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RunEventPublisher implements domain.RunEventPublisher using Google Cloud Pub/Sub
type RunEventPublisher struct {
	client *pubsubV2.Client
	topic  string
}

// NewRunEventPublisher creates a new instance of RunEventPublisher
func NewRunEventPublisher(client *pubsubV2.Client, topic string) RunEventPublisher {
	return RunEventPublisher{client: client, topic: topic}
}

// PublishRunCompleted publishes the event as JSON and waits for the server ack.
func (p RunEventPublisher) PublishRunCompleted(ctx context.Context, event domain.RunCompletedEvent) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("run_id", event.RunID.String()),
			attribute.String("event_type", string(event.Type)),
			attribute.String("topic", p.topic),
		),
	)
	defer span.End()

	payload, err := json.Marshal(event)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to marshal run event: %w", err)
	}

	result := p.client.Publisher(p.topic).Publish(spanCtx, &pubsubV2.Message{
		Data: payload,
		Attributes: map[string]string{
			"event_type": string(event.Type),
			"run_id":     event.RunID.String(),
			"status":     string(event.Status),
		},
	})

	_, err = result.Get(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to publish run event: %w", err)
	}
	return nil
}

// InitRunEventPublisher initializes the domain.RunEventPublisher implementation
type InitRunEventPublisher struct {
	Client *pubsubV2.Client `resolve:""`
	Topic  string           `config:"PUBSUB_RUNS_TOPIC" default:"orchestration-runs"`
}

// Initialize registers the RunEventPublisher in the dependency container
func (i InitRunEventPublisher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.RunEventPublisher](NewRunEventPublisher(i.Client, i.Topic))
	return ctx, nil
}
