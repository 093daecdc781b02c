package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// RecordRunOutcomes aggregates completion events published by finished runs.
type RecordRunOutcomes interface {
	Execute(ctx context.Context, events []domain.RunCompletedEvent) error
}

// RecordRunOutcomesImpl is the implementation of the RecordRunOutcomes use case.
type RecordRunOutcomesImpl struct {
	logger *log.Logger
}

// NewRecordRunOutcomesImpl creates a new instance of RecordRunOutcomesImpl.
func NewRecordRunOutcomesImpl(logger *log.Logger) RecordRunOutcomesImpl {
	return RecordRunOutcomesImpl{
		logger: logger,
	}
}

// Execute records one outcome per event and logs a summary of the batch.
// Events of other types are skipped.
func (r RecordRunOutcomesImpl) Execute(ctx context.Context, events []domain.RunCompletedEvent) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var succeeded, failed int
	for _, e := range events {
		if e.Type != domain.EventType_RUN_COMPLETED {
			continue
		}
		RecordRunOutcome(spanCtx, e.Model, e.Status, e.ErrorKind)
		if e.Status == domain.RunStatus_Succeeded {
			succeeded++
		} else {
			failed++
		}
	}

	span.SetAttributes(
		attribute.Int("runs.succeeded", succeeded),
		attribute.Int("runs.failed", failed),
	)
	r.logger.Printf("RecordRunOutcomes: recorded %d succeeded and %d failed runs", succeeded, failed)
	return nil
}

// InitRecordRunOutcomes is the initializer for the RecordRunOutcomes use case.
type InitRecordRunOutcomes struct {
	Logger *log.Logger `resolve:""`
}

// Initialize registers the RecordRunOutcomes use case in the dependency container.
func (i InitRecordRunOutcomes) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[RecordRunOutcomes](NewRecordRunOutcomesImpl(i.Logger))
	return ctx, nil
}
