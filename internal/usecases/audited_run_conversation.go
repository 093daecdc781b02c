package usecases

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/google/uuid"
)

// AuditedRunConversation records every run it executes.
//
// The record is stored and a completion event is published after the run
// finishes. Audit failures are logged and never change the run outcome.
type AuditedRunConversation struct {
	next         RunConversation
	runRepo      domain.RunRepository
	publisher    domain.RunEventPublisher
	timeProvider domain.CurrentTimeProvider
	logger       *log.Logger
}

// NewAuditedRunConversation creates a new instance of AuditedRunConversation
func NewAuditedRunConversation(
	next RunConversation,
	runRepo domain.RunRepository,
	publisher domain.RunEventPublisher,
	timeProvider domain.CurrentTimeProvider,
	logger *log.Logger,
) AuditedRunConversation {
	return AuditedRunConversation{
		next:         next,
		runRepo:      runRepo,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute runs the wrapped use case and audits its outcome.
func (a AuditedRunConversation) Execute(ctx context.Context, userMessage, model string, opts ...RunOption) (domain.RunResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	runID := uuid.New()
	startedAt := a.timeProvider.Now()

	runOpts := make([]RunOption, 0, len(opts)+1)
	runOpts = append(runOpts, opts...)
	runOpts = append(runOpts, WithRunID(runID))

	result, runErr := a.next.Execute(spanCtx, userMessage, model, runOpts...)

	record := domain.RunRecord{
		ID:          runID,
		Model:       model,
		UserMessage: userMessage,
		StartedAt:   startedAt,
		CompletedAt: a.timeProvider.Now(),
	}
	if runErr != nil {
		record.Status = domain.RunStatus_Failed
		record.ErrorKind = domain.ErrorKindOf(runErr)
		record.ErrorMessage = runErr.Error()
	} else {
		record.Status = domain.RunStatus_Succeeded
		record.Answer = result.Answer
		record.Rounds = result.Rounds
		record.Transcript = result.Transcript
		record.Usage = result.Usage
	}

	// The run may have been cancelled; the audit trail is still written.
	a.audit(context.WithoutCancel(spanCtx), record)

	if telemetry.RecordErrorAndStatus(span, runErr) {
		return domain.RunResult{}, runErr
	}
	return result, nil
}

// audit stores the run record and publishes its completion event.
func (a AuditedRunConversation) audit(ctx context.Context, record domain.RunRecord) {
	if err := record.Validate(); err != nil {
		a.logger.Printf("AuditedRunConversation: run %s not audited: %v", record.ID, err)
		return
	}

	if err := a.runRepo.CreateRun(ctx, record); err != nil {
		a.logger.Printf("AuditedRunConversation: failed to store run %s: %v", record.ID, err)
	}

	if err := a.publisher.PublishRunCompleted(ctx, domain.NewRunCompletedEvent(record)); err != nil {
		a.logger.Printf("AuditedRunConversation: failed to publish run %s: %v", record.ID, err)
	}
}
