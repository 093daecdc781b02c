package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
)

var runFields = []string{
	"id",
	"model",
	"user_message",
	"status",
	"answer",
	"error_kind",
	"error_message",
	"rounds",
	"transcript",
	"prompt_tokens",
	"completion_tokens",
	"total_tokens",
	"started_at",
	"completed_at",
}

// RunRepository is a PostgreSQL implementation of domain.RunRepository.
type RunRepository struct {
	sb squirrel.StatementBuilderType
}

// NewRunRepository creates a new instance of RunRepository.
func NewRunRepository(br squirrel.BaseRunner) RunRepository {
	return RunRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// CreateRun inserts a completed run record.
func (r RunRepository) CreateRun(ctx context.Context, record domain.RunRecord) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	transcript, err := marshalTranscript(record.Transcript)
	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	_, err = r.sb.
		Insert("orchestration_runs").
		Columns(runFields...).
		Values(
			record.ID,
			record.Model,
			record.UserMessage,
			string(record.Status),
			record.Answer,
			string(record.ErrorKind),
			record.ErrorMessage,
			record.Rounds,
			transcript,
			record.Usage.PromptTokens,
			record.Usage.CompletionTokens,
			record.Usage.TotalTokens,
			record.StartedAt,
			record.CompletedAt,
		).
		ExecContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	return nil
}

// GetRun retrieves a run record by id.
func (r RunRepository) GetRun(ctx context.Context, id uuid.UUID) (domain.RunRecord, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var (
		record     domain.RunRecord
		transcript []byte
	)
	err := r.sb.
		Select(runFields...).
		From("orchestration_runs").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(
			&record.ID,
			&record.Model,
			&record.UserMessage,
			&record.Status,
			&record.Answer,
			&record.ErrorKind,
			&record.ErrorMessage,
			&record.Rounds,
			&transcript,
			&record.Usage.PromptTokens,
			&record.Usage.CompletionTokens,
			&record.Usage.TotalTokens,
			&record.StartedAt,
			&record.CompletedAt,
		)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RunRecord{}, false, nil
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.RunRecord{}, false, err
	}

	if len(transcript) > 0 {
		if err := json.Unmarshal(transcript, &record.Transcript); telemetry.RecordErrorAndStatus(span, err) {
			return domain.RunRecord{}, false, fmt.Errorf("failed to unmarshal transcript: %w", err)
		}
	}

	return record, true, nil
}

// marshalTranscript encodes the transcript as JSONB. Failed runs have none and
// are stored as NULL.
func marshalTranscript(transcript []domain.ConversationEntry) ([]byte, error) {
	if len(transcript) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(transcript)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transcript: %w", err)
	}
	return b, nil
}

// InitRunRepository is a Symbiont initializer for RunRepository.
type InitRunRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the RunRepository in the dependency container.
func (i InitRunRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.RunRepository](NewRunRepository(i.DB))
	return ctx, nil
}
