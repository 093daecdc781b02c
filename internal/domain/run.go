package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RunResult is the outcome of a successful orchestration run.
type RunResult struct {
	RunID      uuid.UUID
	Answer     string
	Transcript []ConversationEntry
	Rounds     int
	Usage      ChatUsage
}

// RunStatus represents the terminal status of an orchestration run.
type RunStatus string

const (
	RunStatus_Succeeded RunStatus = "SUCCEEDED"
	RunStatus_Failed    RunStatus = "FAILED"
)

// RunRecord is the audit record of one orchestration run.
type RunRecord struct {
	ID           uuid.UUID
	Model        string
	UserMessage  string
	Status       RunStatus
	Answer       string
	ErrorKind    ErrorKind
	ErrorMessage string
	Rounds       int
	Transcript   []ConversationEntry
	Usage        ChatUsage
	StartedAt    time.Time
	CompletedAt  time.Time
}

// Validate checks the record before it is stored.
func (r RunRecord) Validate() error {
	if r.ID == uuid.Nil {
		return NewValidationErr("run id cannot be empty")
	}
	if r.Model == "" {
		return NewValidationErr("run model cannot be empty")
	}
	switch r.Status {
	case RunStatus_Succeeded:
		if r.ErrorKind != "" {
			return NewValidationErr("succeeded run cannot carry an error kind")
		}
	case RunStatus_Failed:
		if len(r.Transcript) > 0 {
			return NewValidationErr("failed run cannot carry a transcript")
		}
	default:
		return NewValidationErr("invalid run status")
	}
	if r.CompletedAt.Before(r.StartedAt) {
		return NewValidationErr("run cannot complete before it starts")
	}
	return nil
}

// RunRepository stores orchestration run audit records.
type RunRepository interface {
	// CreateRun persists a completed run record.
	CreateRun(ctx context.Context, record RunRecord) error
	// GetRun retrieves a run record by id. The boolean is false when no record exists.
	GetRun(ctx context.Context, id uuid.UUID) (RunRecord, bool, error)
}
