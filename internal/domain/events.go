package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	// EventType_RUN_COMPLETED represents the event when an orchestration run finishes.
	EventType_RUN_COMPLETED EventType = "RUN.COMPLETED"
)

// RunCompletedEvent is published once per finished orchestration run.
type RunCompletedEvent struct {
	Type      EventType `json:"type"`
	RunID     uuid.UUID `json:"run_id"`
	Model     string    `json:"model"`
	Status    RunStatus `json:"status"`
	ErrorKind ErrorKind `json:"error_kind,omitempty"`
	Rounds    int       `json:"rounds"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRunCompletedEvent builds the completion event for a run record.
func NewRunCompletedEvent(record RunRecord) RunCompletedEvent {
	return RunCompletedEvent{
		Type:      EventType_RUN_COMPLETED,
		RunID:     record.ID,
		Model:     record.Model,
		Status:    record.Status,
		ErrorKind: record.ErrorKind,
		Rounds:    record.Rounds,
		CreatedAt: record.CompletedAt,
	}
}

// RunEventPublisher defines the interface for publishing run events.
type RunEventPublisher interface {
	PublishRunCompleted(ctx context.Context, event RunCompletedEvent) error
}
