package usecases

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRecordRunOutcomesImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		events      []domain.RunCompletedEvent
		expectedLog string
	}{
		"mixed-batch": {
			events: []domain.RunCompletedEvent{
				{Type: domain.EventType_RUN_COMPLETED, RunID: uuid.New(), Model: "ai/gpt-oss", Status: domain.RunStatus_Succeeded, Rounds: 2},
				{Type: domain.EventType_RUN_COMPLETED, RunID: uuid.New(), Model: "ai/gpt-oss", Status: domain.RunStatus_Failed, ErrorKind: domain.ErrorKind_Transport},
				{Type: domain.EventType_RUN_COMPLETED, RunID: uuid.New(), Model: "ai/qwen3", Status: domain.RunStatus_Succeeded, Rounds: 1},
			},
			expectedLog: "RecordRunOutcomes: recorded 2 succeeded and 1 failed runs\n",
		},
		"unknown-event-types-are-skipped": {
			events: []domain.RunCompletedEvent{
				{Type: "RUN.STARTED", RunID: uuid.New(), Model: "ai/gpt-oss"},
			},
			expectedLog: "RecordRunOutcomes: recorded 0 succeeded and 0 failed runs\n",
		},
		"empty-batch": {
			expectedLog: "RecordRunOutcomes: recorded 0 succeeded and 0 failed runs\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			uc := NewRecordRunOutcomesImpl(log.New(&buf, "", 0))

			err := uc.Execute(context.Background(), tt.events)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedLog, buf.String())
		})
	}
}

func TestInitRecordRunOutcomes_Initialize(t *testing.T) {
	i := InitRecordRunOutcomes{Logger: log.Default()}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	uc, err := depend.Resolve[RecordRunOutcomes]()
	assert.NoError(t, err)
	assert.NotNil(t, uc)
}
