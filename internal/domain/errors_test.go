package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindOf(t *testing.T) {
	cause := errors.New("boom")

	tests := map[string]struct {
		err          error
		expectedKind ErrorKind
	}{
		"validation":        {err: NewValidationErr("bad"), expectedKind: ErrorKind_Validation},
		"not-found":         {err: NewNotFoundErr("missing"), expectedKind: ErrorKind_NotFound},
		"serialization":     {err: NewSerializationErr("enc", cause), expectedKind: ErrorKind_Serialization},
		"empty-response":    {err: NewEmptyResponseErr("none"), expectedKind: ErrorKind_EmptyResponse},
		"unknown-tool":      {err: NewUnknownToolErr("x"), expectedKind: ErrorKind_UnknownTool},
		"argument-decode":   {err: NewArgumentDecodeErr("x", cause), expectedKind: ErrorKind_ArgumentDecode},
		"handler":           {err: NewHandlerErr("x", cause), expectedKind: ErrorKind_Handler},
		"transport":         {err: NewTransportErr(cause), expectedKind: ErrorKind_Transport},
		"tool-execution":    {err: NewToolExecutionErr("1", "x", NewUnknownToolErr("x")), expectedKind: ErrorKind_ToolExecution},
		"cancelled":         {err: NewCancelledErr(context.Canceled), expectedKind: ErrorKind_Cancelled},
		"round-limit":       {err: NewRoundLimitExceededErr(3), expectedKind: ErrorKind_RoundLimitExceeded},
		"wrapped-by-fmt":    {err: fmt.Errorf("outer: %w", NewTransportErr(cause)), expectedKind: ErrorKind_Transport},
		"plain-error":       {err: cause, expectedKind: ErrorKind_Unknown},
		"nil-error-unknown": {err: nil, expectedKind: ErrorKind_Unknown},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKind, ErrorKindOf(tt.err))
		})
	}
}

func TestToolExecutionErr_Unwrap(t *testing.T) {
	err := NewToolExecutionErr("call-1", "lookup", NewUnknownToolErr("lookup"))

	var unknownErr *UnknownToolErr
	assert.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "lookup", unknownErr.ToolName)

	var execErr *ToolExecutionErr
	assert.ErrorAs(t, err, &execErr)
	assert.Equal(t, "call-1", execErr.ToolCallID)
	assert.Equal(t, `tool call "call-1" (lookup) failed: unknown tool "lookup"`, err.Error())
}

func TestCancelledErr_Unwrap(t *testing.T) {
	err := NewCancelledErr(context.DeadlineExceeded)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "run cancelled: context deadline exceeded", err.Error())
}

func TestRoundLimitExceededErr(t *testing.T) {
	err := NewRoundLimitExceededErr(4)
	assert.Equal(t, 4, err.MaxRounds)
	assert.Equal(t, "round limit of 4 exceeded", err.Error())
}
