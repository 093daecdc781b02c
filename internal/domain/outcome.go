package domain

// OutcomeKind classifies an interpreted model response.
type OutcomeKind string

const (
	OutcomeKind_FinalContent       OutcomeKind = "final_content"
	OutcomeKind_ToolCallsRequested OutcomeKind = "tool_calls_requested"
)

// Outcome is the interpretation of a model response.
type Outcome struct {
	Kind      OutcomeKind
	Content   string
	ToolCalls []ToolCallRequest
}

// InterpretResponse classifies the first choice of a response.
//
// Only the first choice is considered; remaining candidates are ignored.
// Tool calls take priority over content when a choice carries both.
func InterpretResponse(resp ChatResponse) (Outcome, error) {
	if len(resp.Choices) == 0 {
		return Outcome{}, NewEmptyResponseErr("model response has no choices")
	}

	first := resp.Choices[0]
	if len(first.ToolCalls) > 0 {
		calls := make([]ToolCallRequest, len(first.ToolCalls))
		copy(calls, first.ToolCalls)
		return Outcome{
			Kind:      OutcomeKind_ToolCallsRequested,
			ToolCalls: calls,
		}, nil
	}

	if first.Content == "" {
		return Outcome{}, NewEmptyResponseErr("first choice has neither content nor tool calls")
	}

	return Outcome{
		Kind:    OutcomeKind_FinalContent,
		Content: first.Content,
	}, nil
}
