package http

import (
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
)

// CreateRunReq is the body of POST /api/v1/runs.
//
// A nil Tools offers every registered tool; an empty list offers none.
type CreateRunReq struct {
	Message     string         `json:"message"`
	Model       string         `json:"model"`
	Tools       *[]string      `json:"tools,omitempty"`
	ToolChoice  *ToolChoiceReq `json:"tool_choice,omitempty"`
	MaxRounds   *int           `json:"max_rounds,omitempty"`
	Temperature *float64       `json:"temperature,omitempty"`
}

// ToolChoiceReq selects the tool policy. Function is required with mode "function".
type ToolChoiceReq struct {
	Mode     string `json:"mode"`
	Function string `json:"function,omitempty"`
}

type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

type ConversationEntry struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// RunResp is the outcome of a successful run.
type RunResp struct {
	RunID      string              `json:"run_id"`
	Answer     string              `json:"answer"`
	Rounds     int                 `json:"rounds"`
	Transcript []ConversationEntry `json:"transcript"`
	Usage      Usage               `json:"usage"`
}

// RunRecordResp is the stored audit record of a run.
type RunRecordResp struct {
	ID          string              `json:"id"`
	Model       string              `json:"model"`
	UserMessage string              `json:"user_message"`
	Status      string              `json:"status"`
	Answer      string              `json:"answer,omitempty"`
	Error       *Error              `json:"error,omitempty"`
	Rounds      int                 `json:"rounds"`
	Transcript  []ConversationEntry `json:"transcript"`
	Usage       Usage               `json:"usage"`
	StartedAt   time.Time           `json:"started_at"`
	CompletedAt time.Time           `json:"completed_at"`
}

type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

type ListToolsResp struct {
	Items []Tool `json:"items"`
}

func toToolChoice(req ToolChoiceReq) (domain.ToolChoice, error) {
	switch mode := domain.ToolChoiceMode(req.Mode); mode {
	case domain.ToolChoiceMode_Auto, domain.ToolChoiceMode_None, domain.ToolChoiceMode_Required:
		return domain.ToolChoice{Mode: mode}, nil
	case domain.ToolChoiceMode_Function:
		if req.Function == "" {
			return domain.ToolChoice{}, domain.NewValidationErr("tool_choice.function is required with mode \"function\"")
		}
		return domain.ForcedToolChoice(req.Function), nil
	default:
		return domain.ToolChoice{}, domain.NewValidationErr("unknown tool_choice mode: " + req.Mode)
	}
}

func toTranscript(entries []domain.ConversationEntry) []ConversationEntry {
	transcript := make([]ConversationEntry, 0, len(entries))
	for _, e := range entries {
		entry := ConversationEntry{
			Role:       string(e.Role),
			Content:    e.Content,
			ToolCallID: e.ToolCallID,
		}
		for _, c := range e.ToolCalls {
			entry.ToolCalls = append(entry.ToolCalls, ToolCall(c))
		}
		transcript = append(transcript, entry)
	}
	return transcript
}

func toUsage(u domain.ChatUsage) Usage {
	return Usage{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		TotalTokens:      u.TotalTokens,
	}
}

func toRunResp(r domain.RunResult) RunResp {
	return RunResp{
		RunID:      r.RunID.String(),
		Answer:     r.Answer,
		Rounds:     r.Rounds,
		Transcript: toTranscript(r.Transcript),
		Usage:      toUsage(r.Usage),
	}
}

func toRunRecordResp(r domain.RunRecord) RunRecordResp {
	resp := RunRecordResp{
		ID:          r.ID.String(),
		Model:       r.Model,
		UserMessage: r.UserMessage,
		Status:      string(r.Status),
		Answer:      r.Answer,
		Rounds:      r.Rounds,
		Transcript:  toTranscript(r.Transcript),
		Usage:       toUsage(r.Usage),
		StartedAt:   r.StartedAt,
		CompletedAt: r.CompletedAt,
	}
	if r.Status == domain.RunStatus_Failed {
		resp.Error = &Error{
			Code:    string(r.ErrorKind),
			Message: r.ErrorMessage,
		}
	}
	return resp
}

func toTool(d domain.ToolDescriptor) Tool {
	return Tool{
		Name:        d.Name,
		Description: d.Description,
		Parameters:  d.Parameters,
	}
}
