package domain

import (
	"context"
)

// ToolChoiceMode is the tool selection policy sent to the model.
type ToolChoiceMode string

const (
	ToolChoiceMode_Auto     ToolChoiceMode = "auto"
	ToolChoiceMode_None     ToolChoiceMode = "none"
	ToolChoiceMode_Required ToolChoiceMode = "required"
	ToolChoiceMode_Function ToolChoiceMode = "function"
)

// ToolChoice tells the model whether and which tools it may call.
// FunctionName is only meaningful with ToolChoiceMode_Function.
type ToolChoice struct {
	Mode         ToolChoiceMode
	FunctionName string
}

// AutoToolChoice lets the model decide whether to call tools.
func AutoToolChoice() ToolChoice {
	return ToolChoice{Mode: ToolChoiceMode_Auto}
}

// ForcedToolChoice forces the model to call the named tool.
func ForcedToolChoice(name string) ToolChoice {
	return ToolChoice{Mode: ToolChoiceMode_Function, FunctionName: name}
}

// Validate checks the tool choice against the offered catalog.
func (c ToolChoice) Validate(catalog []ToolDescriptor) error {
	switch c.Mode {
	case ToolChoiceMode_Auto, ToolChoiceMode_None, ToolChoiceMode_Required:
		return nil
	case ToolChoiceMode_Function:
		for _, d := range catalog {
			if d.Name == c.FunctionName {
				return nil
			}
		}
		return NewValidationErr("forced tool " + c.FunctionName + " is not in the tool catalog")
	default:
		return NewValidationErr("unsupported tool choice mode " + string(c.Mode))
	}
}

// ChatRequest is the request document sent to the chat transport.
type ChatRequest struct {
	Model       string
	Messages    []ConversationEntry
	Tools       []ToolDescriptor
	ToolChoice  *ToolChoice
	Temperature *float64
}

// ChatUsage contains token usage reported by the model.
type ChatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add returns the sum of two usages.
func (u ChatUsage) Add(other ChatUsage) ChatUsage {
	return ChatUsage{
		PromptTokens:     u.PromptTokens + other.PromptTokens,
		CompletionTokens: u.CompletionTokens + other.CompletionTokens,
		TotalTokens:      u.TotalTokens + other.TotalTokens,
	}
}

// ChatChoice is one candidate message returned by the model.
type ChatChoice struct {
	Index        int
	FinishReason string
	Content      string
	ToolCalls    []ToolCallRequest
}

// ChatResponse is the response document returned by the chat transport.
type ChatResponse struct {
	Choices []ChatChoice
	Usage   ChatUsage
}

// ChatTransport sends one request to the remote chat endpoint.
type ChatTransport interface {
	// Send executes a single non-streaming chat completion.
	Send(ctx context.Context, req ChatRequest) (ChatResponse, error)
}
