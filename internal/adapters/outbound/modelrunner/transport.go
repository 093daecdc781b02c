package modelrunner

import (
	"context"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"go.opentelemetry.io/otel/attribute"
)

// ChatTransport adapts CompletionsClient to the domain.ChatTransport interface.
type ChatTransport struct {
	client CompletionsClient
}

// NewChatTransport creates a new ChatTransport.
func NewChatTransport(client CompletionsClient) ChatTransport {
	return ChatTransport{client: client}
}

// Send implements domain.ChatTransport.
func (t ChatTransport) Send(ctx context.Context, req domain.ChatRequest) (domain.ChatResponse, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	span.SetAttributes(
		attribute.String("llm.model", req.Model),
		attribute.Int("llm.messages", len(req.Messages)),
		attribute.Int("llm.tools", len(req.Tools)),
	)

	started := time.Now()
	resp, err := t.client.Complete(spanCtx, toChatRequest(req))
	RecordLLMRequestDuration(spanCtx, req.Model, started, err == nil)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.ChatResponse{}, err
	}

	return fromChatResponse(resp), nil
}

func toChatRequest(req domain.ChatRequest) ChatRequest {
	adapterReq := ChatRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		Messages:    make([]ChatMessage, len(req.Messages)),
	}

	for i, entry := range req.Messages {
		msg := ChatMessage{
			Role:       string(entry.Role),
			Content:    entry.Content,
			ToolCallID: entry.ToolCallID,
		}
		for _, call := range entry.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, ToolCall{
				ID:   call.ID,
				Type: "function",
				Function: ToolCallFunction{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			})
		}
		adapterReq.Messages[i] = msg
	}

	if len(req.Tools) > 0 {
		adapterReq.Tools = make([]Tool, len(req.Tools))
		for i, d := range req.Tools {
			adapterReq.Tools[i] = Tool{
				Type: "function",
				Function: ToolFunc{
					Name:        d.Name,
					Description: d.Description,
					Parameters:  d.Parameters,
				},
			}
		}
	}

	if req.ToolChoice != nil {
		choice := ToolChoice{Mode: string(req.ToolChoice.Mode)}
		if req.ToolChoice.Mode == domain.ToolChoiceMode_Function {
			choice.Function = req.ToolChoice.FunctionName
		}
		adapterReq.ToolChoice = &choice
	}

	return adapterReq
}

func fromChatResponse(resp *ChatResponse) domain.ChatResponse {
	out := domain.ChatResponse{
		Choices: make([]domain.ChatChoice, len(resp.Choices)),
	}

	for i, c := range resp.Choices {
		choice := domain.ChatChoice{
			Index:        c.Index,
			FinishReason: c.FinishReason,
			Content:      c.Message.Content,
		}
		for _, tc := range c.Message.ToolCalls {
			choice.ToolCalls = append(choice.ToolCalls, domain.ToolCallRequest{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			})
		}
		out.Choices[i] = choice
	}

	if resp.Usage != nil {
		out.Usage = domain.ChatUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		}
	}
	return out
}

// InitChatTransport initializes the ChatTransport dependency.
type InitChatTransport struct {
	HttpClient      *http.Client `resolve:""`
	ModelHost       string       `config:"LLM_MODEL_HOST"`
	CompletionsPath string       `config:"LLM_COMPLETIONS_PATH" default:"/v1/chat/completions"`
	APIKey          string       `config:"LLM_API_KEY" default:"-"`
}

// Initialize registers the domain.ChatTransport.
func (i InitChatTransport) Initialize(ctx context.Context) (context.Context, error) {
	apiKey := i.APIKey
	if apiKey == "-" {
		apiKey = ""
	}
	client, err := NewCompletionsClient(i.ModelHost, i.CompletionsPath, apiKey, i.HttpClient)
	if err != nil {
		return ctx, err
	}
	depend.Register[domain.ChatTransport](NewChatTransport(client))
	return ctx, nil
}
