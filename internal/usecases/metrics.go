package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter               = otel.Meter("usecases")
	LLMTokensUsed       metric.Int64Counter
	OrchestrationRounds metric.Int64Histogram
	ToolCalls           metric.Int64Counter
	RunOutcomes         metric.Int64Counter
)

func init() {
	var err error
	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}

	// Rounds (model requests) needed to finish a run
	OrchestrationRounds, err = meter.Int64Histogram(
		"orchestration_rounds",
		metric.WithDescription("Number of model requests per orchestration run"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 4, 6, 8, 12, 16),
	)
	if err != nil {
		panic(err)
	}

	ToolCalls, err = meter.Int64Counter(
		"tool_calls_total",
		metric.WithDescription("Total tool calls dispatched"),
	)
	if err != nil {
		panic(err)
	}

	RunOutcomes, err = meter.Int64Counter(
		"orchestration_runs_total",
		metric.WithDescription("Total finished orchestration runs by status"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}

// RecordRunCompleted records the rounds and token usage of a finished run.
func RecordRunCompleted(ctx context.Context, rounds int, usage domain.ChatUsage) {
	OrchestrationRounds.Record(ctx, int64(rounds))
	RecordLLMTokensUsed(ctx, usage.PromptTokens, usage.CompletionTokens)
}

// RecordToolCall records one dispatched tool call and whether it succeeded.
func RecordToolCall(ctx context.Context, toolName string, success bool) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	ToolCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool", toolName),
		attribute.String("outcome", outcome),
	))
}

// RecordRunOutcome records one finished run reported by a completion event.
func RecordRunOutcome(ctx context.Context, model string, status domain.RunStatus, kind domain.ErrorKind) {
	RunOutcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("status", string(status)),
		attribute.String("error_kind", string(kind)),
	))
}
