package usecases

import (
	"context"
	"log"
	"strings"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	DEFAULT_MAX_ROUNDS       = 8
	DEFAULT_TOOL_CONCURRENCY = 4
)

// RunParams holds optional parameters for RunConversation execution.
type RunParams struct {
	RunID       uuid.UUID
	Catalog     []domain.ToolDescriptor
	Dispatcher  domain.ToolDispatcher
	ToolChoice  domain.ToolChoice
	MaxRounds   int
	Temperature *float64

	catalogSet bool
}

// RunOption defines a functional option for configuring RunParams.
type RunOption func(*RunParams)

// WithRunID sets the identifier reported in the run result.
func WithRunID(id uuid.UUID) RunOption {
	return func(params *RunParams) {
		params.RunID = id
	}
}

// WithToolCatalog restricts the tools offered to the model.
// Calling it with no descriptors offers no tools at all.
func WithToolCatalog(catalog ...domain.ToolDescriptor) RunOption {
	return func(params *RunParams) {
		params.Catalog = catalog
		params.catalogSet = true
	}
}

// WithToolDispatcher overrides the dispatcher used to execute tool calls.
func WithToolDispatcher(dispatcher domain.ToolDispatcher) RunOption {
	return func(params *RunParams) {
		params.Dispatcher = dispatcher
	}
}

// WithToolChoice sets the tool selection policy sent with every request.
func WithToolChoice(choice domain.ToolChoice) RunOption {
	return func(params *RunParams) {
		params.ToolChoice = choice
	}
}

// WithMaxRounds overrides the maximum number of requests sent in one run.
func WithMaxRounds(maxRounds int) RunOption {
	return func(params *RunParams) {
		params.MaxRounds = maxRounds
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) RunOption {
	return func(params *RunParams) {
		params.Temperature = &temperature
	}
}

// RunConversation defines the interface for the RunConversation use case
type RunConversation interface {
	// Execute drives the request, dispatch and resubmit cycle until the model answers.
	Execute(ctx context.Context, userMessage, model string, opts ...RunOption) (domain.RunResult, error)
}

// RunConversationImpl is the implementation of the RunConversation use case
type RunConversationImpl struct {
	transport       domain.ChatTransport
	dispatcher      domain.ToolDispatcher
	logger          *log.Logger
	maxRounds       int
	toolConcurrency int
	resultEncoding  domain.ResultEncoding
}

// NewRunConversationImpl creates a new instance of RunConversationImpl
func NewRunConversationImpl(
	transport domain.ChatTransport,
	dispatcher domain.ToolDispatcher,
	logger *log.Logger,
	maxRounds int,
	toolConcurrency int,
	resultEncoding domain.ResultEncoding,
) RunConversationImpl {
	if maxRounds <= 0 {
		maxRounds = DEFAULT_MAX_ROUNDS
	}
	if toolConcurrency <= 0 {
		toolConcurrency = DEFAULT_TOOL_CONCURRENCY
	}
	return RunConversationImpl{
		transport:       transport,
		dispatcher:      dispatcher,
		logger:          logger,
		maxRounds:       maxRounds,
		toolConcurrency: toolConcurrency,
		resultEncoding:  resultEncoding,
	}
}

// runState is the conversation state owned by one run.
type runState struct {
	transcript []domain.ConversationEntry
	usage      domain.ChatUsage
	tracker    *roundTracker
}

// Execute drives the request, dispatch and resubmit cycle until the model answers.
// On failure no transcript is returned.
func (rc RunConversationImpl) Execute(ctx context.Context, userMessage, model string, opts ...RunOption) (domain.RunResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	result, err := rc.execute(spanCtx, userMessage, model, opts...)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.RunResult{}, err
	}

	span.SetAttributes(
		attribute.String("run.id", result.RunID.String()),
		attribute.Int("run.rounds", result.Rounds),
	)
	return result, nil
}

func (rc RunConversationImpl) execute(ctx context.Context, userMessage, model string, opts ...RunOption) (domain.RunResult, error) {
	if strings.TrimSpace(model) == "" {
		return domain.RunResult{}, domain.NewValidationErr("model cannot be empty")
	}

	userEntry, err := domain.NewUserEntry(userMessage)
	if err != nil {
		return domain.RunResult{}, err
	}

	params, err := rc.resolveParams(opts)
	if err != nil {
		return domain.RunResult{}, err
	}

	state := runState{
		transcript: []domain.ConversationEntry{userEntry},
		tracker:    newRoundTracker(params.MaxRounds),
	}

	for {
		if err := ctx.Err(); err != nil {
			return domain.RunResult{}, domain.NewCancelledErr(err)
		}

		round := state.tracker.next()
		resp, err := rc.transport.Send(ctx, rc.buildRequest(model, params, state.transcript))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return domain.RunResult{}, domain.NewCancelledErr(ctxErr)
			}
			return domain.RunResult{}, domain.NewTransportErr(err)
		}
		state.usage = state.usage.Add(resp.Usage)

		outcome, err := domain.InterpretResponse(resp)
		if err != nil {
			return domain.RunResult{}, err
		}

		if outcome.Kind == domain.OutcomeKind_FinalContent {
			state.transcript = append(state.transcript, domain.NewAssistantFinalEntry(outcome.Content))
			RecordRunCompleted(ctx, round, state.usage)
			return domain.RunResult{
				RunID:      params.RunID,
				Answer:     outcome.Content,
				Transcript: state.transcript,
				Rounds:     round,
				Usage:      state.usage,
			}, nil
		}

		rc.logger.Printf("RunConversation: run %s round %d requested tools %s", params.RunID, round, toolCallNames(outcome.ToolCalls))

		if state.tracker.isLastRound() {
			RecordRunCompleted(ctx, round, state.usage)
			return domain.RunResult{}, domain.NewRoundLimitExceededErr(params.MaxRounds)
		}

		assistantEntry, err := domain.NewAssistantToolCallsEntry(outcome.ToolCalls)
		if err != nil {
			return domain.RunResult{}, err
		}

		results, err := rc.dispatchBatch(ctx, params.Dispatcher, outcome.ToolCalls)
		if err != nil {
			rc.logger.Printf("RunConversation: run %s round %d tool dispatch failed: %v", params.RunID, round, err)
			return domain.RunResult{}, err
		}

		state.transcript = append(state.transcript, assistantEntry)
		state.transcript = append(state.transcript, results...)
	}
}

// resolveParams applies the options over the configured defaults.
func (rc RunConversationImpl) resolveParams(opts []RunOption) (RunParams, error) {
	params := RunParams{
		Dispatcher: rc.dispatcher,
		ToolChoice: domain.AutoToolChoice(),
		MaxRounds:  rc.maxRounds,
	}
	for _, opt := range opts {
		opt(&params)
	}

	if params.RunID == uuid.Nil {
		params.RunID = uuid.New()
	}
	if params.MaxRounds <= 0 {
		return RunParams{}, domain.NewValidationErr("max rounds must be greater than zero")
	}
	if !params.catalogSet && params.Dispatcher != nil {
		params.Catalog = params.Dispatcher.Catalog()
	}
	if len(params.Catalog) == 0 {
		return params, nil
	}
	if params.Dispatcher == nil {
		return RunParams{}, domain.NewValidationErr("a tool dispatcher is required when tools are offered")
	}
	if err := params.ToolChoice.Validate(params.Catalog); err != nil {
		return RunParams{}, err
	}
	return params, nil
}

// buildRequest snapshots the transcript into a request document.
// Tools and tool choice are omitted when no tools are offered.
func (rc RunConversationImpl) buildRequest(model string, params RunParams, transcript []domain.ConversationEntry) domain.ChatRequest {
	messages := make([]domain.ConversationEntry, len(transcript))
	copy(messages, transcript)

	req := domain.ChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: params.Temperature,
	}
	if len(params.Catalog) > 0 {
		choice := params.ToolChoice
		req.Tools = params.Catalog
		req.ToolChoice = &choice
	}
	return req
}

// dispatchBatch executes the tool calls concurrently and returns their result
// entries in the order the calls were requested. The first failure cancels the
// remaining handlers and fails the whole batch.
func (rc RunConversationImpl) dispatchBatch(ctx context.Context, dispatcher domain.ToolDispatcher, calls []domain.ToolCallRequest) ([]domain.ConversationEntry, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if dispatcher == nil {
		err := domain.NewToolExecutionErr(calls[0].ID, calls[0].Name, domain.NewUnknownToolErr(calls[0].Name))
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	entries := make([]domain.ConversationEntry, len(calls))

	g, gCtx := errgroup.WithContext(spanCtx)
	g.SetLimit(rc.toolConcurrency)
	for i, call := range calls {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			value, err := dispatcher.Dispatch(gCtx, call.Name, call.Arguments)
			if err != nil {
				RecordToolCall(spanCtx, call.Name, false)
				return domain.NewToolExecutionErr(call.ID, call.Name, err)
			}

			entry, err := domain.NewToolResultEntry(call.ID, value, rc.resultEncoding)
			if err != nil {
				RecordToolCall(spanCtx, call.Name, false)
				return domain.NewToolExecutionErr(call.ID, call.Name, err)
			}

			RecordToolCall(spanCtx, call.Name, true)
			entries[i] = entry
			return nil
		})
	}

	err := g.Wait()
	if err != nil && ctx.Err() != nil {
		err = domain.NewCancelledErr(ctx.Err())
	}
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return entries, nil
}

func toolCallNames(calls []domain.ToolCallRequest) string {
	names := make([]string, 0, len(calls))
	for _, c := range calls {
		names = append(names, c.Name)
	}
	return strings.Join(names, ",")
}

// roundTracker counts requests sent in one run against the round cap.
type roundTracker struct {
	maxRounds int
	rounds    int
}

// newRoundTracker creates a new roundTracker
func newRoundTracker(maxRounds int) *roundTracker {
	return &roundTracker{
		maxRounds: maxRounds,
	}
}

// next starts a new round and returns its 1-based number.
func (t *roundTracker) next() int {
	t.rounds++
	return t.rounds
}

// isLastRound reports whether no further request may be sent.
func (t *roundTracker) isLastRound() bool {
	return t.rounds >= t.maxRounds
}

// InitRunConversation is the initializer for the RunConversation use case
type InitRunConversation struct {
	Transport    domain.ChatTransport       `resolve:""`
	Dispatcher   domain.ToolDispatcher      `resolve:""`
	RunRepo      domain.RunRepository       `resolve:""`
	Publisher    domain.RunEventPublisher   `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Logger       *log.Logger                `resolve:""`
	// Maximum number of requests sent to the model in a single run
	MaxRounds       int    `config:"ORCHESTRATOR_MAX_ROUNDS" default:"8"`
	ToolConcurrency int    `config:"ORCHESTRATOR_TOOL_CONCURRENCY" default:"4"`
	ResultEncoding  string `config:"TOOL_RESULT_ENCODING" default:"json"`
}

// Initialize registers the RunConversation use case in the dependency container
func (i InitRunConversation) Initialize(ctx context.Context) (context.Context, error) {
	encoding, err := domain.ParseResultEncoding(i.ResultEncoding)
	if err != nil {
		return ctx, err
	}

	core := NewRunConversationImpl(
		i.Transport,
		i.Dispatcher,
		i.Logger,
		i.MaxRounds,
		i.ToolConcurrency,
		encoding,
	)

	depend.Register[RunConversation](NewAuditedRunConversation(
		core,
		i.RunRepo,
		i.Publisher,
		i.TimeProvider,
		i.Logger,
	))
	return ctx, nil
}
