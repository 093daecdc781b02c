package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/assistant/actions"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/jsonschema-go/jsonschema"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// toolBinding holds everything needed to execute one registered tool.
type toolBinding struct {
	descriptor domain.ToolDescriptor
	schema     *jsonschema.Resolved
	decode     func(rawArguments string) (any, error)
	invoke     func(ctx context.Context, params any) (any, error)
}

// ToolRegistry maps tool names to typed handlers.
//
// Registration is only allowed until Freeze is called. Lookups and dispatches
// take a read lock and are safe to run concurrently.
type ToolRegistry struct {
	mu     sync.RWMutex
	frozen bool
	tools  map[string]toolBinding
	order  []string
}

// NewToolRegistry creates an empty, unfrozen ToolRegistry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]toolBinding),
	}
}

// Register binds a typed handler to the descriptor's name.
// Registering a name twice, or registering after Freeze, fails with a ValidationErr.
func Register[P any](r *ToolRegistry, desc domain.ToolDescriptor, h domain.ToolHandler[P]) error {
	desc, err := domain.NewToolDescriptor(desc.Name, desc.Description, desc.Parameters)
	if err != nil {
		return err
	}
	if h == nil {
		return domain.NewValidationErr(fmt.Sprintf("tool %q: handler is required", desc.Name))
	}

	resolved, err := resolveSchema(desc.Parameters)
	if err != nil {
		return domain.NewValidationErr(fmt.Sprintf("tool %q: invalid parameter schema: %v", desc.Name, err))
	}

	binding := toolBinding{
		descriptor: desc,
		schema:     resolved,
		decode: func(rawArguments string) (any, error) {
			var params P
			if err := unmarshalToolArguments(rawArguments, &params); err != nil {
				return nil, err
			}
			return params, nil
		},
		invoke: func(ctx context.Context, params any) (any, error) {
			return h.Invoke(ctx, params.(P))
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return domain.NewValidationErr(fmt.Sprintf("tool %q: registry is frozen", desc.Name))
	}
	if _, exists := r.tools[desc.Name]; exists {
		return domain.NewValidationErr(fmt.Sprintf("tool %q is already registered", desc.Name))
	}

	r.tools[desc.Name] = binding
	r.order = append(r.order, desc.Name)
	return nil
}

// Freeze ends the registration phase.
func (r *ToolRegistry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen = true
}

// Frozen reports whether the registry still accepts registrations.
func (r *ToolRegistry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Dispatch validates the raw arguments against the tool's schema, decodes them
// into the handler's parameter type, invokes the handler and returns its result as JSON.
func (r *ToolRegistry) Dispatch(ctx context.Context, name string, rawArguments string) (json.RawMessage, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("tool.name", name),
	))
	defer span.End()

	result, err := r.dispatch(spanCtx, name, rawArguments)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return result, nil
}

func (r *ToolRegistry) dispatch(ctx context.Context, name string, rawArguments string) (json.RawMessage, error) {
	r.mu.RLock()
	binding, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.NewUnknownToolErr(name)
	}

	args := strings.TrimSpace(rawArguments)
	if args == "" {
		args = "{}"
	}

	var instance any
	if err := json.Unmarshal([]byte(args), &instance); err != nil {
		return nil, domain.NewArgumentDecodeErr(name, err)
	}
	if err := binding.schema.Validate(instance); err != nil {
		return nil, domain.NewArgumentDecodeErr(name, err)
	}

	params, err := binding.decode(args)
	if err != nil {
		return nil, domain.NewArgumentDecodeErr(name, err)
	}

	value, err := binding.invoke(ctx, params)
	if err != nil {
		return nil, domain.NewHandlerErr(name, err)
	}

	return domain.MarshalToolValue(value)
}

// Catalog returns every registered descriptor in registration order.
func (r *ToolRegistry) Catalog() []domain.ToolDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]domain.ToolDescriptor, 0, len(r.order))
	for _, name := range r.order {
		res = append(res, r.tools[name].descriptor)
	}
	return res
}

// Lookup returns the descriptors for names, in the requested order.
func (r *ToolRegistry) Lookup(names ...string) ([]domain.ToolDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]domain.ToolDescriptor, 0, len(names))
	for _, name := range names {
		binding, ok := r.tools[name]
		if !ok {
			return nil, domain.NewUnknownToolErr(name)
		}
		res = append(res, binding.descriptor)
	}
	return res, nil
}

// DescribeTool builds a descriptor whose parameter schema is derived from P.
func DescribeTool[P any](name, description string) (domain.ToolDescriptor, error) {
	schema, err := jsonschema.For[P](nil)
	if err != nil {
		return domain.ToolDescriptor{}, domain.NewValidationErr(fmt.Sprintf("tool %q: cannot derive parameter schema: %v", name, err))
	}

	b, err := json.Marshal(schema)
	if err != nil {
		return domain.ToolDescriptor{}, domain.NewSerializationErr("failed to encode parameter schema", err)
	}
	var params map[string]any
	if err := json.Unmarshal(b, &params); err != nil {
		return domain.ToolDescriptor{}, domain.NewSerializationErr("failed to decode parameter schema", err)
	}

	return domain.NewToolDescriptor(name, description, params)
}

// resolveSchema compiles a parameter schema document for validation.
func resolveSchema(parameters map[string]any) (*jsonschema.Resolved, error) {
	b, err := json.Marshal(parameters)
	if err != nil {
		return nil, err
	}
	var schema jsonschema.Schema
	if err := json.Unmarshal(b, &schema); err != nil {
		return nil, err
	}
	return schema.Resolve(nil)
}

// unmarshalToolArguments decodes a single JSON object into target, rejecting unknown fields.
func unmarshalToolArguments(arguments string, target any) error {
	decoder := json.NewDecoder(strings.NewReader(arguments))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}

	// Reject trailing JSON values after the first object.
	var extra any
	if err := decoder.Decode(&extra); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return fmt.Errorf("tool arguments must contain a single JSON object")
}

// InitToolRegistry registers the built-in tools and publishes the frozen registry.
type InitToolRegistry struct {
	TimeProvider domain.CurrentTimeProvider `resolve:""`
}

// Initialize implements symbiont.Initializer.
func (i InitToolRegistry) Initialize(ctx context.Context) (context.Context, error) {
	catalog, err := actions.LoadCatalog()
	if err != nil {
		return ctx, err
	}

	registry := NewToolRegistry()

	weather := actions.NewWeatherAction()
	if err := registerFromCatalog(registry, catalog, weather.Name(), domain.ToolHandler[actions.WeatherParams](weather)); err != nil {
		return ctx, err
	}

	dateResolver := actions.NewDateResolverAction(i.TimeProvider)
	if err := registerFromCatalog(registry, catalog, dateResolver.Name(), domain.ToolHandler[actions.DateResolverParams](dateResolver)); err != nil {
		return ctx, err
	}

	registry.Freeze()
	depend.Register[domain.ToolDispatcher](registry)
	return ctx, nil
}

// registerFromCatalog registers h under the catalog descriptor with the given name.
func registerFromCatalog[P any](r *ToolRegistry, catalog []domain.ToolDescriptor, name string, h domain.ToolHandler[P]) error {
	desc, err := actions.FindDescriptor(catalog, name)
	if err != nil {
		return fmt.Errorf("failed to register tool %q: %w", name, err)
	}
	if err := Register(r, desc, h); err != nil {
		return fmt.Errorf("failed to register tool %q: %w", name, err)
	}
	return nil
}
