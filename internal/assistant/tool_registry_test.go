package assistant

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weatherParams struct {
	Location string `json:"location"`
	Unit     string `json:"unit,omitempty"`
}

func weatherDescriptor() domain.ToolDescriptor {
	return domain.ToolDescriptor{
		Name:        "get_weather",
		Description: "Get the weather",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": map[string]any{"type": "string"},
				"unit":     map[string]any{"type": "string", "enum": []any{"celsius", "fahrenheit"}},
			},
			"required": []any{"location"},
		},
	}
}

func temperatureHandler() domain.ToolHandlerFunc[weatherParams] {
	return func(_ context.Context, p weatherParams) (any, error) {
		return map[string]any{"temperature": 15, "location": p.Location}, nil
	}
}

func TestRegister(t *testing.T) {
	tests := map[string]struct {
		setup       func(r *ToolRegistry)
		descriptor  domain.ToolDescriptor
		handler     domain.ToolHandler[weatherParams]
		expectedErr string
	}{
		"success": {
			descriptor: weatherDescriptor(),
			handler:    temperatureHandler(),
		},
		"duplicate-name-rejected": {
			setup: func(r *ToolRegistry) {
				require.NoError(t, Register(r, weatherDescriptor(), domain.ToolHandler[weatherParams](temperatureHandler())))
			},
			descriptor:  weatherDescriptor(),
			handler:     temperatureHandler(),
			expectedErr: `tool "get_weather" is already registered`,
		},
		"frozen-registry": {
			setup:       func(r *ToolRegistry) { r.Freeze() },
			descriptor:  weatherDescriptor(),
			handler:     temperatureHandler(),
			expectedErr: "registry is frozen",
		},
		"nil-handler": {
			descriptor:  weatherDescriptor(),
			handler:     nil,
			expectedErr: "handler is required",
		},
		"empty-name": {
			descriptor:  domain.ToolDescriptor{Parameters: map[string]any{"type": "object"}},
			handler:     temperatureHandler(),
			expectedErr: "tool name cannot be empty",
		},
		"non-object-schema": {
			descriptor:  domain.ToolDescriptor{Name: "x", Parameters: map[string]any{"type": "array"}},
			handler:     temperatureHandler(),
			expectedErr: `type must be "object"`,
		},
		"unresolvable-schema": {
			descriptor: domain.ToolDescriptor{Name: "x", Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{"a": map[string]any{"$ref": "#/$defs/missing"}},
			}},
			handler:     temperatureHandler(),
			expectedErr: "invalid parameter schema",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewToolRegistry()
			if tt.setup != nil {
				tt.setup(r)
			}

			err := Register(r, tt.descriptor, tt.handler)
			if tt.expectedErr != "" {
				var vErr *domain.ValidationErr
				require.ErrorAs(t, err, &vErr)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, r.Catalog(), 1)
		})
	}
}

func TestToolRegistry_Dispatch(t *testing.T) {
	handlerFailure := errors.New("weather service down")

	tests := map[string]struct {
		register     func(t *testing.T, r *ToolRegistry)
		toolName     string
		arguments    string
		expectedJSON string
		expectedKind domain.ErrorKind
	}{
		"round-trip": {
			register:     registerWeather(temperatureHandler()),
			toolName:     "get_weather",
			arguments:    `{"location":"Paris"}`,
			expectedJSON: `{"location":"Paris","temperature":15}`,
		},
		"unknown-tool": {
			register:     registerWeather(temperatureHandler()),
			toolName:     "get_time",
			arguments:    `{}`,
			expectedKind: domain.ErrorKind_UnknownTool,
		},
		"missing-required-argument": {
			register:     registerWeather(temperatureHandler()),
			toolName:     "get_weather",
			arguments:    `{"unit":"celsius"}`,
			expectedKind: domain.ErrorKind_ArgumentDecode,
		},
		"enum-violation": {
			register:     registerWeather(temperatureHandler()),
			toolName:     "get_weather",
			arguments:    `{"location":"Paris","unit":"kelvin"}`,
			expectedKind: domain.ErrorKind_ArgumentDecode,
		},
		"wrong-type": {
			register:     registerWeather(temperatureHandler()),
			toolName:     "get_weather",
			arguments:    `{"location":42}`,
			expectedKind: domain.ErrorKind_ArgumentDecode,
		},
		"unknown-field": {
			register:     registerWeather(temperatureHandler()),
			toolName:     "get_weather",
			arguments:    `{"location":"Paris","country":"FR"}`,
			expectedKind: domain.ErrorKind_ArgumentDecode,
		},
		"malformed-json": {
			register:     registerWeather(temperatureHandler()),
			toolName:     "get_weather",
			arguments:    `{"location":`,
			expectedKind: domain.ErrorKind_ArgumentDecode,
		},
		"multiple-json-values": {
			register:     registerWeather(temperatureHandler()),
			toolName:     "get_weather",
			arguments:    `{"location":"Paris"} {"location":"Rome"}`,
			expectedKind: domain.ErrorKind_ArgumentDecode,
		},
		"empty-arguments-mean-empty-object": {
			register: func(t *testing.T, r *ToolRegistry) {
				desc := domain.ToolDescriptor{Name: "ping", Parameters: map[string]any{"type": "object"}}
				require.NoError(t, Register(r, desc, domain.ToolHandler[struct{}](domain.ToolHandlerFunc[struct{}](
					func(context.Context, struct{}) (any, error) { return "pong", nil },
				))))
			},
			toolName:     "ping",
			arguments:    "  ",
			expectedJSON: `"pong"`,
		},
		"handler-error": {
			register: registerWeather(func(context.Context, weatherParams) (any, error) {
				return nil, handlerFailure
			}),
			toolName:     "get_weather",
			arguments:    `{"location":"Paris"}`,
			expectedKind: domain.ErrorKind_Handler,
		},
		"non-serializable-result": {
			register: registerWeather(func(context.Context, weatherParams) (any, error) {
				return math.NaN(), nil
			}),
			toolName:     "get_weather",
			arguments:    `{"location":"Paris"}`,
			expectedKind: domain.ErrorKind_Serialization,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewToolRegistry()
			tt.register(t, r)
			r.Freeze()

			got, err := r.Dispatch(context.Background(), tt.toolName, tt.arguments)
			if tt.expectedKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedKind, domain.ErrorKindOf(err))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.expectedJSON, string(got))
		})
	}
}

func TestToolRegistry_Dispatch_HandlerErrorKeepsCause(t *testing.T) {
	cause := errors.New("weather service down")
	r := NewToolRegistry()
	registerWeather(func(context.Context, weatherParams) (any, error) { return nil, cause })(t, r)

	_, err := r.Dispatch(context.Background(), "get_weather", `{"location":"Paris"}`)

	var handlerErr *domain.HandlerErr
	require.ErrorAs(t, err, &handlerErr)
	assert.Equal(t, "get_weather", handlerErr.ToolName)
	assert.ErrorIs(t, err, cause)
}

func TestToolRegistry_Dispatch_Concurrent(t *testing.T) {
	r := NewToolRegistry()
	registerWeather(temperatureHandler())(t, r)
	r.Freeze()

	var wg sync.WaitGroup
	errs := make([]error, 20)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = r.Dispatch(context.Background(), "get_weather", fmt.Sprintf(`{"location":"city-%d"}`, i))
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestToolRegistry_CatalogAndLookup(t *testing.T) {
	r := NewToolRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		desc := domain.ToolDescriptor{Name: name, Parameters: map[string]any{"type": "object"}}
		require.NoError(t, Register(r, desc, domain.ToolHandler[struct{}](domain.ToolHandlerFunc[struct{}](
			func(context.Context, struct{}) (any, error) { return nil, nil },
		))))
	}
	r.Freeze()
	assert.True(t, r.Frozen())

	names := func(ds []domain.ToolDescriptor) []string {
		res := make([]string, 0, len(ds))
		for _, d := range ds {
			res = append(res, d.Name)
		}
		return res
	}

	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names(r.Catalog()))

	subset, err := r.Lookup("mid", "zeta")
	require.NoError(t, err)
	assert.Equal(t, []string{"mid", "zeta"}, names(subset))

	_, err = r.Lookup("alpha", "missing")
	var unknownErr *domain.UnknownToolErr
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "missing", unknownErr.ToolName)
}

func TestDescribeTool(t *testing.T) {
	type params struct {
		Location string `json:"location" jsonschema:"City name"`
		Unit     string `json:"unit,omitempty"`
	}

	desc, err := DescribeTool[params]("get_weather", "Get the weather")
	require.NoError(t, err)
	assert.Equal(t, "get_weather", desc.Name)
	assert.Equal(t, "object", desc.Parameters["type"])
	assert.Equal(t, []any{"location"}, desc.Parameters["required"])

	r := NewToolRegistry()
	require.NoError(t, Register(r, desc, domain.ToolHandler[params](domain.ToolHandlerFunc[params](
		func(_ context.Context, p params) (any, error) { return p.Location, nil },
	))))

	got, err := r.Dispatch(context.Background(), "get_weather", `{"location":"Lisbon"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `"Lisbon"`, string(got))

	_, err = r.Dispatch(context.Background(), "get_weather", `{"unit":"celsius"}`)
	assert.Equal(t, domain.ErrorKind_ArgumentDecode, domain.ErrorKindOf(err))
}

func TestInitToolRegistry_Initialize(t *testing.T) {
	timeProvider := domain.NewMockCurrentTimeProvider(t)

	i := InitToolRegistry{TimeProvider: timeProvider}
	ctx, err := i.Initialize(t.Context())
	require.NoError(t, err)
	assert.NotNil(t, ctx)

	dispatcher, err := depend.Resolve[domain.ToolDispatcher]()
	require.NoError(t, err)

	catalog := dispatcher.Catalog()
	require.Len(t, catalog, 2)
	assert.Equal(t, "get_weather", catalog[0].Name)
	assert.Equal(t, "resolve_date", catalog[1].Name)

	got, err := dispatcher.Dispatch(t.Context(), "get_weather", `{"location":"Paris","unit":"celsius"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"location":"Paris","temperature":30,"unit":"celsius","humidity_rh":0.3}`, string(got))

	_, err = dispatcher.Dispatch(t.Context(), "get_weather", `{"location":"Paris","extra":true}`)
	assert.Equal(t, domain.ErrorKind_ArgumentDecode, domain.ErrorKindOf(err))
}

func registerWeather(h domain.ToolHandlerFunc[weatherParams]) func(t *testing.T, r *ToolRegistry) {
	return func(t *testing.T, r *ToolRegistry) {
		require.NoError(t, Register(r, weatherDescriptor(), domain.ToolHandler[weatherParams](h)))
	}
}
