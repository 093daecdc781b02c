package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToolDescriptor(t *testing.T) {
	objectSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"location": map[string]any{"type": "string"},
		},
		"required": []any{"location"},
	}

	tests := map[string]struct {
		name        string
		description string
		schema      map[string]any
		expectedErr string
	}{
		"valid": {
			name:        "get_weather",
			description: " Get the current weather ",
			schema:      objectSchema,
		},
		"object-without-properties": {
			name:   "ping",
			schema: map[string]any{"type": "object"},
		},
		"empty-name": {
			name:        "  ",
			schema:      objectSchema,
			expectedErr: "tool name cannot be empty",
		},
		"nil-schema": {
			name:        "get_weather",
			expectedErr: "parameter schema is required",
		},
		"non-object-type": {
			name:        "get_weather",
			schema:      map[string]any{"type": "string"},
			expectedErr: "type must be \"object\"",
		},
		"missing-type": {
			name:        "get_weather",
			schema:      map[string]any{"properties": map[string]any{}},
			expectedErr: "type must be \"object\"",
		},
		"properties-not-object": {
			name:        "get_weather",
			schema:      map[string]any{"type": "object", "properties": []any{"location"}},
			expectedErr: "properties must be an object",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			desc, err := NewToolDescriptor(tt.name, tt.description, tt.schema)
			if tt.expectedErr != "" {
				var vErr *ValidationErr
				require.ErrorAs(t, err, &vErr)
				assert.Contains(t, err.Error(), tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, desc.Name)
			assert.Equal(t, tt.schema, desc.Parameters)
		})
	}
}

func TestToolHandlerFunc_Invoke(t *testing.T) {
	type params struct{ N int }
	var h ToolHandler[params] = ToolHandlerFunc[params](func(_ context.Context, p params) (any, error) {
		return p.N * 2, nil
	})

	got, err := h.Invoke(context.Background(), params{N: 21})
	require.NoError(t, err)
	assert.Equal(t, 42, got)
}

func TestParseResultEncoding(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected ResultEncoding
		wantErr  bool
	}{
		"empty":      {input: "", expected: ResultEncoding_JSON},
		"json":       {input: "json", expected: ResultEncoding_JSON},
		"toon-upper": {input: " TOON ", expected: ResultEncoding_TOON},
		"unknown":    {input: "xml", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseResultEncoding(tt.input)
			if tt.wantErr {
				assert.Equal(t, ErrorKind_Validation, ErrorKindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEncodeToolResult_TOONList(t *testing.T) {
	out, err := EncodeToolResult(map[string]any{"days": []string{"mon", "tue"}}, ResultEncoding_TOON)
	require.NoError(t, err)
	assert.Contains(t, out, "days[")
	assert.Contains(t, out, "mon,tue")
}
