package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/toon-format/toon-go"
)

// ToolCallRequest is one tool invocation requested by the model.
type ToolCallRequest struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolDescriptor describes a tool offered to the model.
type ToolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// NewToolDescriptor validates and builds a ToolDescriptor.
// The parameter schema must be an object-shaped JSON schema.
func NewToolDescriptor(name, description string, parameters map[string]any) (ToolDescriptor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ToolDescriptor{}, NewValidationErr("tool name cannot be empty")
	}
	if parameters == nil {
		return ToolDescriptor{}, NewValidationErr(fmt.Sprintf("tool %q: parameter schema is required", name))
	}
	if typ, _ := parameters["type"].(string); typ != "object" {
		return ToolDescriptor{}, NewValidationErr(fmt.Sprintf("tool %q: parameter schema type must be \"object\"", name))
	}
	if props, ok := parameters["properties"]; ok {
		if _, isMap := props.(map[string]any); !isMap {
			return ToolDescriptor{}, NewValidationErr(fmt.Sprintf("tool %q: parameter schema properties must be an object", name))
		}
	}

	return ToolDescriptor{
		Name:        name,
		Description: strings.TrimSpace(description),
		Parameters:  parameters,
	}, nil
}

// ToolResult is the serialized value produced by one successful tool call.
type ToolResult struct {
	ToolCallID string
	Value      json.RawMessage
}

// ToolHandler executes a tool with decoded, validated parameters.
type ToolHandler[P any] interface {
	Invoke(ctx context.Context, params P) (any, error)
}

// ToolHandlerFunc adapts a function to a ToolHandler.
type ToolHandlerFunc[P any] func(ctx context.Context, params P) (any, error)

// Invoke calls f(ctx, params).
func (f ToolHandlerFunc[P]) Invoke(ctx context.Context, params P) (any, error) {
	return f(ctx, params)
}

// ToolDispatcher resolves tool names to handlers and executes them.
type ToolDispatcher interface {
	// Dispatch decodes the raw arguments, invokes the named tool and returns its JSON result.
	Dispatch(ctx context.Context, name string, rawArguments string) (json.RawMessage, error)
	// Catalog returns every registered tool descriptor in registration order.
	Catalog() []ToolDescriptor
	// Lookup returns the descriptors for the given names, in the given order.
	Lookup(names ...string) ([]ToolDescriptor, error)
}

// ResultEncoding selects the text representation of tool results sent to the model.
type ResultEncoding string

const (
	ResultEncoding_JSON ResultEncoding = "json"
	ResultEncoding_TOON ResultEncoding = "toon"
)

// ParseResultEncoding parses a configured encoding name. Empty means JSON.
func ParseResultEncoding(s string) (ResultEncoding, error) {
	switch ResultEncoding(strings.ToLower(strings.TrimSpace(s))) {
	case "", ResultEncoding_JSON:
		return ResultEncoding_JSON, nil
	case ResultEncoding_TOON:
		return ResultEncoding_TOON, nil
	default:
		return "", NewValidationErr(fmt.Sprintf("unsupported tool result encoding %q", s))
	}
}

// EncodeToolResult serializes a tool result value to its wire text.
// json.RawMessage values are validated and compacted instead of re-encoded.
func EncodeToolResult(value any, encoding ResultEncoding) (string, error) {
	raw, err := MarshalToolValue(value)
	if err != nil {
		return "", err
	}

	if encoding != ResultEncoding_TOON {
		return string(raw), nil
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", NewSerializationErr("failed to decode tool result", err)
	}
	out, err := toon.MarshalString(doc, toon.WithLengthMarkers(true))
	if err != nil {
		return "", NewSerializationErr("failed to encode tool result as toon", err)
	}
	return out, nil
}

// MarshalToolValue encodes a tool return value as a compact JSON document.
func MarshalToolValue(value any) (json.RawMessage, error) {
	if raw, ok := value.(json.RawMessage); ok {
		if !json.Valid(raw) {
			return nil, NewSerializationErr("tool result is not valid JSON", nil)
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return nil, NewSerializationErr("failed to compact tool result", err)
		}
		return buf.Bytes(), nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return nil, NewSerializationErr("failed to encode tool result", err)
	}
	return b, nil
}
