package mcpserver

import (
	"context"
	"log"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// NewServer creates an MCP server exposing every tool of the dispatcher catalog.
// Tool calls are executed through the dispatcher; dispatch failures are
// reported as tool error results instead of protocol errors.
func NewServer(dispatcher domain.ToolDispatcher, logger *log.Logger, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "toolchat", Version: version}, nil)
	for _, desc := range dispatcher.Catalog() {
		server.AddTool(&mcp.Tool{
			Name:        desc.Name,
			Description: desc.Description,
			InputSchema: desc.Parameters,
		}, callToolHandler(dispatcher, logger, desc.Name))
	}
	return server
}

func callToolHandler(dispatcher domain.ToolDispatcher, logger *log.Logger, name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(attribute.String("tool.name", name)))
		defer span.End()

		arguments := "{}"
		if req.Params != nil && len(req.Params.Arguments) > 0 {
			arguments = string(req.Params.Arguments)
		}

		result, err := dispatcher.Dispatch(spanCtx, name, arguments)
		if telemetry.RecordErrorAndStatus(span, err) {
			logger.Printf("MCPServer: tool %s failed: %v", name, err)
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
			}, nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(result)}},
		}, nil
	}
}

// NewHTTPHandler serves the MCP server over the streamable HTTP transport.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

// InitMCPServer is a Symbiont initializer for the MCP server.
type InitMCPServer struct {
	Dispatcher domain.ToolDispatcher `resolve:""`
	Logger     *log.Logger           `resolve:""`
	Version    string                `config:"MCP_SERVER_VERSION" default:"dev"`
}

// Initialize registers the *mcp.Server in the dependency container.
func (i InitMCPServer) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[*mcp.Server](NewServer(i.Dispatcher, i.Logger, i.Version))
	return ctx, nil
}
