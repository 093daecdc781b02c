package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/mcpserver"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/cors"
)

// ToolChatServer is the REST and MCP HTTP server of the ToolChat application.
type ToolChatServer struct {
	Port                   int                      `config:"HTTP_PORT" default:"8080"`
	Logger                 *log.Logger              `resolve:""`
	RunConversationUseCase usecases.RunConversation `resolve:""`
	GetRunUseCase          usecases.GetRun          `resolve:""`
	ListToolsUseCase       usecases.ListTools       `resolve:""`
	Dispatcher             domain.ToolDispatcher    `resolve:""`
	MCPServer              *mcp.Server              `resolve:""`
}

// Handler builds the HTTP handler serving every ToolChat route.
func (api ToolChatServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/runs", api.CreateRun)
	mux.HandleFunc("GET /api/v1/runs/{id}", api.GetRun)
	mux.HandleFunc("GET /api/v1/tools", api.ListTools)
	mux.HandleFunc("GET /healthz", api.Healthz)

	// Register introspection endpoint for debugging and testing purposes
	mux.HandleFunc("GET /introspect", api.Introspect)

	if api.MCPServer != nil {
		mux.Handle("/mcp", mcpserver.NewHTTPHandler(api.MCPServer))
	}

	h := telemetry.Middleware("toolchat-api")(mux)

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server for the ToolChatServer.
func (api ToolChatServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler: api.Handler(),
		Addr:    fmt.Sprintf(":%d", api.Port),
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("ToolChatServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("ToolChatServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("ToolChatServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady checks if the ToolChatServer is ready by performing a health check.
func (api ToolChatServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/healthz", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
