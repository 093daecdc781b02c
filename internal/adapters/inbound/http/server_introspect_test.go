package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestToolChatServer_Introspect(t *testing.T) {
	tests := map[string]struct {
		registerDependencies func(t *testing.T)
		setupMocks           func(*usecases.MockListTools)
		expectedCode         int
		expectedType         string
		shouldContain        []string
		shouldNotContain     []string
	}{
		"success-returns-html": {
			registerDependencies: func(t *testing.T) {
				depend.RegisterNamed("graph TD;\nA-->B;\nB-->C;\nA-->C;", MermaidGraphName)
				t.Cleanup(depend.ClearContainer)
			},
			setupMocks: func(m *usecases.MockListTools) {
				m.EXPECT().Query(mock.Anything).Return([]domain.ToolDescriptor{weatherTool}, nil)
			},
			expectedCode: http.StatusOK,
			expectedType: "text/html; charset=utf-8",
			shouldContain: []string{
				"<!DOCTYPE html>",
				"<title>ToolChat Introspection Graph</title>",
				"mermaid.registerLayoutLoaders(elkLayouts);",
				"mermaid.initialize({ startOnLoad: false });",
				"window.addEventListener('DOMContentLoaded', renderGraph);",
				"<h1>ToolChat Introspection Graph</h1>",
				`const { svg } = await mermaid.render('mermaid-svg-id', "graph TD;\nA--\u003eB;\nB--\u003eC;\nA--\u003eC;");`,
				"<tr><td><code>get_weather</code></td><td>Get the current weather for a location</td></tr>",
			},
			shouldNotContain: []string{"No tools registered."},
		},
		"tools-error-still-renders-graph": {
			registerDependencies: func(t *testing.T) {
				depend.RegisterNamed("graph TD;\nA-->B;", MermaidGraphName)
				t.Cleanup(depend.ClearContainer)
			},
			setupMocks: func(m *usecases.MockListTools) {
				m.EXPECT().Query(mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedCode:  http.StatusOK,
			expectedType:  "text/html; charset=utf-8",
			shouldContain: []string{"<h1>ToolChat Introspection Graph</h1>", "No tools registered."},
		},
		"failed-to-resolve-dependency": {
			registerDependencies: func(t *testing.T) {},
			setupMocks:           func(m *usecases.MockListTools) {},
			expectedCode:         http.StatusInternalServerError,
			expectedType:         "text/plain; charset=utf-8",
			shouldContain:        []string{"Failed to resolve dependency graph"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tt.registerDependencies(t)
			listTools := usecases.NewMockListTools(t)
			tt.setupMocks(listTools)

			server := ToolChatServer{
				ListToolsUseCase: listTools,
				Logger:           discardLogger(),
			}

			req := httptest.NewRequest(http.MethodGet, "/introspect", nil)
			w := httptest.NewRecorder()

			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))

			body := w.Body.String()
			for _, expectedText := range tt.shouldContain {
				assert.Contains(t, body, expectedText)
			}
			for _, text := range tt.shouldNotContain {
				assert.NotContains(t, body, text)
			}
		})
	}
}
