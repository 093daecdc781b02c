package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
)

// MermaidGraphName is the named dependency holding the rendered dependency graph.
const MermaidGraphName = "introspection-graph-mermaid"

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectPage struct {
	Title string
	Graph string
	Tools []domain.ToolDescriptor
}

// Introspect renders the dependency graph of the running application together
// with the tools offered to the model.
func (api ToolChatServer) Introspect(w http.ResponseWriter, r *http.Request) {
	graph, err := depend.ResolveNamed[string](MermaidGraphName)
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	page := introspectPage{
		Title: "ToolChat Introspection Graph",
		Graph: graph,
	}
	if api.ListToolsUseCase != nil {
		tools, err := api.ListToolsUseCase.Query(r.Context())
		if err != nil {
			api.Logger.Printf("ToolChatServer: introspect could not list tools: %v", err)
		}
		page.Tools = tools
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		http.Error(w, "Failed to render introspection page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
