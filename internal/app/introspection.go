package app

import (
	"context"
	"log"
	"sort"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector renders the introspection report as a Mermaid graph
// and registers it for the /introspect endpoint.
type MermaidGraphIntrospector struct {
}

// Introspect generates the graph and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	depend.RegisterNamed(mermaid.GenerateIntrospectionGraph(r), http.MermaidGraphName)
	return nil
}

// ReportLoggerIntrospector logs which configuration keys fell back to their defaults.
type ReportLoggerIntrospector struct {
}

// Introspect writes one line per configuration key to the application logger.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger, err := depend.Resolve[*log.Logger]()
	if err != nil {
		logger = log.Default()
	}

	configs := make([]introspection.ConfigAccess, len(r.Configs))
	copy(configs, r.Configs)
	sort.Slice(configs, func(a, b int) bool { return configs[a].Key < configs[b].Key })

	for _, c := range configs {
		source := "provided"
		if c.UsedDefault {
			source = "default"
		}
		logger.Printf("Introspection: config %s (%s)", c.Key, source)
	}
	return nil
}
