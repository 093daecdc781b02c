package app

import (
	"github.com/cleitonmarx/symbiont"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/http"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/mcpserver"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/config"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/log"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/adapters/outbound/time"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/assistant"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/usecases"
)

// NewToolChatApp creates and returns a new instance of the ToolChat application.
func NewToolChatApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&config.InitVaultProvider{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&time.InitCurrentTimeProvider{},
			&postgres.InitDB{},
			&postgres.InitRunRepository{},
			&pubsub.InitClient{},
			&pubsub.InitRunEventPublisher{},
			&modelrunner.InitChatTransport{},
			&assistant.InitToolRegistry{},

			&usecases.InitRunConversation{},
			&usecases.InitGetRun{},
			&usecases.InitListTools{},
			&usecases.InitRecordRunOutcomes{},
			&mcpserver.InitMCPServer{},
		).
		Host(
			&http.ToolChatServer{},
			&workers.RunEventSubscriber{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
