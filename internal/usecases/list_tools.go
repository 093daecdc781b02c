package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// ListTools defines the interface for listing the tools offered to the model.
type ListTools interface {
	Query(ctx context.Context) ([]domain.ToolDescriptor, error)
}

// ListToolsImpl is the implementation of the ListTools use case.
type ListToolsImpl struct {
	dispatcher domain.ToolDispatcher
}

// NewListToolsImpl creates a new instance of ListToolsImpl.
func NewListToolsImpl(dispatcher domain.ToolDispatcher) ListToolsImpl {
	return ListToolsImpl{
		dispatcher: dispatcher,
	}
}

// Query returns the registered tool descriptors in registration order.
func (lt ListToolsImpl) Query(ctx context.Context) ([]domain.ToolDescriptor, error) {
	_, span := telemetry.Start(ctx)
	defer span.End()

	return lt.dispatcher.Catalog(), nil
}

// InitListTools is the initializer for the ListTools use case.
type InitListTools struct {
	Dispatcher domain.ToolDispatcher `resolve:""`
}

// Initialize registers the ListTools use case in the dependency container.
func (ilt InitListTools) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTools](NewListToolsImpl(ilt.Dispatcher))
	return ctx, nil
}
