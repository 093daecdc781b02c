package log

import (
	"context"
	"log"
	"os"

	"github.com/cleitonmarx/symbiont/depend"
)

// InitLogger is the initializer for the logger dependency.
type InitLogger struct {
	Prefix string `config:"LOG_PREFIX" default:"[toolchat] "`
}

// Initialize registers the logger in the dependency container.
func (il InitLogger) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(newLogger(il.Prefix))
	return ctx, nil
}

// newLogger writes UTC timestamps to stdout. The prefix is placed right before
// the message so every line reads "<time> <prefix>Component: message".
func newLogger(prefix string) *log.Logger {
	return log.New(os.Stdout, prefix, log.LstdFlags|log.LUTC|log.Lmsgprefix)
}
