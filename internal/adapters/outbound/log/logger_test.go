package log

import (
	"context"
	"log"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_Initialize(t *testing.T) {
	init := InitLogger{Prefix: "[toolchat] "}

	_, err := init.Initialize(context.Background())
	assert.NoError(t, err)

	logger, err := depend.Resolve[*log.Logger]()
	assert.NoError(t, err)
	assert.Equal(t, "[toolchat] ", logger.Prefix())
	assert.Equal(t, log.LstdFlags|log.LUTC|log.Lmsgprefix, logger.Flags())
}
