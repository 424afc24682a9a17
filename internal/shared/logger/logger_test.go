package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_LevelFromConfig(t *testing.T) {
	log, err := New("bet-service", "prod", "warn")
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidLevelKeepsDefault(t *testing.T) {
	log, err := New("match-service", "local", "loud")
	require.NoError(t, err)

	// config de desenvolvimento começa em debug
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
