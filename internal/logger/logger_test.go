package logger

import (
	"testing"

	"study-assistant/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	assert.NotNil(t, Get(), "logger is usable before Initialize")

	assert.NoError(t, Initialize(config.LoggerConfig{Level: "debug", Env: "production"}))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel), "debug level enabled")

	assert.NoError(t, Initialize(config.LoggerConfig{}))
	assert.False(t, Get().Core().Enabled(zapcore.DebugLevel))

	assert.Error(t, Initialize(config.LoggerConfig{Level: "loud"}))
}
