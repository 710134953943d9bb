package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/spec-kit/adoptafacil/internal/config"
)

func TestLoggerConfig_FollowsAppEnv(t *testing.T) {
	tests := []struct {
		env         string
		wantEnv     string
		development bool
	}{
		{"production", "production", false},
		{" Production ", "production", false},
		{"staging", "staging", true},
		{"", "development", true},
	}
	for _, tt := range tests {
		t.Run(tt.wantEnv, func(t *testing.T) {
			cfg := loggerConfig(config.LoggerConfig{Level: "info"}, tt.env)
			assert.Equal(t, tt.development, cfg.Development)
			assert.Equal(t, "json", cfg.Encoding)
			assert.Equal(t, tt.wantEnv, cfg.InitialFields["env"])
		})
	}
}

func TestLoggerConfig_UnknownLevelFallsBackToInfo(t *testing.T) {
	cfg := loggerConfig(config.LoggerConfig{Level: "chatty"}, "production")
	assert.Equal(t, zapcore.InfoLevel, cfg.Level.Level())

	cfg = loggerConfig(config.LoggerConfig{Level: "DEBUG"}, "production")
	assert.Equal(t, zapcore.DebugLevel, cfg.Level.Level())
}

func TestNewLogger_Builds(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "warn"}, "production")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
