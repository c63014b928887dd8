package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/rustyeddy/tradecal/config"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		cfg  config.LogConfig
		want zapcore.Level
	}{
		{config.LogConfig{}, zapcore.WarnLevel},
		{config.LogConfig{Level: "debug"}, zapcore.DebugLevel},
		{config.LogConfig{Level: "INFO", Encoding: "json"}, zapcore.InfoLevel},
		{config.LogConfig{Level: "nonsense"}, zapcore.WarnLevel},
	}

	for _, tt := range tests {
		l, err := New(tt.cfg)
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(tt.want))
		if tt.want > zapcore.DebugLevel {
			assert.False(t, l.Core().Enabled(tt.want-1))
		}
	}
}
