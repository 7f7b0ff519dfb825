package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		" warn ":  zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.ErrorLevel,
		"bogus":   zapcore.ErrorLevel,
	}
	for in, want := range tests {
		require.Equalf(t, want, parseLevel(in), "parseLevel(%q)", in)
	}
}

func TestInit_ReplacesNop(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	require.NoError(t, Init("debug"))
	require.True(t, Log.Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init("error"))
	require.False(t, Log.Core().Enabled(zapcore.WarnLevel))
}
