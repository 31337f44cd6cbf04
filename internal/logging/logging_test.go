package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, zap.DebugLevel, lvl)

	lvl, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zap.InfoLevel, lvl)

	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}

func TestLoggerSetLevel(t *testing.T) {
	l, err := New(Options{Level: "warn", Encoding: "json"})
	require.NoError(t, err)
	assert.Equal(t, zap.WarnLevel, l.Level())
	assert.False(t, l.Core().Enabled(zap.InfoLevel))

	require.NoError(t, l.SetLevel("debug"))
	assert.True(t, l.Named("child").Core().Enabled(zap.DebugLevel))

	assert.Error(t, l.SetLevel("loud"))
	assert.Equal(t, zap.DebugLevel, l.Level())
}

func TestInstall(t *testing.T) {
	l, err := New(Options{})
	require.NoError(t, err)

	restore := l.Install()
	assert.Same(t, l.Logger, zap.L())
	restore()
	assert.NotSame(t, l.Logger, zap.L())
}
