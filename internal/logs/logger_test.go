package logs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	log, err := New(WithLevel(string(LevelTypeError)))
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(-1)) // debug
	assert.True(t, log.Core().Enabled(2))   // error
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(WithLevel("loud"))
	require.Error(t, err)
	assert.Panics(t, func() { MustNew(WithLevel("loud")) })
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log, err := New(WithFile(path), WithLevel(string(LevelTypeInfo)), func(o *LoggerOptions) {
		o.OutputPaths = []string{os.DevNull}
	})
	require.NoError(t, err)

	log.Info("hello file")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

func TestNewLogrus(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	assert.Equal(t, "info", NewLogrus().GetLevel().String())
}
