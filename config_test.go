package dashsim

import (
	"bytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.NoError(t, config.Validate())
	assert.Equal(t, 100*time.Millisecond, config.PollInterval)
	assert.Equal(t, 0.2, config.RerollProbability)
	assert.True(t, config.Jitter)
	assert.True(t, config.Display.ShowStart)
}

func TestLoadConfigFromReader(t *testing.T) {
	config, err := LoadConfigFromReader(bytes.NewBufferString(`
Seed = 1234
PollInterval = "250ms"
Jitter = false

[Display]
Title = "Test Bike"
`))
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), config.Seed)
	assert.Equal(t, 250*time.Millisecond, config.PollInterval)
	assert.False(t, config.Jitter)
	assert.Equal(t, "Test Bike", config.Display.Title)

	// omitted keys keep their defaults
	assert.Equal(t, 0.2, config.RerollProbability)
	assert.True(t, config.Display.ShowStart)
}

func TestLoadConfigInvalid(t *testing.T) {
	_, err := LoadConfigFromReader(bytes.NewBufferString(`PollInterval = "0s"`))
	assert.Equal(t, ErrInvalidPollInterval, errors.Cause(err))

	_, err = LoadConfigFromReader(bytes.NewBufferString(`RerollProbability = 1.5`))
	assert.Equal(t, ErrInvalidRerollProbability, errors.Cause(err))

	_, err = LoadConfigFromReader(bytes.NewBufferString(`PollInterval = [`))
	assert.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "dashsim.toml")
	require.NoError(t, os.WriteFile(fileName, []byte(`RerollProbability = 0.5`), 0600))

	config, err := LoadConfig(fileName)
	require.NoError(t, err)
	assert.Equal(t, 0.5, config.RerollProbability)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
