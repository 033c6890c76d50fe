package logging

import (
	"path/filepath"
	"testing"

	pionlogging "github.com/pion/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pion/timescaler/config"
)

func TestVerbosityMapping(t *testing.T) {
	assert.Equal(t, pionlogging.LogLevelDisabled, NewLoggerFactory(config.Silent).DefaultLogLevel)
	assert.Equal(t, pionlogging.LogLevelError, NewLoggerFactory(config.Error).DefaultLogLevel)
	assert.Equal(t, pionlogging.LogLevelWarn, NewLoggerFactory(config.Warning).DefaultLogLevel)
	assert.Equal(t, pionlogging.LogLevelDebug, NewLoggerFactory(config.Debug).DefaultLogLevel)
	assert.Equal(t, pionlogging.LogLevelDebug, NewLoggerFactory(9).DefaultLogLevel)
}

func TestGetLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "trace.log")

	f, err := GetLogFile(path)
	require.NoError(t, err)
	assert.NoError(t, f.Close())
	assert.FileExists(t, path)
}
