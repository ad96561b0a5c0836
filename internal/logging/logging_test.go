package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/memefield/internal/config"
)

func TestNewDevelopment(t *testing.T) {
	log, err := New(&config.Config{Mode: "development"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestNewProduction(t *testing.T) {
	log, err := New(&config.Config{Mode: "production"})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, log.Formatter)
}

func TestNewLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memefield.log")
	log, err := New(&config.Config{Mode: "production", LogFile: path, LogMaxSizeMB: 1})
	require.NoError(t, err)
	log.SetOutput(os.Stderr)

	log.WithField("mines", 40).Info("field constructed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"field constructed"`)
	assert.Contains(t, string(data), `"mines":40`)
}
