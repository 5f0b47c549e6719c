package observability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maru0137/ff11sim/internal/config"
	"github.com/Maru0137/ff11sim/internal/observability"
)

func TestNewLogger_JSON(t *testing.T) {
	logger, err := observability.NewLogger(config.LoggingConfig{
		Level:  "info",
		Format: "json",
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("test message")
}

func TestNewLogger_Console(t *testing.T) {
	logger, err := observability.NewLogger(config.LoggingConfig{
		Level:  "debug",
		Format: "console",
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Debug("test message")
}

func TestNewLogger_AllLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			logger, err := observability.NewLogger(config.LoggingConfig{
				Level:  level,
				Format: "json",
			})
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := observability.NewLogger(config.LoggingConfig{
		Level:  "loud",
		Format: "json",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestNewLogger_InvalidFormat(t *testing.T) {
	_, err := observability.NewLogger(config.LoggingConfig{
		Level:  "info",
		Format: "xml",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}
