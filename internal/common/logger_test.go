package common

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	require.NoError(t, SetupLogger(slog.LevelInfo, "console"))
	require.NoError(t, SetupLogger(slog.LevelDebug, "json"))
	require.NoError(t, SetupLogger(slog.LevelInfo, ""))

	err := SetupLogger(slog.LevelInfo, "yaml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLogHelpers(t *testing.T) {
	// Structured helpers must accept arbitrary field sets without issue.
	LogError(errors.New("boom"), "operation failed", Fields{"run_id": "abc", "attempt": 2})
	LogInfo("operation finished", Fields{"count": 5})
	LogInfo("no fields", nil)
}
