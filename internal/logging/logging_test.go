package logging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/idelchi/gocaesar/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verbose bool
		debug   bool
	}{
		{verbose: false, debug: false},
		{verbose: true, debug: true},
	}

	for _, tc := range tests {
		logger, err := logging.New(tc.verbose)
		require.NoError(t, err)

		assert.Equal(t, tc.debug, logger.Core().Enabled(zapcore.DebugLevel), "New(%v) debug", tc.verbose)
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel), "New(%v) warn", tc.verbose)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	assert.False(t, logging.FromContext(t.Context()).Core().Enabled(zapcore.ErrorLevel),
		"FromContext without a logger should return a no-op logger")

	logger, err := logging.New(false)
	require.NoError(t, err)

	ctx := logging.WithLogger(t.Context(), logger)
	assert.Same(t, logger, logging.FromContext(ctx))
}
