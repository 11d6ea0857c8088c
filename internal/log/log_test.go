package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", Path, "README.md")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "README.md")
	assert.Contains(t, out, "fmthook")
}

func TestNewBadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	require.Error(t, err)
}

func TestNewKeepsSlogDefault(t *testing.T) {
	t.Parallel()

	before := slog.Default()

	for _, level := range []string{"debug", "info", "warn", "error"} {
		_, err := New(&bytes.Buffer{}, level)
		require.NoError(t, err)
	}

	assert.Same(t, before, slog.Default())
}
