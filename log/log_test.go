//go:build unit

package log

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "error", LevelError.String())
	assert.Equal(t, "warn", LevelWarn.String())
	assert.Equal(t, "info", LevelInfo.String())
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "unknown", Level(99).String())
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	level, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, level)

	level, err = ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, LevelWarn, level)

	_, err = ParseLevel("verbose")
	require.Error(t, err)
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "vals", Value: []int{1, 2}}, Ints("vals", []int{1, 2}))
	assert.Equal(t, Field{Key: "ok", Value: true}, Bool("ok", true))

	err := errors.New("boom")
	assert.Equal(t, Field{Key: "error", Value: err}, Err(err))
}

func TestNopLogger(t *testing.T) {
	t.Parallel()

	logger := NewNop()

	assert.NotPanics(t, func() {
		logger.Log(context.Background(), LevelError, "dropped")
	})
	assert.False(t, logger.Enabled(LevelError))
	assert.Same(t, logger, logger.With(String("k", "v")))
	assert.NoError(t, logger.Sync(context.Background()))
}
