//go:build unit

package assert

import (
	"context"
	"errors"
	"testing"

	"github.com/LerianStudio/lib-cron/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogger records every message it receives.
type captureLogger struct {
	messages []string
	levels   []log.Level
}

func (logger *captureLogger) Log(_ context.Context, level log.Level, msg string, _ ...log.Field) {
	logger.messages = append(logger.messages, msg)
	logger.levels = append(logger.levels, level)
}

func TestThat_PassingAssertionIsSilent(t *testing.T) {
	t.Parallel()

	captured := &captureLogger{}
	asserter := New(context.Background(), captured, "cron", "Parse")

	err := asserter.That(context.Background(), true, "must hold")

	require.NoError(t, err)
	assert.Empty(t, captured.messages)
}

func TestThat_FailureLogsAndReturnsError(t *testing.T) {
	t.Parallel()

	captured := &captureLogger{}
	asserter := New(context.Background(), captured, "cron", "Parse")

	err := asserter.That(context.Background(), false, "values must lie in the field domain", "field", "minute")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssertionFailed)

	require.Len(t, captured.messages, 1)
	assert.Contains(t, captured.messages[0], "ASSERTION FAILED: values must lie in the field domain")
	assert.Contains(t, captured.messages[0], "component=cron")
	assert.Contains(t, captured.messages[0], "operation=Parse")
	assert.Contains(t, captured.messages[0], "field=minute")
	assert.Equal(t, log.LevelError, captured.levels[0])
}

func TestThat_FailureCarriesStructuredError(t *testing.T) {
	t.Parallel()

	asserter := New(context.Background(), &captureLogger{}, "cron", "Parse")

	err := asserter.That(context.Background(), false, "must hold")

	var assertionErr *AssertionError

	require.ErrorAs(t, err, &assertionErr)
	assert.Equal(t, "That", assertionErr.Assertion)
	assert.Equal(t, "cron", assertionErr.Component)
	assert.Equal(t, "Parse", assertionErr.Operation)
	assert.Equal(t, "must hold", assertionErr.Message)
}

func TestInRange(t *testing.T) {
	t.Parallel()

	asserter := New(context.Background(), &captureLogger{}, "cron", "Parse")

	require.NoError(t, asserter.InRange(context.Background(), 0, 0, 59, "minute in domain"))
	require.NoError(t, asserter.InRange(context.Background(), 59, 0, 59, "minute in domain"))

	err := asserter.InRange(context.Background(), 60, 0, 59, "minute in domain")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssertionFailed)
	assert.Contains(t, err.Error(), "value=60")
	assert.Contains(t, err.Error(), "hi=59")
}

func TestNotNil(t *testing.T) {
	t.Parallel()

	asserter := New(context.Background(), &captureLogger{}, "cron", "Matches")

	require.NoError(t, asserter.NotNil(context.Background(), 1, "must not be nil"))

	require.Error(t, asserter.NotNil(context.Background(), nil, "must not be nil"))

	// Typed nil must also be caught.
	var typedNil *captureLogger

	require.Error(t, asserter.NotNil(context.Background(), typedNil, "must not be nil"))
}

func TestNoError(t *testing.T) {
	t.Parallel()

	asserter := New(context.Background(), &captureLogger{}, "cron", "Parse")

	require.NoError(t, asserter.NoError(context.Background(), nil, "must succeed"))

	err := asserter.NoError(context.Background(), errors.New("boom"), "must succeed")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error=boom")
	assert.Contains(t, err.Error(), "error_type=")
}

func TestNever(t *testing.T) {
	t.Parallel()

	asserter := New(context.Background(), &captureLogger{}, "cron", "Parse")

	err := asserter.Never(context.Background(), "unreachable")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssertionFailed)
}

func TestNilAsserterStillReturnsError(t *testing.T) {
	t.Parallel()

	var asserter *Asserter

	err := asserter.That(context.Background(), false, "must hold")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssertionFailed)
}

func TestAssertionErrorFormatting(t *testing.T) {
	t.Parallel()

	bare := &AssertionError{Message: "broken"}
	assert.Equal(t, "assertion failed: broken", bare.Error())

	detailed := &AssertionError{Message: "broken", Details: "    k=v"}
	assert.Equal(t, "assertion failed: broken\n    k=v", detailed.Error())

	var nilErr *AssertionError

	assert.Equal(t, "assertion failed", nilErr.Error())
}

func TestTruncateValue(t *testing.T) {
	t.Parallel()

	short := truncateValue("short")
	assert.Equal(t, "short", short)

	long := truncateValue(string(make([]byte, 300)))
	assert.Contains(t, long, "truncated 100 chars")
}
