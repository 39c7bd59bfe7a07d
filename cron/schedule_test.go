//go:build unit

package cron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatches_ExactTime(t *testing.T) {
	t.Parallel()

	sched, err := Parse("30 6 * * *")
	require.NoError(t, err)

	assert.True(t, sched.Matches(time.Date(2026, 1, 15, 6, 30, 0, 0, time.UTC)))
	assert.False(t, sched.Matches(time.Date(2026, 1, 15, 6, 31, 0, 0, time.UTC)))
	assert.False(t, sched.Matches(time.Date(2026, 1, 15, 7, 30, 0, 0, time.UTC)))
}

func TestMatches_WeekdayField(t *testing.T) {
	t.Parallel()

	sched, err := Parse("0 0 * * MON")
	require.NoError(t, err)

	// 2026-01-19 is a Monday.
	assert.True(t, sched.Matches(time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC)))
	assert.False(t, sched.Matches(time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)))
}

func TestMatches_RequiresBothDayFields(t *testing.T) {
	t.Parallel()

	sched, err := Parse("0 0 15 * MON")
	require.NoError(t, err)

	// 2026-06-15 is a Monday: both day fields satisfied.
	assert.True(t, sched.Matches(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)))
	// 2026-01-15 is a Thursday: day-of-month matches, day-of-week does not.
	assert.False(t, sched.Matches(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestMatches_NilScheduleIsFalse(t *testing.T) {
	t.Parallel()

	var sched *Schedule

	assert.False(t, sched.Matches(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
}

func TestString_CollapsesFullDomainsToWildcard(t *testing.T) {
	t.Parallel()

	sched, err := Parse("* * * * *")
	require.NoError(t, err)

	assert.Equal(t, "* * * * *", sched.String())
}

func TestString_RendersValueLists(t *testing.T) {
	t.Parallel()

	sched, err := Parse("0 6,12 1-3 JAN *")
	require.NoError(t, err)

	assert.Equal(t, "0 6,12 1,2,3 1 *", sched.String())
}

func TestString_NilScheduleIsEmpty(t *testing.T) {
	t.Parallel()

	var sched *Schedule

	assert.Empty(t, sched.String())
}
