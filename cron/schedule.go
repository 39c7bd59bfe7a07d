package cron

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/LerianStudio/lib-cron/assert"
)

// Matches reports whether t satisfies every field of the schedule.
// The day-of-month and day-of-week fields must both match, which is
// stricter than classic cron's either-or rule when both are restricted.
func (sched *Schedule) Matches(t time.Time) bool {
	if sched == nil {
		asserter := assert.New(context.Background(), nil, "cron", "Matches")
		_ = asserter.NotNil(context.Background(), sched, "cannot match against a nil schedule")

		return false
	}

	return slices.Contains(sched.Months, int(t.Month())) &&
		slices.Contains(sched.DaysOfMonth, t.Day()) &&
		slices.Contains(sched.DaysOfWeek, int(t.Weekday())) &&
		slices.Contains(sched.Hours, t.Hour()) &&
		slices.Contains(sched.Minutes, t.Minute())
}

// String renders the schedule as a 5-field cron expression. A field that
// covers its whole domain collapses to "*"; everything else renders as a
// comma-separated value list.
func (sched *Schedule) String() string {
	if sched == nil {
		return ""
	}

	return strings.Join([]string{
		renderField(sched.Minutes, domain{0, maxMinute}),
		renderField(sched.Hours, domain{0, maxHour}),
		renderField(sched.DaysOfMonth, domain{minDayOfMonth, maxDayOfMonth}),
		renderField(sched.Months, domain{minMonth, maxMonth}),
		renderField(sched.DaysOfWeek, domain{0, maxDayOfWeek}),
	}, " ")
}

func renderField(vals []int, dom domain) string {
	if coversDomain(vals, dom) {
		return "*"
	}

	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

func coversDomain(vals []int, dom domain) bool {
	if len(vals) != dom.max-dom.min+1 {
		return false
	}

	for i, v := range vals {
		if v != dom.min+i {
			return false
		}
	}

	return true
}
