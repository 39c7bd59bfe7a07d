package cron

import (
	"context"
	"errors"
	"strings"

	"github.com/LerianStudio/lib-cron/assert"
)

// ErrTooManySections is returned when the expression has more than five
// whitespace-separated sections.
var ErrTooManySections = errors.New("too many sections; 5 are required")

// ErrNotEnoughSections is returned when the expression has fewer than five
// whitespace-separated sections.
var ErrNotEnoughSections = errors.New("not enough sections; 5 are required")

// ErrIncorrectValue is returned when any field expands to an empty value
// set, either because a value is out of its domain or because no sub-term
// of the field could be parsed.
var ErrIncorrectValue = errors.New("incorrect value")

// sectionCount is the number of sections in a standard cron expression.
const sectionCount = 5

// Field domain boundary constants.
const (
	maxMinute     = 59
	maxHour       = 23
	minDayOfMonth = 1
	maxDayOfMonth = 31
	minMonth      = 1
	maxMonth      = 12
	maxDayOfWeek  = 6
)

// Schedule is the expanded form of a cron expression: one ascending value
// set per field. Value sets may contain duplicates when sub-terms overlap;
// they are never empty. A Schedule is produced once by Parse and is not
// mutated afterwards.
type Schedule struct {
	Minutes     []int
	Hours       []int
	DaysOfMonth []int
	Months      []int
	DaysOfWeek  []int
}

// fieldSpec binds one section of the expression to its domain and resolver.
type fieldSpec struct {
	name string
	dom  domain
	res  resolver
}

// Parse expands a standard 5-field cron expression (minute, hour,
// day-of-month, month, day-of-week) into a Schedule.
//
// Months accept three-letter names (JAN..DEC, case-insensitive) as well as
// numbers 1..12; days of week accept SUN..SAT as well as numbers 0..6 with
// Sunday as 0. Sub-terms that fail to parse or fall outside the field's
// domain are dropped; a field left with no values fails the whole parse
// with ErrIncorrectValue. There is no partial success.
func Parse(expr string) (*Schedule, error) {
	sections := strings.Fields(expr)

	switch {
	case len(sections) > sectionCount:
		return nil, ErrTooManySections
	case len(sections) < sectionCount:
		return nil, ErrNotEnoughSections
	}

	specs := [sectionCount]fieldSpec{
		{name: "minute", dom: domain{0, maxMinute}, res: numbers{}},
		{name: "hour", dom: domain{0, maxHour}, res: numbers{}},
		{name: "day-of-month", dom: domain{minDayOfMonth, maxDayOfMonth}, res: numbers{}},
		{name: "month", dom: domain{minMonth, maxMonth}, res: monthNames},
		{name: "day-of-week", dom: domain{0, maxDayOfWeek}, res: weekdayNames},
	}

	ctx := context.Background()
	asserter := assert.New(ctx, nil, "cron", "Parse")

	var expanded [sectionCount][]int

	for i, spec := range specs {
		vals := expandField(sections[i], spec.dom, spec.res)
		if len(vals) == 0 {
			return nil, ErrIncorrectValue
		}

		// The expander already filters out-of-domain values; a survivor
		// outside the domain means the expansion itself is broken.
		if err := asserter.That(ctx, spec.dom.containsAll(vals), "expanded values must lie in the field domain",
			"field", spec.name, "values", vals); err != nil {
			return nil, ErrIncorrectValue
		}

		expanded[i] = vals
	}

	return &Schedule{
		Minutes:     expanded[0],
		Hours:       expanded[1],
		DaysOfMonth: expanded[2],
		Months:      expanded[3],
		DaysOfWeek:  expanded[4],
	}, nil
}
