package cron

import (
	"strconv"
	"strings"
)

// resolver turns one sub-term token into its integer value. The boolean
// reports whether the token was recognized at all; domain filtering happens
// later, in the expander.
type resolver interface {
	resolve(token string) (int, bool)
}

// numbers resolves plain base-10 integers. A token with trailing
// characters ("5x") is rejected wholesale rather than partially consumed.
type numbers struct{}

func (numbers) resolve(token string) (int, bool) {
	v, err := strconv.Atoi(token)

	return v, err == nil
}

// names resolves case-insensitive three-letter abbreviations by table
// position, falling back to plain integer parsing for numeric tokens.
// The resolved value is the table index plus the offset.
type names struct {
	table  []string
	offset int
}

func (n names) resolve(token string) (int, bool) {
	lowered := strings.ToLower(token)
	for i, name := range n.table {
		if name == lowered {
			return i + n.offset, true
		}
	}

	return numbers{}.resolve(token)
}

// Month numbering starts at 1 (JAN=1); weekday numbering starts at 0 (SUN=0).
var (
	monthNames = names{
		table:  []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"},
		offset: 1,
	}
	weekdayNames = names{
		table: []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"},
	}
)
