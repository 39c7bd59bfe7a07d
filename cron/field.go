package cron

import (
	"slices"
	"strconv"
	"strings"
)

// domain is the inclusive range of legal values for one field.
type domain struct {
	min, max int
}

func (dom domain) contains(v int) bool {
	return v >= dom.min && v <= dom.max
}

func (dom domain) containsAll(vals []int) bool {
	for _, v := range vals {
		if !dom.contains(v) {
			return false
		}
	}

	return true
}

// pieceKind tags the syntactic form of one field's text.
type pieceKind int

const (
	pieceStepWildcard pieceKind = iota // "*/N"
	pieceWildcard                      // "*"
	pieceList                          // comma-separated values and ranges
)

// piece is the classified form of a field's text, decided once before
// expansion so each form is handled in exactly one switch arm.
type piece struct {
	kind  pieceKind
	step  int      // pieceStepWildcard only
	terms []string // pieceList only
}

// classify tags the field text as a step wildcard, a wildcard, or a list.
// A "*/N" with a non-positive or unparsable step is not a step wildcard;
// it falls through to the list form, where it fails term resolution.
func classify(text string) piece {
	if after, ok := strings.CutPrefix(text, "*/"); ok {
		if step, err := strconv.Atoi(after); err == nil && step > 0 {
			return piece{kind: pieceStepWildcard, step: step}
		}
	}

	if text == "*" {
		return piece{kind: pieceWildcard}
	}

	return piece{kind: pieceList, terms: strings.Split(text, ",")}
}

// expandField expands one field's text into its concrete value set.
// Invalid sub-terms contribute nothing; the caller treats an empty result
// as a failed field.
func expandField(text string, dom domain, res resolver) []int {
	form := classify(text)

	switch form.kind {
	case pieceStepWildcard:
		// Raw divisibility over the domain, not stepping from the domain
		// minimum: on day-of-month (1..31) "*/5" yields 5,10,..,30 and
		// omits day 1. Kept for compatibility with the classic expansion.
		var vals []int
		for v := dom.min; v <= dom.max; v++ {
			if v%form.step == 0 {
				vals = append(vals, v)
			}
		}

		return vals

	case pieceWildcard:
		vals := make([]int, 0, dom.max-dom.min+1)
		for v := dom.min; v <= dom.max; v++ {
			vals = append(vals, v)
		}

		return vals

	default:
		return expandList(form.terms, dom, res)
	}
}

// expandList resolves each sub-term and partitions out the failures.
// Survivors from all sub-terms are concatenated and sorted ascending;
// duplicates from overlapping sub-terms are retained.
func expandList(terms []string, dom domain, res resolver) []int {
	var vals []int

	for _, term := range terms {
		termVals, ok := expandTerm(term, dom, res)
		if !ok {
			continue
		}

		vals = append(vals, termVals...)
	}

	slices.Sort(vals)

	return vals
}

// expandTerm expands a single sub-term, either a value "V" or a range
// "MIN-MAX". The boolean reports whether the term resolved at all; values
// outside the domain are filtered individually, so a partially in-domain
// range still contributes its in-domain values.
func expandTerm(term string, dom domain, res resolver) ([]int, bool) {
	lo, hi, ok := termBounds(term, res)
	if !ok {
		return nil, false
	}

	var vals []int

	for v := lo; v <= hi; v++ {
		if dom.contains(v) {
			vals = append(vals, v)
		}
	}

	return vals, true
}

// termBounds resolves a sub-term to its inclusive bounds. A single value
// is its own pair of bounds. A range with an unresolvable endpoint, or a
// reversed range ("5-1"), is invalid as a whole.
func termBounds(term string, res resolver) (int, int, bool) {
	before, after, found := strings.Cut(term, "-")
	if !found {
		v, ok := res.resolve(term)

		return v, v, ok
	}

	lo, okLo := res.resolve(before)
	hi, okHi := res.resolve(after)

	if !okLo || !okHi || lo > hi {
		return 0, 0, false
	}

	return lo, hi, true
}
