// Package filter implements the predicate engine behind every list on the dashboard.
//
// All functions are pure: they never modify their input and return a fresh slice that keeps
// the original relative order of the matching items.
package filter

import (
	"strings"
	"time"
)

// All is the category sentinel that matches every value.
const All = "all"

// Predicate reports whether an item satisfies one criterion.
type Predicate[T any] func(T) bool

// Apply returns the items that satisfy every predicate, in their original order.
// With no predicates it returns a copy of items. The result is never nil.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Text reports whether any of fields contains query, ignoring case.
// An empty query matches everything. The query is not trimmed.
func Text(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// Category reports whether value equals selected. The All sentinel and the empty string match everything.
func Category[S ~string](selected string, value S) bool {
	if selected == "" || selected == All {
		return true
	}
	return string(value) == selected
}

// SameDay reports whether ts falls on the calendar day of selected, both read in loc.
// A nil selected date matches everything.
func SameDay(selected *time.Time, ts time.Time, loc *time.Location) bool {
	if selected == nil {
		return true
	}
	if loc == nil {
		loc = time.Local
	}
	y1, m1, d1 := selected.In(loc).Date()
	y2, m2, d2 := ts.In(loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
