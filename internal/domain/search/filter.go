// Package search implements the substring filters used by pages and listings.
package search

import (
	"strings"
)

// Filter keeps the items whose text contains query, ignoring case.
// Relative order is preserved. An empty query returns items unchanged.
func Filter[T any](items []T, query string, text func(T) string) []T {
	q := Normalize(query)
	if q == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if Contains(text(it), q) {
			out = append(out, it)
		}
	}
	return out
}

// Normalize prepares a query for matching.
func Normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// Contains reports whether s contains the normalized query q.
func Contains(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

// EqualFold compares names such as categories ignoring case and surrounding space.
func EqualFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
