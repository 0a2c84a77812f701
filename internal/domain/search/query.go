// Package search filters and orders tips.
//
// The same engine backs the HTTP search endpoint and the interactive client, so both
// agree on matching and ordering. It performs no I/O and never fails: unrecognized
// filter tokens simply match nothing.
package search

import (
	"strings"

	"github.com/jsamuelsen/ecotips/internal/domain"
)

// Params are raw, caller-provided query values, as read from a query string or a
// command line. Empty fields are treated as absent.
type Params struct {
	Text       string
	Category   string
	Difficulty string
	Impact     string
}

// Query is a normalized query. Build it with NewQuery; the zero value matches everything.
type Query struct {
	text       string
	category   string
	difficulty string
	impact     string
}

// NewQuery normalizes p into a Query.
// Text is trimmed, and text that is empty after trimming disables the text filter.
// Category is normalized like domain.NormalizeCategory.
func NewQuery(p Params) Query {
	return Query{
		text:       strings.ToLower(strings.TrimSpace(p.Text)),
		category:   domain.NormalizeCategory(strings.TrimSpace(p.Category)),
		difficulty: strings.TrimSpace(p.Difficulty),
		impact:     strings.ToLower(strings.TrimSpace(p.Impact)),
	}
}

// Text returns the lower-cased search term, or "" when absent.
func (q Query) Text() string { return q.text }

// Category returns the normalized category filter, or "" when absent.
func (q Query) Category() string { return q.category }

// Difficulty returns the difficulty filter, or "" when absent.
func (q Query) Difficulty() string { return q.difficulty }

// Impact returns the impact token, or "" when absent.
func (q Query) Impact() string { return q.impact }

// IsEmpty reports whether no filter is set.
func (q Query) IsEmpty() bool {
	return q == Query{}
}

var impactTokens = map[string]domain.Impact{
	"very-high": domain.ImpactVeryHigh,
	"high":      domain.ImpactHigh,
	"medium":    domain.ImpactMedium,
	"low":       domain.ImpactLow,
}

// ParseImpact maps an impact token such as "very-high" to its canonical label.
// Only the four hyphenated tokens are recognized.
func ParseImpact(token string) (domain.Impact, bool) {
	impact, ok := impactTokens[strings.ToLower(strings.TrimSpace(token))]
	return impact, ok
}
