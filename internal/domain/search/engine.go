package search

import (
	"slices"
	"strings"

	"github.com/jsamuelsen/ecotips/internal/domain"
)

// DefaultRelatedLimit is the number of related tips shown alongside a tip.
const DefaultRelatedLimit = 3

// Apply returns the tips matching q.
//
// Filters run in a fixed order: category, difficulty, impact, text. Without a text
// term the result keeps the input order. With one, tips whose title contains the term
// come first, then higher impact ranks; remaining ties keep input order.
//
// The input slice is never modified. The result is never nil.
func Apply(tips []domain.Tip, q Query) []domain.Tip {
	results := make([]domain.Tip, 0, len(tips))

	var (
		wantImpact domain.Impact
		impactOK   bool
	)

	if q.impact != "" {
		wantImpact, impactOK = ParseImpact(q.impact)
		if !impactOK {
			return results
		}
	}

	for i := range tips {
		tip := &tips[i]

		if q.category != "" && tip.NormalizedCategory() != q.category {
			continue
		}

		if q.difficulty != "" && !strings.EqualFold(string(tip.Difficulty), q.difficulty) {
			continue
		}

		if impactOK && tip.Impact != wantImpact {
			continue
		}

		if q.text != "" && !matchesText(tip, q.text) {
			continue
		}

		results = append(results, *tip)
	}

	if q.text != "" {
		sortByRelevance(results, q.text)
	}

	return results
}

// matchesText reports whether term, already lower-cased, occurs in any searchable field.
func matchesText(tip *domain.Tip, term string) bool {
	fields := [...]string{
		tip.Title,
		tip.Description,
		tip.ShortDescription,
		tip.Category,
		tip.Author,
	}

	for _, f := range fields {
		if containsFold(f, term) {
			return true
		}
	}

	return slices.ContainsFunc(tip.Tags, func(tag string) bool {
		return containsFold(tag, term)
	})
}

func sortByRelevance(tips []domain.Tip, term string) {
	slices.SortStableFunc(tips, func(a, b domain.Tip) int {
		aHit, bHit := containsFold(a.Title, term), containsFold(b.Title, term)
		if aHit != bHit {
			if aHit {
				return -1
			}

			return 1
		}

		return b.Impact.Rank() - a.Impact.Rank()
	})
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

// Related returns up to limit tips from candidates, skipping currentID.
// Callers normally pass the tips sharing the current tip's category.
// A non-positive limit uses DefaultRelatedLimit.
func Related(candidates []domain.Tip, currentID, limit int) []domain.Tip {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	related := make([]domain.Tip, 0, limit)

	for i := range candidates {
		if len(related) == limit {
			break
		}

		if candidates[i].ID == currentID {
			continue
		}

		related = append(related, candidates[i])
	}

	return related
}
