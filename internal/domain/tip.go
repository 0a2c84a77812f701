package domain

import (
	"regexp"
	"strings"
)

// Impact is the canonical impact label of a tip.
type Impact string

// Impact labels, ordered from lowest to highest.
const (
	ImpactLow      Impact = "Low"
	ImpactMedium   Impact = "Medium"
	ImpactHigh     Impact = "High"
	ImpactVeryHigh Impact = "Very High"
)

// Rank orders impacts for relevance sorting. Unknown labels rank 0.
func (i Impact) Rank() int {
	switch i {
	case ImpactVeryHigh:
		return 4
	case ImpactHigh:
		return 3
	case ImpactMedium:
		return 2
	case ImpactLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether i is one of the canonical labels.
func (i Impact) Valid() bool {
	return i.Rank() > 0
}

// Difficulty is the effort level of a tip.
type Difficulty string

// Difficulty levels.
const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Valid reports whether d is one of the known levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	default:
		return false
	}
}

// Tip is a single sustainable living tip.
// Tips are loaded once at startup and never modified afterwards.
type Tip struct {
	// ID is the unique, positive identifier of the tip.
	ID int `json:"id"`

	Title            string `json:"title"`
	Description      string `json:"description"`
	ShortDescription string `json:"shortDescription"`

	// Category is the display label, e.g. "Waste Reduction".
	// Use NormalizeCategory for matching.
	Category string `json:"category"`

	Impact     Impact     `json:"impact"`
	Difficulty Difficulty `json:"difficulty"`

	TimeToImplement string `json:"timeToImplement"`
	CostSavings     string `json:"costSavings"`
	CarbonReduction string `json:"carbonReduction"`
	Image           string `json:"image"`

	Author        string `json:"author"`
	AuthorBio     string `json:"authorBio"`
	DatePublished string `json:"datePublished"`
	ReadTime      string `json:"readTime"`

	Tags     []string `json:"tags"`
	Steps    []string `json:"steps"`
	Benefits []string `json:"benefits"`
	Tips     []string `json:"tips"`
}

// Clone returns a deep copy so callers cannot mutate a shared catalog entry.
func (t Tip) Clone() Tip {
	t.Tags = cloneStrings(t.Tags)
	t.Steps = cloneStrings(t.Steps)
	t.Benefits = cloneStrings(t.Benefits)
	t.Tips = cloneStrings(t.Tips)

	return t
}

// NormalizedCategory returns the tip's category in its matching form.
func (t Tip) NormalizedCategory() string {
	return NormalizeCategory(t.Category)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeCategory lower-cases a category and replaces whitespace runs with hyphens.
// "Waste Reduction" becomes "waste-reduction".
func NormalizeCategory(category string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(category), "-")
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}

	out := make([]string, len(s))
	copy(out, s)

	return out
}
