package acl

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen/ecotips/internal/domain"
)

// externalTip is the API's tip representation. It never leaves this package.
type externalTip struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"shortDescription"`
	Category         string   `json:"category"`
	Impact           string   `json:"impact"`
	Difficulty       string   `json:"difficulty"`
	TimeToImplement  string   `json:"timeToImplement"`
	CostSavings      string   `json:"costSavings"`
	CarbonReduction  string   `json:"carbonReduction"`
	Image            string   `json:"image"`
	Author           string   `json:"author"`
	AuthorBio        string   `json:"authorBio"`
	DatePublished    string   `json:"datePublished"`
	ReadTime         string   `json:"readTime"`
	Tags             []string `json:"tags"`
	Steps            []string `json:"steps"`
	Benefits         []string `json:"benefits"`
	Tips             []string `json:"tips"`
}

// Translator converts one external DTO into a domain value, rejecting data the
// domain cannot represent.
type Translator[E, D any] func(ext *E) (D, error)

// TranslateSlice applies translate to every item and stops at the first error.
// The result is never nil.
func TranslateSlice[E, D any](items []E, translate Translator[E, D]) ([]D, error) {
	out := make([]D, 0, len(items))

	for i := range items {
		d, err := translate(&items[i])
		if err != nil {
			return nil, fmt.Errorf("translating item %d: %w", i, err)
		}

		out = append(out, d)
	}

	return out, nil
}

// translateTip validates an external tip and converts it. Impact and difficulty
// labels are passed through unchanged; unknown labels simply rank 0.
func translateTip(ext *externalTip) (domain.Tip, error) {
	if ext.ID < 1 {
		return domain.Tip{}, domain.NewValidationErrorWithValue("id", "must be positive", ext.ID)
	}

	if strings.TrimSpace(ext.Title) == "" {
		return domain.Tip{}, domain.NewValidationError("title", "is required")
	}

	return domain.Tip{
		ID:               ext.ID,
		Title:            ext.Title,
		Description:      ext.Description,
		ShortDescription: ext.ShortDescription,
		Category:         ext.Category,
		Impact:           domain.Impact(ext.Impact),
		Difficulty:       domain.Difficulty(ext.Difficulty),
		TimeToImplement:  ext.TimeToImplement,
		CostSavings:      ext.CostSavings,
		CarbonReduction:  ext.CarbonReduction,
		Image:            ext.Image,
		Author:           ext.Author,
		AuthorBio:        ext.AuthorBio,
		DatePublished:    ext.DatePublished,
		ReadTime:         ext.ReadTime,
		Tags:             ext.Tags,
		Steps:            ext.Steps,
		Benefits:         ext.Benefits,
		Tips:             ext.Tips,
	}, nil
}
