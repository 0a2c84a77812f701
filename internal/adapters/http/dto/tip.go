package dto

import (
	"github.com/jsamuelsen/ecotips/internal/domain"
	"github.com/jsamuelsen/ecotips/internal/domain/search"
)

// MaxQueryLength bounds every search query parameter.
const MaxQueryLength = 200

// TipResponse is the wire form of a tip. Field names match the catalog's public JSON.
type TipResponse struct {
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

// NewTipResponse converts a domain tip to its wire form.
// Nil slices are rendered as empty arrays.
func NewTipResponse(t *domain.Tip) TipResponse {
	return TipResponse{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		ShortDescription: t.ShortDescription,
		Category:         t.Category,
		Impact:           string(t.Impact),
		Difficulty:       string(t.Difficulty),
		TimeToImplement:  t.TimeToImplement,
		CostSavings:      t.CostSavings,
		CarbonReduction:  t.CarbonReduction,
		Image:            t.Image,
		Author:           t.Author,
		AuthorBio:        t.AuthorBio,
		DatePublished:    t.DatePublished,
		ReadTime:         t.ReadTime,
		Tags:             nonNil(t.Tags),
		Steps:            nonNil(t.Steps),
		Benefits:         nonNil(t.Benefits),
		Tips:             nonNil(t.Tips),
	}
}

// NewTipListResponse converts tips in order. The result is never nil.
func NewTipListResponse(tips []domain.Tip) []TipResponse {
	out := make([]TipResponse, len(tips))
	for i := range tips {
		out[i] = NewTipResponse(&tips[i])
	}

	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

// SearchRequest holds the search query string. Every field is optional.
type SearchRequest struct {
	Q          string `form:"q" json:"q" validate:"max=200"`
	Category   string `form:"category" json:"category" validate:"max=200"`
	Difficulty string `form:"difficulty" json:"difficulty" validate:"max=200"`
	Impact     string `form:"impact" json:"impact" validate:"max=200"`
}

// Query converts the request into a normalized search query.
func (r *SearchRequest) Query() search.Query {
	return search.NewQuery(search.Params{
		Text:       r.Q,
		Category:   r.Category,
		Difficulty: r.Difficulty,
		Impact:     r.Impact,
	})
}

// RelatedRequest holds the related-tips query string.
type RelatedRequest struct {
	Limit *int `form:"limit" json:"limit" validate:"omitempty,min=1,max=10"`
}

// LimitOrDefault returns the requested limit, or search.DefaultRelatedLimit when unset.
func (r *RelatedRequest) LimitOrDefault() int {
	if r.Limit == nil {
		return search.DefaultRelatedLimit
	}

	return *r.Limit
}

// SummaryResponse is the wire form of the catalog impact summary.
type SummaryResponse struct {
	TipCount            int     `json:"tipCount"`
	CarbonReductionTons float64 `json:"carbonReductionTons"`
	CostSavingsUSD      int     `json:"costSavingsUsd"`
}

// NewSummaryResponse converts a domain summary.
func NewSummaryResponse(s domain.ImpactSummary) SummaryResponse {
	return SummaryResponse{
		TipCount:            s.TipCount,
		CarbonReductionTons: s.CarbonReductionTons,
		CostSavingsUSD:      s.CostSavingsUSD,
	}
}
