package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/ecotips/internal/domain"
)

func fixtureTips() []domain.Tip {
	return []domain.Tip{
		{
			ID: 1, Title: "Start a Compost Bin", Category: "Waste Reduction",
			Impact: domain.ImpactHigh, Difficulty: domain.DifficultyBeginner,
			Description: "Turn scraps into soil.", Author: "Dr. Sarah Green",
			Tags: []string{"composting", "gardening"},
		},
		{
			ID: 2, Title: "Switch to Renewable Energy", Category: "Energy",
			Impact: domain.ImpactVeryHigh, Difficulty: domain.DifficultyIntermediate,
			Description: "Solar and wind at home.", Author: "Michael Torres",
			Tags: []string{"solar-power"},
		},
		{
			ID: 3, Title: "Create a Zero-Waste Kitchen", Category: "Waste Reduction",
			Impact: domain.ImpactMedium, Difficulty: domain.DifficultyIntermediate,
			ShortDescription: "Less packaging, more compost.", Author: "Emma Chen",
			Tags: []string{"zero-waste"},
		},
		{
			ID: 4, Title: "Plant a Native Garden", Category: "Biodiversity",
			Impact: domain.ImpactLow, Difficulty: domain.DifficultyBeginner,
			Description: "Habitat for wildlife.", Author: "Dr. James Wildflower",
			Tags: []string{"native-plants", "water-conservation"},
		},
		{
			ID: 5, Title: "Design a Smart Home", Category: "Energy",
			Impact: domain.ImpactHigh, Difficulty: domain.DifficultyAdvanced,
			Description: "Automated energy savings.", Author: "Alex Kim",
			Tags: []string{"IoT"},
		},
	}
}

func ids(tips []domain.Tip) []int {
	out := make([]int, len(tips))
	for i := range tips {
		out[i] = tips[i].ID
	}

	return out
}

func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{
			name: "empty query returns everything in order",
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name:   "whitespace text is treated as absent",
			params: Params{Text: "   "},
			want:   []int{1, 2, 3, 4, 5},
		},
		{
			name:   "category by normalized token",
			params: Params{Category: "waste-reduction"},
			want:   []int{1, 3},
		},
		{
			name:   "category by display label",
			params: Params{Category: "Waste Reduction"},
			want:   []int{1, 3},
		},
		{
			name:   "unknown category matches nothing",
			params: Params{Category: "oceans"},
			want:   []int{},
		},
		{
			name:   "difficulty is case-insensitive",
			params: Params{Difficulty: "beginner"},
			want:   []int{1, 4},
		},
		{
			name:   "unknown difficulty matches nothing",
			params: Params{Difficulty: "expert"},
			want:   []int{},
		},
		{
			name:   "impact token maps to label",
			params: Params{Impact: "very-high"},
			want:   []int{2},
		},
		{
			name:   "impact label is not a token",
			params: Params{Impact: "Very High"},
			want:   []int{},
		},
		{
			name:   "combined filters",
			params: Params{Category: "energy", Difficulty: "ADVANCED", Impact: "high"},
			want:   []int{5},
		},
		{
			name:   "text matches tags",
			params: Params{Text: "SOLAR"},
			want:   []int{2},
		},
		{
			name:   "text matches author",
			params: Params{Text: "wildflower"},
			want:   []int{4},
		},
		{
			name:   "text matches raw category",
			params: Params{Text: "waste reduction"},
			want:   []int{1, 3},
		},
		{
			name:   "text does not match normalized category",
			params: Params{Text: "waste-reduction"},
			want:   []int{},
		},
		{
			name:   "title hits sort first then impact",
			params: Params{Text: "energy"},
			want:   []int{2, 5},
		},
		{
			name:   "text combined with category",
			params: Params{Text: "compost", Category: "waste-reduction"},
			want:   []int{1, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(fixtureTips(), NewQuery(tt.params))

			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_CompostScenario(t *testing.T) {
	tips := []domain.Tip{
		{ID: 1, Title: "Compost Bin", Impact: domain.ImpactHigh},
		{ID: 2, Title: "Solar Panels", Impact: domain.ImpactVeryHigh},
		{ID: 3, Title: "Native Garden", Description: "uses compost", Impact: "Beginner-level, impact Low"},
	}

	got := Apply(tips, NewQuery(Params{Text: "compost"}))

	assert.Equal(t, []int{1, 3}, ids(got))
}

func TestApply_EnergyCategoryScenario(t *testing.T) {
	tips := []domain.Tip{
		{ID: 1, Category: "Waste Reduction"},
		{ID: 2, Category: "Energy"},
		{ID: 3, Category: "Energy Efficiency"},
	}

	got := Apply(tips, NewQuery(Params{Category: "energy"}))

	assert.Equal(t, []int{2}, ids(got))
}

func TestApply_TextOrdering(t *testing.T) {
	tips := []domain.Tip{
		{ID: 1, Title: "Garden basics", Impact: domain.ImpactLow},
		{ID: 2, Title: "Rain", Description: "garden water", Impact: domain.ImpactHigh},
		{ID: 3, Title: "Garden birds", Impact: domain.ImpactVeryHigh},
		{ID: 4, Title: "Soil", Tags: []string{"garden"}, Impact: domain.ImpactHigh},
		{ID: 5, Title: "Trees", Author: "Garden Club"},
		{ID: 6, Title: "Garden paths", Impact: domain.ImpactLow},
	}

	got := Apply(tips, NewQuery(Params{Text: "garden"}))

	// title hits {3,1,6} by impact then source order; others {2,4,5} likewise.
	assert.Equal(t, []int{3, 1, 6, 2, 4, 5}, ids(got))

	seenMiss := false
	for _, tip := range got {
		hit := strings.Contains(strings.ToLower(tip.Title), "garden")
		if !hit {
			seenMiss = true
		}
		assert.False(t, hit && seenMiss, "title hit %d after a non-title hit", tip.ID)
	}
}

func TestApply_Identity(t *testing.T) {
	tips := fixtureTips()

	got := Apply(tips, Query{})

	assert.Equal(t, tips, got)
}

func TestApply_Idempotent(t *testing.T) {
	queries := []Params{
		{Text: "garden"},
		{Category: "energy", Text: "e"},
		{Impact: "high"},
		{Difficulty: "intermediate", Text: "a"},
	}

	for _, p := range queries {
		q := NewQuery(p)
		first := Apply(fixtureTips(), q)
		second := Apply(first, q)

		assert.Equal(t, ids(first), ids(second), "params %+v", p)
	}
}

func TestApply_CategoryMembership(t *testing.T) {
	tips := fixtureTips()

	for _, tip := range tips {
		got := Apply(tips, NewQuery(Params{Category: tip.NormalizedCategory()}))

		assert.Contains(t, ids(got), tip.ID)

		for _, r := range got {
			assert.Equal(t, tip.NormalizedCategory(), r.NormalizedCategory())
		}
	}
}

func TestApply_TextDisjunction(t *testing.T) {
	tips := fixtureTips()

	for _, term := range []string{"a", "soil", "green", "zero", "iot", "nothing-here"} {
		got := Apply(tips, NewQuery(Params{Text: term}))

		for i := range got {
			assert.True(t, matchesText(&got[i], term), "tip %d returned for %q", got[i].ID, term)
		}

		for i := range tips {
			if matchesText(&tips[i], term) {
				assert.Contains(t, ids(got), tips[i].ID)
			}
		}
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	tips := fixtureTips()
	before := ids(tips)

	_ = Apply(tips, NewQuery(Params{Text: "e"}))

	assert.Equal(t, before, ids(tips))
}

func TestParseImpact(t *testing.T) {
	tests := []struct {
		token string
		want  domain.Impact
		ok    bool
	}{
		{"very-high", domain.ImpactVeryHigh, true},
		{"HIGH", domain.ImpactHigh, true},
		{" medium ", domain.ImpactMedium, true},
		{"low", domain.ImpactLow, true},
		{"very high", "", false},
		{"extreme", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseImpact(tt.token)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewQuery(t *testing.T) {
	q := NewQuery(Params{Text: "  Solar ", Category: " Water Conservation", Difficulty: " Beginner ", Impact: "Very-High"})

	assert.Equal(t, "solar", q.Text())
	assert.Equal(t, "water-conservation", q.Category())
	assert.Equal(t, "Beginner", q.Difficulty())
	assert.Equal(t, "very-high", q.Impact())
	assert.False(t, q.IsEmpty())
	assert.True(t, NewQuery(Params{Text: "\t"}).IsEmpty())
}

func TestRelated(t *testing.T) {
	candidates := []domain.Tip{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}

	tests := []struct {
		name      string
		currentID int
		limit     int
		want      []int
	}{
		{"excludes current and truncates", 2, 3, []int{1, 3, 4}},
		{"default limit", 1, 0, []int{2, 3, 4}},
		{"limit larger than candidates", 5, 10, []int{1, 2, 3, 4}},
		{"current not among candidates", 9, 2, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Related(candidates, tt.currentID, tt.limit)))
		})
	}
}

func TestRelated_NoCandidates(t *testing.T) {
	got := Related(nil, 1, 3)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func BenchmarkApply_Text(b *testing.B) {
	tips := fixtureTips()
	q := NewQuery(Params{Text: "garden", Difficulty: "beginner"})

	b.ReportAllocs()

	for b.Loop() {
		_ = Apply(tips, q)
	}
}
