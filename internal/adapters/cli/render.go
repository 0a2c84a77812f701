package cli

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/jsamuelsen/ecotips/internal/domain"
	"github.com/jsamuelsen/ecotips/internal/domain/search"
)

const (
	markFavorite    = "*"
	markImplemented = "+"
)

// renderTips prints one row per tip, marking favorites and implemented tips.
func (c *Controller) renderTips(tips []domain.Tip) {
	if len(tips) == 0 {
		c.printf("No tips found.\n")
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\t\tTITLE\tCATEGORY\tIMPACT\tDIFFICULTY\n")

	for i := range tips {
		t := &tips[i]
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, c.marks(t.ID), t.Title, t.Category, t.Impact, t.Difficulty)
	}

	_ = w.Flush()

	c.printf("%d tip(s). %s favorite, %s implemented.\n", len(tips), markFavorite, markImplemented)
}

func (c *Controller) marks(id int) string {
	var b strings.Builder

	if c.favorites.Get(id) {
		b.WriteString(markFavorite)
	}

	if c.implemented.Get(id) {
		b.WriteString(markImplemented)
	}

	return b.String()
}

// renderTip prints the detail view of one tip.
func (c *Controller) renderTip(t *domain.Tip) {
	c.printf("#%d %s %s\n", t.ID, t.Title, c.marks(t.ID))
	c.printf("%s | %s impact | %s | %s\n", t.Category, t.Impact, t.Difficulty, t.TimeToImplement)

	if t.Author != "" {
		c.printf("By %s, %s, %s\n", t.Author, t.DatePublished, t.ReadTime)
	}

	c.printf("\n%s\n", t.Description)

	if t.CostSavings != "" || t.CarbonReduction != "" {
		c.printf("\nSaves %s and %s.\n", t.CostSavings, t.CarbonReduction)
	}

	c.renderList("Steps", t.Steps, true)
	c.renderList("Benefits", t.Benefits, false)
	c.renderList("Tips", t.Tips, false)

	if len(t.Tags) > 0 {
		c.printf("\nTags: %s\n", strings.Join(t.Tags, ", "))
	}
}

func (c *Controller) renderList(title string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}

	c.printf("\n%s:\n", title)

	for i, item := range items {
		if numbered {
			c.printf("  %d. %s\n", i+1, item)
		} else {
			c.printf("  - %s\n", item)
		}
	}
}

// describeQuery summarizes the active search state in one line.
func describeQuery(q search.Query) string {
	parts := make([]string, 0, 4)

	if q.Text() != "" {
		parts = append(parts, fmt.Sprintf("text=%q", q.Text()))
	}

	if q.Category() != "" {
		parts = append(parts, "category="+q.Category())
	}

	if q.Difficulty() != "" {
		parts = append(parts, "difficulty="+q.Difficulty())
	}

	if q.Impact() != "" {
		parts = append(parts, "impact="+q.Impact())
	}

	return "Active: " + strings.Join(parts, " ")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
