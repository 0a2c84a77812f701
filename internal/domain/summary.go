package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// ImpactSummary aggregates the estimated savings of a set of tips.
type ImpactSummary struct {
	TipCount            int     `json:"tipCount"`
	CarbonReductionTons float64 `json:"carbonReductionTons"`
	CostSavingsUSD      int     `json:"costSavingsUsd"`
}

var leadingNumber = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// Summarize totals carbon reduction and cost savings over tips.
// Ranges such as "$1,200-2,500/year" contribute their lower bound; text without a
// number contributes nothing.
func Summarize(tips []Tip) ImpactSummary {
	summary := ImpactSummary{TipCount: len(tips)}

	for i := range tips {
		summary.CarbonReductionTons += firstNumber(tips[i].CarbonReduction)
		summary.CostSavingsUSD += int(firstNumber(tips[i].CostSavings))
	}

	return summary
}

func firstNumber(s string) float64 {
	match := leadingNumber.FindString(s)
	if match == "" {
		return 0
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}

	return v
}
