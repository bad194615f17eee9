package prompt

import (
	"strings"
	"testing"

	"cimforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBuyerPersonaNil(t *testing.T) {
	assert.Equal(t, "Not yet defined.", FormatBuyerPersona(nil))
}

func TestFormatBuyerPersona(t *testing.T) {
	p := &domain.BuyerPersona{
		Type:        domain.BuyerStrategic,
		Motivations: []string{"Acquire the customer base", "Fold in the product line"},
		Concerns:    []string{"Customer concentration"},
	}
	out := FormatBuyerPersona(p)
	assert.Contains(t, out, "Buyer type: strategic")
	assert.Contains(t, out, "- Acquire the customer base")
	assert.Contains(t, out, "- Customer concentration")
}

func TestFormatBuyerPersonaEmptyListsKeepHeaders(t *testing.T) {
	out := FormatBuyerPersona(&domain.BuyerPersona{Type: domain.BuyerPE})
	assert.Contains(t, out, "Motivations:")
	assert.Contains(t, out, "Concerns:")
	assert.NotContains(t, out, "- ")
}

func TestFormatHeroContextNil(t *testing.T) {
	assert.Equal(t, "Not yet defined.", FormatHeroContext(nil))
}

func TestFormatHeroContext(t *testing.T) {
	h := &domain.HeroContext{
		SelectedHero: "The category-defining compliance platform",
		Thesis: domain.InvestmentThesis{
			Asset:       "Only vendor with full regulatory coverage",
			Timing:      "New regulation lands next year",
			Opportunity: "Triple ARR by entering the EU market",
		},
	}
	out := FormatHeroContext(h)
	assert.Contains(t, out, "Selected hero: The category-defining compliance platform")
	assert.Contains(t, out, "- Asset: Only vendor with full regulatory coverage")
	assert.Contains(t, out, "- Timing: New regulation lands next year")
	assert.Contains(t, out, "- Opportunity: Triple ARR by entering the EU market")
}

func TestFormatOutlineSentinels(t *testing.T) {
	assert.Equal(t, "Not yet created.", FormatOutline(nil))
	assert.Equal(t, "Not yet created.", FormatOutline(&domain.Outline{}))
	assert.Equal(t, "Not yet created.", FormatOutline(&domain.Outline{Sections: []domain.OutlineSection{}}))
}

func TestFormatOutlineNumbering(t *testing.T) {
	o := &domain.Outline{Sections: []domain.OutlineSection{
		{ID: "exec", Title: "Executive Summary", Description: "Key highlights"},
		{ID: "fin", Title: "Financial Overview", Description: "Three-year picture"},
		{ID: "risk", Title: "Risk Factors", Description: "Honest risk list"},
	}}
	out := FormatOutline(o)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "1. Executive Summary: Key highlights", lines[0])
	assert.Equal(t, "2. Financial Overview: Three-year picture", lines[1])
	assert.Equal(t, "3. Risk Factors: Honest risk list", lines[2])
}

func TestFormatGatheredContextEmpty(t *testing.T) {
	assert.Equal(t, "No information gathered yet.", FormatGatheredContext(domain.GatheredContext{}))
}

func TestFormatGatheredContextOmitsAbsentGroups(t *testing.T) {
	c := domain.GatheredContext{
		Financials: &domain.FinancialFacts{Revenue: "$12M", EBITDA: "$3.1M"},
		Risks:      []string{"Top customer is 40% of revenue"},
	}
	out := FormatGatheredContext(c)
	assert.Contains(t, out, "Financials:")
	assert.Contains(t, out, "- Revenue: $12M")
	assert.Contains(t, out, "- EBITDA: $3.1M")
	assert.Contains(t, out, "Risks:")
	assert.Contains(t, out, "- Top customer is 40% of revenue")
	assert.NotContains(t, out, "Market:")
	assert.NotContains(t, out, "Products:")
	assert.NotContains(t, out, "Notes:")
}

func TestFormatGatheredContextAllGroups(t *testing.T) {
	c := domain.GatheredContext{
		Financials:  &domain.FinancialFacts{Revenue: "$12M", History: []string{"2023: $8M", "2024: $10M"}},
		Metrics:     &domain.BusinessMetrics{Customers: "240", Retention: "96% gross"},
		Team:        []domain.TeamMember{{Name: "Dana Reyes", Role: "CEO", Background: "ex-Stripe"}},
		Products:    []string{"Core platform", "Analytics add-on"},
		Market:      &domain.MarketFacts{Size: "$4B", Growth: "11% CAGR", Trends: []string{"Consolidation among mid-market vendors"}},
		Competitors: []string{"Northside Systems"},
		GrowthPlans: []string{"EU expansion in 2027"},
		Risks:       []string{"Key-person dependency on CTO"},
		Notes:       []string{"Founder prefers a strategic buyer"},
	}
	out := FormatGatheredContext(c)
	for _, header := range []string{
		"Financials:", "Business metrics:", "Founders & executives:", "Products:",
		"Market:", "Competitors:", "Growth plans:", "Risks:", "Notes:",
	} {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "- Dana Reyes, CEO - ex-Stripe")
	assert.Contains(t, out, "- 2023: $8M")
	assert.Contains(t, out, "- Size: $4B")
}

func TestFormatGatheredContextDeterministic(t *testing.T) {
	c := domain.GatheredContext{Notes: []string{"a", "b"}, Products: []string{"x"}}
	assert.Equal(t, FormatGatheredContext(c), FormatGatheredContext(c))
}
