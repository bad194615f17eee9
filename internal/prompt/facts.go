package prompt

import (
	"fmt"
	"strings"

	"cimforge/internal/domain"
)

// Sentinel strings rendered when an optional fact is wholly absent.
const (
	notYetDefined     = "Not yet defined."
	notYetCreated     = "Not yet created."
	nothingGatheredYet = "No information gathered yet."
)

// FormatBuyerPersona renders the buyer persona as readable text.
// An empty motivations or concerns list still renders its header; only a
// nil persona collapses to the sentinel.
func FormatBuyerPersona(p *domain.BuyerPersona) string {
	if p == nil {
		return notYetDefined
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Buyer type: %s\n", p.Type)
	b.WriteString("Motivations:\n")
	for _, m := range p.Motivations {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	b.WriteString("Concerns:\n")
	for _, c := range p.Concerns {
		fmt.Fprintf(&b, "- %s\n", c)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatHeroContext renders the selected hero concept and its thesis.
func FormatHeroContext(h *domain.HeroContext) string {
	if h == nil {
		return notYetDefined
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Selected hero: %s\n", h.SelectedHero)
	b.WriteString("Investment thesis:\n")
	fmt.Fprintf(&b, "- Asset: %s\n", h.Thesis.Asset)
	fmt.Fprintf(&b, "- Timing: %s\n", h.Thesis.Timing)
	fmt.Fprintf(&b, "- Opportunity: %s\n", h.Thesis.Opportunity)
	return strings.TrimRight(b.String(), "\n")
}

// FormatOutline renders the section plan numbered from 1 in input order.
// A nil outline and an outline with zero sections both count as not created.
func FormatOutline(o *domain.Outline) string {
	if o.Empty() {
		return notYetCreated
	}
	var b strings.Builder
	for i, sec := range o.Sections {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, sec.Title, sec.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatGatheredContext renders whichever fact groups are present, omitting
// groups with no data. When nothing has been gathered it returns a single
// sentinel line.
func FormatGatheredContext(c domain.GatheredContext) string {
	if c.Empty() {
		return nothingGatheredYet
	}

	var b strings.Builder
	writeList := func(header string, items []string) {
		if len(items) == 0 {
			return
		}
		b.WriteString(header + ":\n")
		for _, it := range items {
			fmt.Fprintf(&b, "- %s\n", it)
		}
	}

	if f := c.Financials; f != nil {
		b.WriteString("Financials:\n")
		if f.Revenue != "" {
			fmt.Fprintf(&b, "- Revenue: %s\n", f.Revenue)
		}
		if f.EBITDA != "" {
			fmt.Fprintf(&b, "- EBITDA: %s\n", f.EBITDA)
		}
		if f.Margins != "" {
			fmt.Fprintf(&b, "- Margins: %s\n", f.Margins)
		}
		for _, h := range f.History {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}
	if m := c.Metrics; m != nil {
		b.WriteString("Business metrics:\n")
		if m.Customers != "" {
			fmt.Fprintf(&b, "- Customers: %s\n", m.Customers)
		}
		if m.Retention != "" {
			fmt.Fprintf(&b, "- Retention: %s\n", m.Retention)
		}
		if m.Recurring != "" {
			fmt.Fprintf(&b, "- Recurring revenue: %s\n", m.Recurring)
		}
		for _, o := range m.Other {
			fmt.Fprintf(&b, "- %s\n", o)
		}
	}
	if len(c.Team) > 0 {
		b.WriteString("Founders & executives:\n")
		for _, t := range c.Team {
			line := t.Name
			if t.Role != "" {
				line += ", " + t.Role
			}
			if t.Background != "" {
				line += " - " + t.Background
			}
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	writeList("Products", c.Products)
	if m := c.Market; m != nil {
		b.WriteString("Market:\n")
		if m.Size != "" {
			fmt.Fprintf(&b, "- Size: %s\n", m.Size)
		}
		if m.Growth != "" {
			fmt.Fprintf(&b, "- Growth: %s\n", m.Growth)
		}
		for _, tr := range m.Trends {
			fmt.Fprintf(&b, "- %s\n", tr)
		}
	}
	writeList("Competitors", c.Competitors)
	writeList("Growth plans", c.GrowthPlans)
	writeList("Risks", c.Risks)
	writeList("Notes", c.Notes)

	return strings.TrimRight(b.String(), "\n")
}
