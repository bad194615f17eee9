package domain

// BuyerPersona captures who the CIM is being written for.
// A nil pointer means the persona has not been defined yet.
type BuyerPersona struct {
	Type        BuyerType
	Motivations []string
	Concerns    []string
}

// InvestmentThesis is the three-part framing of the deal story.
type InvestmentThesis struct {
	Asset       string // why this asset
	Timing      string // why now
	Opportunity string // why the upside is real
}

// HeroContext is the selected hero concept plus its supporting thesis.
// A nil pointer means no hero concept has been chosen yet.
type HeroContext struct {
	SelectedHero string
	Thesis       InvestmentThesis
}

// OutlineSection is one planned section of the CIM document.
type OutlineSection struct {
	ID          string
	Title       string
	Description string
}

// Outline is the agreed CIM section plan. Nil, or an outline with zero
// sections, means the outline has not been created.
type Outline struct {
	Sections []OutlineSection
}

// Empty reports whether the outline has no sections.
func (o *Outline) Empty() bool {
	return o == nil || len(o.Sections) == 0
}

// FinancialFacts holds headline financials gathered during conversation.
type FinancialFacts struct {
	Revenue string
	EBITDA  string
	Margins string
	History []string
}

func (f *FinancialFacts) empty() bool {
	return f == nil || (f.Revenue == "" && f.EBITDA == "" && f.Margins == "" && len(f.History) == 0)
}

// BusinessMetrics holds operating metrics gathered during conversation.
type BusinessMetrics struct {
	Customers string
	Retention string
	Recurring string
	Other     []string
}

func (m *BusinessMetrics) empty() bool {
	return m == nil || (m.Customers == "" && m.Retention == "" && m.Recurring == "" && len(m.Other) == 0)
}

// TeamMember is a founder or executive relevant to the deal story.
type TeamMember struct {
	Name       string
	Role       string
	Background string
}

// MarketFacts holds market sizing and trend facts.
type MarketFacts struct {
	Size   string
	Growth string
	Trends []string
}

func (m *MarketFacts) empty() bool {
	return m == nil || (m.Size == "" && m.Growth == "" && len(m.Trends) == 0)
}

// GatheredContext is the bag of optional deal facts collected as the
// conversation goes, including detours. It is input to prompt rendering
// and never mutated by the compiler.
type GatheredContext struct {
	Financials  *FinancialFacts
	Metrics     *BusinessMetrics
	Team        []TeamMember
	Products    []string
	Market      *MarketFacts
	Competitors []string
	GrowthPlans []string
	Risks       []string
	Notes       []string
}

// Empty reports whether no fact group has any data.
func (c GatheredContext) Empty() bool {
	return c.Financials.empty() &&
		c.Metrics.empty() &&
		len(c.Team) == 0 &&
		len(c.Products) == 0 &&
		c.Market.empty() &&
		len(c.Competitors) == 0 &&
		len(c.GrowthPlans) == 0 &&
		len(c.Risks) == 0 &&
		len(c.Notes) == 0
}
