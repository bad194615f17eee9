package prompt

import (
	"fmt"
	"io"
	"time"
)

// CIMPhase is the older document-phase model that predates the staged
// workflow. Retained for callers that still key off phases; new code
// should use domain.WorkflowStage.
type CIMPhase string

const (
	PhaseExecutiveSummary     CIMPhase = "executive_summary"
	PhaseCompanyOverview      CIMPhase = "company_overview"
	PhaseInvestmentHighlights CIMPhase = "investment_highlights"
	PhaseMarketOpportunity    CIMPhase = "market_opportunity"
	PhaseProductsServices     CIMPhase = "products_services"
	PhaseBusinessModel        CIMPhase = "business_model"
	PhaseFinancialOverview    CIMPhase = "financial_overview"
	PhaseGrowthStrategy       CIMPhase = "growth_strategy"
	PhaseManagementTeam       CIMPhase = "management_team"
	PhaseRiskFactors          CIMPhase = "risk_factors"
	PhaseAppendix             CIMPhase = "appendix"
)

// phaseOrder is the fixed 11-phase document order.
var phaseOrder = []CIMPhase{
	PhaseExecutiveSummary,
	PhaseCompanyOverview,
	PhaseInvestmentHighlights,
	PhaseMarketOpportunity,
	PhaseProductsServices,
	PhaseBusinessModel,
	PhaseFinancialOverview,
	PhaseGrowthStrategy,
	PhaseManagementTeam,
	PhaseRiskFactors,
	PhaseAppendix,
}

var phaseDescriptions = map[CIMPhase]string{
	PhaseExecutiveSummary:     "One to two pages that compress the whole story: who the company is, why it wins, and the headline numbers.",
	PhaseCompanyOverview:      "History, ownership, locations, and what the company actually does day to day.",
	PhaseInvestmentHighlights: "The handful of reasons a buyer should care, each backed by a number or a defensible claim.",
	PhaseMarketOpportunity:    "Market size, growth, and the trends that make this segment worth entering now.",
	PhaseProductsServices:     "The product and service lines, who buys each, and how they are priced.",
	PhaseBusinessModel:        "How revenue is generated and retained: contracts, recurrence, unit economics.",
	PhaseFinancialOverview:    "Historical and projected financials with the adjustments a buyer will ask about.",
	PhaseGrowthStrategy:       "The concrete growth levers a new owner could pull, sized where possible.",
	PhaseManagementTeam:       "Leadership bios, tenure, and who stays through a transaction.",
	PhaseRiskFactors:          "The honest risk list: concentration, key people, market shifts, and mitigants.",
	PhaseAppendix:             "Supporting detail: full financial statements, customer lists, technical material.",
}

// DeprecationLogger receives diagnostics when a deprecated accessor is
// called. Injectable so tests can count emissions without capturing a
// global writer.
type DeprecationLogger interface {
	Deprecated(fn, hint string)
}

// WriterDeprecationLogger writes deprecation diagnostics to an io.Writer.
type WriterDeprecationLogger struct {
	w io.Writer
}

// NewWriterDeprecationLogger creates a DeprecationLogger that logs to w.
func NewWriterDeprecationLogger(w io.Writer) *WriterDeprecationLogger {
	return &WriterDeprecationLogger{w: w}
}

func (l *WriterDeprecationLogger) Deprecated(fn, hint string) {
	ts := time.Now().UTC().Format(time.RFC3339)
	fmt.Fprintf(l.w, "[%s] deprecated call fn=%s hint=%q\n", ts, fn, hint)
}

// NoopDeprecationLogger discards all diagnostics.
type NoopDeprecationLogger struct{}

func (NoopDeprecationLogger) Deprecated(string, string) {}

// PhaseCatalog serves the legacy phase lookups. Every call emits one
// deprecation diagnostic but still returns correct values.
type PhaseCatalog struct {
	log DeprecationLogger
}

// NewPhaseCatalog creates a PhaseCatalog reporting to the given logger.
// A nil logger silently discards diagnostics.
func NewPhaseCatalog(log DeprecationLogger) *PhaseCatalog {
	if log == nil {
		log = NoopDeprecationLogger{}
	}
	return &PhaseCatalog{log: log}
}

// Description returns the description for a phase.
//
// Deprecated: phases predate the staged workflow; use StageInstructions.
func (c *PhaseCatalog) Description(p CIMPhase) string {
	c.log.Deprecated("PhaseCatalog.Description", "use StageInstructions with the staged workflow")
	if d, ok := phaseDescriptions[p]; ok {
		return d
	}
	return "Unknown phase."
}

// All returns the 11 phases in document order.
//
// Deprecated: phases predate the staged workflow; use domain.StageOrder.
func (c *PhaseCatalog) All() []CIMPhase {
	c.log.Deprecated("PhaseCatalog.All", "use domain.StageOrder with the staged workflow")
	out := make([]CIMPhase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}
