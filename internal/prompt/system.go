// Package prompt compiles the assistant's system prompt from conversation
// state. Everything here is a read-only projection of domain.DealState:
// the orchestrator owns the state, the compiler just renders it.
package prompt

import (
	"fmt"
	"strings"

	"cimforge/internal/domain"
	"cimforge/internal/knowledge"
)

// rolePreamble is the advisor identity line. The company name, when known,
// is appended by the dynamic renderer.
const rolePreamble = `You are a senior M&A advisor helping a founder build a Confidential Information Memorandum (CIM): the marketing document that presents their company to potential buyers. You work through a fixed staged workflow, one decision at a time, and you record every decision with tools.`

// noKnowledgeWarning is rendered when no knowledge base has been loaded.
const noKnowledgeWarning = `## No Knowledge Base Loaded

No company documents have been ingested. Do not guess at facts. Gather everything conversationally, record it with save_context, and flag to the user which sections will be thin until documents arrive.`

// Compiler builds system prompts from deal state. The zero value works;
// a nil Knowledge loader renders a stub line when knowledge is flagged
// loaded.
type Compiler struct {
	Knowledge knowledge.Loader
}

// SystemPrompt assembles the full system prompt for the given state.
// Every section has a defined empty-case rendering; the zero DealState
// produces a well-formed welcome-stage prompt.
func (c Compiler) SystemPrompt(state domain.DealState) string {
	stage := state.Stage()

	var b strings.Builder
	b.WriteString(c.preamble(state))
	b.WriteString("\n\n## Workflow Progress\n\n")
	b.WriteString(FormatProgress(state.Progress))
	fmt.Fprintf(&b, "\n\n## Current Stage: %s\n\n", strings.ToUpper(string(stage)))
	b.WriteString(StageInstructions(stage))
	b.WriteString("\n\n")
	b.WriteString(toolCatalog)
	b.WriteString("\n\n")
	b.WriteString(c.knowledgeSections(state))
	b.WriteString("\n\n## Buyer Persona\n\n")
	b.WriteString(FormatBuyerPersona(state.Persona))
	b.WriteString("\n\n## Hero Concept & Investment Thesis\n\n")
	b.WriteString(FormatHeroContext(state.Hero))
	b.WriteString("\n\n## CIM Outline\n\n")
	b.WriteString(FormatOutline(state.Outline))
	b.WriteString("\n\n## Information Gathered So Far\n\n")
	b.WriteString(FormatGatheredContext(state.Context))
	b.WriteString("\n\n")
	b.WriteString(stageNavigation)
	b.WriteString("\n\n")
	b.WriteString(detourHandling)
	b.WriteString("\n\n")
	b.WriteString(criticalRules)
	return b.String()
}

func (c Compiler) preamble(state domain.DealState) string {
	if state.CompanyName == "" {
		return rolePreamble
	}
	return rolePreamble + fmt.Sprintf("\n\nThe company in this engagement is %s.", state.CompanyName)
}

func (c Compiler) knowledgeSections(state domain.DealState) string {
	if !state.KnowledgeLoaded {
		return noKnowledgeWarning
	}
	if c.Knowledge == nil {
		return "## Knowledge Base Summary\n\nKnowledge base loaded; summary unavailable.\n\n## Data Gaps Identified\n\nGap analysis unavailable."
	}

	var b strings.Builder
	b.WriteString("## Knowledge Base Summary\n\n")
	b.WriteString(c.Knowledge.DataSummary())
	b.WriteString("\n\n## Data Gaps Identified\n")
	gaps := c.Knowledge.DataGaps()
	if len(gaps.MissingSections) == 0 {
		b.WriteString("\nNo gaps identified.")
	} else {
		b.WriteString("\nMissing sections:\n")
		for _, m := range gaps.MissingSections {
			fmt.Fprintf(&b, "- %s\n", m)
		}
		b.WriteString("Recommendations:\n")
		for _, r := range gaps.Recommendations {
			fmt.Fprintf(&b, "- %s\n", r)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
