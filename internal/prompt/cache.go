package prompt

import (
	"fmt"
	"strings"

	"cimforge/internal/domain"
)

// CachedPrompt is a system prompt split for provider-side prompt caching.
// Static is byte-identical for every deal state and large enough to clear
// the provider's minimum cacheable size; Dynamic carries everything that
// changes between requests.
type CachedPrompt struct {
	Static  string
	Dynamic string
}

// buildStaticPrompt renders the state-invariant prompt prefix: the advisor
// identity, the full stage instruction reference, the tool catalog, and the
// fixed navigation, detour, and rules blocks. It deliberately takes no
// arguments so nothing state-dependent can leak into the cacheable portion.
func buildStaticPrompt() string {
	var b strings.Builder
	b.WriteString(rolePreamble)
	b.WriteString("\n\n## Stage Instructions Reference\n")
	b.WriteString("\nThe workflow has these stages, in order. The dynamic portion of the prompt tells you which stage is current; follow that stage's instructions below.\n")
	for _, stage := range domain.StageOrder {
		fmt.Fprintf(&b, "\n### %s Stage Instructions\n\n", strings.ToUpper(string(stage)))
		b.WriteString(StageInstructions(stage))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(toolCatalog)
	b.WriteString("\n\n")
	b.WriteString(stageNavigation)
	b.WriteString("\n\n")
	b.WriteString(detourHandling)
	b.WriteString("\n\n")
	b.WriteString(criticalRules)
	return b.String()
}

// staticPrompt is computed once; the builder is pure so this is safe.
var staticPrompt = buildStaticPrompt()

// SystemPromptForCaching splits the system prompt into a cacheable static
// prefix and a per-request dynamic suffix. The dynamic portion references
// the current stage's instructions by name rather than repeating them, so
// the instruction text is billed once via the cached prefix.
func (c Compiler) SystemPromptForCaching(state domain.DealState) CachedPrompt {
	stage := state.Stage()

	var b strings.Builder
	b.WriteString(c.preamble(state))
	b.WriteString("\n\n## Workflow Progress\n\n")
	b.WriteString(FormatProgress(state.Progress))
	fmt.Fprintf(&b, "\n\n## Current Stage: %s\n\n", strings.ToUpper(string(stage)))
	fmt.Fprintf(&b, "Follow the %s Stage Instructions from the Stage Instructions Reference.\n\n", strings.ToUpper(string(stage)))
	b.WriteString(c.knowledgeSections(state))
	b.WriteString("\n\n## Buyer Persona\n\n")
	b.WriteString(FormatBuyerPersona(state.Persona))
	b.WriteString("\n\n## Hero Concept & Investment Thesis\n\n")
	b.WriteString(FormatHeroContext(state.Hero))
	b.WriteString("\n\n## CIM Outline\n\n")
	b.WriteString(FormatOutline(state.Outline))
	b.WriteString("\n\n## Information Gathered So Far\n\n")
	b.WriteString(FormatGatheredContext(state.Context))

	return CachedPrompt{
		Static:  staticPrompt,
		Dynamic: b.String(),
	}
}
