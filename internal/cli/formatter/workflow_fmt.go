package formatter

import (
	"fmt"
	"strings"

	"cimforge/internal/domain"
	"cimforge/internal/prompt"
)

// StagePill returns a colored marker for a stage relative to the workflow
// position: completed, current, or upcoming.
func StagePill(stage domain.WorkflowStage, p domain.WorkflowProgress) string {
	current := p.CurrentStage
	if current == "" {
		current = domain.StageWelcome
	}
	label := prompt.StageLabel(stage)
	switch {
	case stage == current:
		return StyleYellow.Render("▶ " + label + " (current)")
	case p.StageCompleted(stage):
		return StyleGreen.Render("✔ " + label)
	default:
		return StyleDim.Render("○ " + label)
	}
}

// SectionStatusPill returns a colored status indicator for a section build.
func SectionStatusPill(status domain.SectionStatus) string {
	label := prompt.SectionStatusLabel(status)
	switch status {
	case domain.SectionPending:
		return StyleDim.Render("○ " + label)
	case domain.SectionContentDevelopment:
		return StyleBlue.Render("● " + label)
	case domain.SectionBuildingSlides:
		return StyleYellow.Render("● " + label)
	case domain.SectionComplete:
		return StyleGreen.Render("✔ " + label)
	default:
		return StyleDim.Render(label)
	}
}

// RenderWorkflow renders the full workflow position for the terminal:
// every stage with its pill, plus per-section detail while building.
func RenderWorkflow(p domain.WorkflowProgress) string {
	var b strings.Builder
	for _, stage := range domain.StageOrder {
		b.WriteString(StagePill(stage, p))
		b.WriteString("\n")
	}

	current := p.CurrentStage
	if current == "" {
		current = domain.StageWelcome
	}
	if current == domain.StageBuildingSections && len(p.SectionProgress) > 0 {
		b.WriteString("\n" + Header("Sections") + "\n")
		for _, sec := range p.SectionProgress {
			line := fmt.Sprintf("%s  %s", SectionStatusPill(sec.Status), sec.SectionID)
			if len(sec.Slides) > 0 {
				line += Dim(fmt.Sprintf("  %d/%d slides approved", sec.ApprovedSlides(), len(sec.Slides)))
			}
			b.WriteString(line + "\n")
		}
		if p.CurrentSectionID != "" {
			b.WriteString(Dim("working on: "+p.CurrentSectionID) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderCachedPromptSummary shows the cache split sizes and whether the
// static half clears the provider caching threshold.
func RenderCachedPromptSummary(p prompt.CachedPrompt) string {
	threshold := 4096
	marker := StyleGreen.Render("cacheable")
	if len(p.Static) <= threshold {
		marker = StyleRed.Render("below caching threshold")
	}
	return fmt.Sprintf("static: %d bytes (%s)  dynamic: %d bytes",
		len(p.Static), marker, len(p.Dynamic))
}
