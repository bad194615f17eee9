package prompt

import (
	"fmt"
	"strings"

	"cimforge/internal/domain"
)

// stageLabels are the human-readable stage names used in rendered prompts.
var stageLabels = map[domain.WorkflowStage]string{
	domain.StageWelcome:          "Welcome",
	domain.StageBuyerPersona:     "Buyer Persona",
	domain.StageHeroConcept:      "Hero Concept",
	domain.StageInvestmentThesis: "Investment Thesis",
	domain.StageOutline:          "Outline",
	domain.StageBuildingSections: "Building Sections",
	domain.StageComplete:         "Complete",
}

// StageLabel returns the display name for a stage.
func StageLabel(s domain.WorkflowStage) string {
	if label, ok := stageLabels[s]; ok {
		return label
	}
	return string(s)
}

// sectionStatusLabels maps section statuses one-to-one to display labels.
var sectionStatusLabels = map[domain.SectionStatus]string{
	domain.SectionPending:            "pending",
	domain.SectionContentDevelopment: "content development",
	domain.SectionBuildingSlides:     "building slides",
	domain.SectionComplete:           "complete",
}

// SectionStatusLabel returns the display label for a section status.
func SectionStatusLabel(s domain.SectionStatus) string {
	if label, ok := sectionStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// FormatProgress renders the workflow as a checklist: every stage in
// canonical order marked completed, current, or upcoming. During the
// building_sections stage it additionally lists per-section build state in
// insertion order.
func FormatProgress(p domain.WorkflowProgress) string {
	current := p.CurrentStage
	if current == "" {
		current = domain.StageWelcome
	}

	var b strings.Builder
	for _, stage := range domain.StageOrder {
		switch {
		case stage == current:
			fmt.Fprintf(&b, "[>] %s (current)\n", StageLabel(stage))
		case p.StageCompleted(stage):
			fmt.Fprintf(&b, "[x] %s\n", StageLabel(stage))
		default:
			fmt.Fprintf(&b, "[ ] %s\n", StageLabel(stage))
		}
	}

	if current == domain.StageBuildingSections {
		for _, sec := range p.SectionProgress {
			if len(sec.Slides) > 0 {
				fmt.Fprintf(&b, "- %s: %s (%d/%d slides approved)\n",
					sec.SectionID, SectionStatusLabel(sec.Status), sec.ApprovedSlides(), len(sec.Slides))
			} else {
				fmt.Fprintf(&b, "- %s: %s\n", sec.SectionID, SectionStatusLabel(sec.Status))
			}
		}
		if p.CurrentSectionID != "" {
			fmt.Fprintf(&b, "Currently working on: %s\n", p.CurrentSectionID)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
