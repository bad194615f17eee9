package formatter

import (
	"strings"
	"testing"

	"cimforge/internal/domain"
	"cimforge/internal/prompt"
	"github.com/stretchr/testify/assert"
)

func TestStagePill(t *testing.T) {
	p := domain.WorkflowProgress{
		CurrentStage:    domain.StageHeroConcept,
		CompletedStages: []domain.WorkflowStage{domain.StageWelcome},
	}
	assert.Contains(t, StagePill(domain.StageHeroConcept, p), "(current)")
	assert.Contains(t, StagePill(domain.StageWelcome, p), "✔")
	assert.Contains(t, StagePill(domain.StageOutline, p), "○")
}

func TestRenderWorkflowListsAllStages(t *testing.T) {
	out := RenderWorkflow(domain.WorkflowProgress{})
	for _, stage := range domain.StageOrder {
		assert.Contains(t, out, prompt.StageLabel(stage))
	}
	assert.Equal(t, 1, strings.Count(out, "(current)"))
}

func TestRenderWorkflowSections(t *testing.T) {
	p := domain.WorkflowProgress{
		CurrentStage: domain.StageBuildingSections,
		SectionProgress: []domain.SectionProgress{
			{SectionID: "exec", Status: domain.SectionComplete, Slides: []domain.SlideProgress{
				{SlideID: "s1", ContentApproved: true, VisualApproved: true},
			}},
			{SectionID: "fin", Status: domain.SectionPending},
		},
		CurrentSectionID: "exec",
	}
	out := RenderWorkflow(p)
	assert.Contains(t, out, "exec")
	assert.Contains(t, out, "1/1 slides approved")
	assert.Contains(t, out, "working on: exec")
}

func TestRenderCachedPromptSummary(t *testing.T) {
	small := prompt.CachedPrompt{Static: "tiny", Dynamic: "d"}
	assert.Contains(t, RenderCachedPromptSummary(small), "below caching threshold")

	big := prompt.CachedPrompt{Static: strings.Repeat("a", 5000), Dynamic: "d"}
	assert.Contains(t, RenderCachedPromptSummary(big), "cacheable")
}
