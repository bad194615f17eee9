package orchestrator

import (
	"testing"

	"cimforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// advanceToBuilding walks a session through the first five stages.
func advanceToBuilding(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	s.SetCompanyName("Meridian Analytics")
	require.NoError(t, s.Advance())

	s.SetPersona(domain.BuyerPersona{Type: domain.BuyerStrategic})
	require.NoError(t, s.Advance())

	s.SetHero(domain.HeroContext{
		SelectedHero: "The compliance data layer",
		Thesis: domain.InvestmentThesis{
			Asset: "Only full-coverage vendor", Timing: "Regulation lands 2027", Opportunity: "EU expansion",
		},
	})
	require.NoError(t, s.Advance())
	require.NoError(t, s.Advance())

	s.SetOutline(domain.Outline{Sections: []domain.OutlineSection{
		{ID: "exec", Title: "Executive Summary"},
		{ID: "fin", Title: "Financial Overview"},
	}})
	require.NoError(t, s.Advance())

	require.Equal(t, domain.StageBuildingSections, s.State().Stage())
	return s
}

func TestNewSessionStartsAtWelcome(t *testing.T) {
	s := NewSession()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, domain.StageWelcome, s.State().Stage())
	assert.Empty(t, s.State().Progress.CompletedStages)
}

func TestAdvanceRequiresExitCriteria(t *testing.T) {
	s := NewSession()

	// Welcome blocks without a company name.
	err := s.Advance()
	require.ErrorIs(t, err, ErrStageIncomplete)
	assert.Equal(t, domain.StageWelcome, s.State().Stage())

	s.SetCompanyName("Meridian Analytics")
	require.NoError(t, s.Advance())
	assert.Equal(t, domain.StageBuyerPersona, s.State().Stage())
	assert.True(t, s.State().Progress.StageCompleted(domain.StageWelcome))

	// Buyer persona blocks until set.
	require.ErrorIs(t, s.Advance(), ErrStageIncomplete)
	s.SetPersona(domain.BuyerPersona{Type: domain.BuyerPE})
	require.NoError(t, s.Advance())

	// Hero concept blocks until a hero is selected.
	require.ErrorIs(t, s.Advance(), ErrStageIncomplete)
	s.SetHero(domain.HeroContext{SelectedHero: "hero"})
	require.NoError(t, s.Advance())

	// Investment thesis blocks on empty legs.
	require.ErrorIs(t, s.Advance(), ErrStageIncomplete)
	s.SetHero(domain.HeroContext{
		SelectedHero: "hero",
		Thesis:       domain.InvestmentThesis{Asset: "a", Timing: "t", Opportunity: "o"},
	})
	require.NoError(t, s.Advance())

	// Outline blocks while empty.
	require.ErrorIs(t, s.Advance(), ErrStageIncomplete)
	s.SetOutline(domain.Outline{Sections: []domain.OutlineSection{{ID: "exec", Title: "Exec"}}})
	require.NoError(t, s.Advance())
	assert.Equal(t, domain.StageBuildingSections, s.State().Stage())
}

func TestAdvanceBlocksUntilSectionsComplete(t *testing.T) {
	s := advanceToBuilding(t)

	require.ErrorIs(t, s.Advance(), ErrStageIncomplete)

	require.NoError(t, s.SetSectionStatus("exec", domain.SectionComplete))
	require.ErrorIs(t, s.Advance(), ErrStageIncomplete)

	require.NoError(t, s.SetSectionStatus("fin", domain.SectionComplete))
	require.NoError(t, s.Advance())
	assert.Equal(t, domain.StageComplete, s.State().Stage())

	require.ErrorIs(t, s.Advance(), ErrWorkflowComplete)
}

func TestAdvanceRecordsCompletedStageOnce(t *testing.T) {
	s := NewSession()
	s.SetCompanyName("Meridian Analytics")
	require.NoError(t, s.Advance())
	require.NoError(t, s.NavigateTo(domain.StageWelcome))
	require.NoError(t, s.Advance())

	count := 0
	for _, c := range s.State().Progress.CompletedStages {
		if c == domain.StageWelcome {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestNavigateToRejectsForwardAndUnknown(t *testing.T) {
	s := NewSession()
	require.ErrorIs(t, s.NavigateTo(domain.StageOutline), ErrForwardJump)
	require.ErrorIs(t, s.NavigateTo("sideways"), ErrUnknownStage)
}

func TestNavigateBackPreservesWork(t *testing.T) {
	s := advanceToBuilding(t)

	require.NoError(t, s.NavigateTo(domain.StageBuyerPersona))
	state := s.State()

	assert.Equal(t, domain.StageBuyerPersona, state.Stage())
	// Stages at or after the target are re-opened.
	assert.Equal(t, []domain.WorkflowStage{domain.StageWelcome}, state.Progress.CompletedStages)
	// Prior work survives for revision.
	assert.NotNil(t, state.Persona)
	assert.NotNil(t, state.Hero)
	assert.False(t, state.Outline.Empty())
	assert.Len(t, state.Progress.SectionProgress, 2)
}

func TestSetOutlineAssignsIDsAndSeedsProgress(t *testing.T) {
	s := NewSession()
	s.SetOutline(domain.Outline{Sections: []domain.OutlineSection{
		{Title: "Executive Summary"},
		{ID: "fin", Title: "Financial Overview"},
	}})

	state := s.State()
	require.Len(t, state.Outline.Sections, 2)
	assert.NotEmpty(t, state.Outline.Sections[0].ID)
	assert.Equal(t, "fin", state.Outline.Sections[1].ID)

	require.Len(t, state.Progress.SectionProgress, 2)
	for i, sec := range state.Progress.SectionProgress {
		assert.Equal(t, state.Outline.Sections[i].ID, sec.SectionID)
		assert.Equal(t, domain.SectionPending, sec.Status)
	}
}

func TestStartSection(t *testing.T) {
	s := advanceToBuilding(t)

	require.NoError(t, s.StartSection("exec"))
	state := s.State()
	assert.Equal(t, "exec", state.Progress.CurrentSectionID)
	assert.Equal(t, domain.SectionContentDevelopment, state.Progress.Section("exec").Status)

	require.ErrorIs(t, s.StartSection("nope"), ErrUnknownSection)
}

func TestSlideLifecycle(t *testing.T) {
	s := advanceToBuilding(t)

	id, err := s.AddSlide("exec", "")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NoError(t, s.ApproveSlide("exec", id, true, false))
	st := s.State()
	sec := st.Progress.Section("exec")
	require.Len(t, sec.Slides, 1)
	assert.True(t, sec.Slides[0].ContentApproved)
	assert.False(t, sec.Slides[0].VisualApproved)
	assert.Equal(t, 0, sec.ApprovedSlides())

	require.NoError(t, s.ApproveSlide("exec", id, false, true))
	st = s.State()
	assert.Equal(t, 1, st.Progress.Section("exec").ApprovedSlides())

	_, err = s.AddSlide("ghost", "x")
	require.ErrorIs(t, err, ErrUnknownSection)
	require.ErrorIs(t, s.ApproveSlide("exec", "ghost", true, true), ErrUnknownSlide)
}

func TestSaveContext(t *testing.T) {
	s := NewSession()
	s.SaveContext(func(c *domain.GatheredContext) {
		c.Notes = append(c.Notes, "founder prefers strategic buyer")
	})
	s.SaveContext(func(c *domain.GatheredContext) {
		c.Financials = &domain.FinancialFacts{Revenue: "$12M"}
	})

	state := s.State()
	assert.Equal(t, []string{"founder prefers strategic buyer"}, state.Context.Notes)
	assert.Equal(t, "$12M", state.Context.Financials.Revenue)
}
