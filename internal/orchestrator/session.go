// Package orchestrator owns the conversation state for a CIM engagement.
// It is the sole writer of domain.DealState: the prompt compiler and the
// CLI read the state through Session.State and never mutate it.
package orchestrator

import (
	"fmt"

	"github.com/google/uuid"

	"cimforge/internal/domain"
)

// Session is one CIM-building conversation and its state.
type Session struct {
	ID    string
	state domain.DealState
}

// NewSession creates a fresh session at the welcome stage.
func NewSession() *Session {
	return &Session{
		ID: uuid.NewString(),
		state: domain.DealState{
			Progress: domain.WorkflowProgress{CurrentStage: domain.StageWelcome},
		},
	}
}

// State returns a copy of the current deal state. Slices inside the copy
// are shared; callers treat the result as read-only, matching the
// compiler's contract.
func (s *Session) State() domain.DealState {
	return s.state
}

// SetCompanyName records the company under discussion.
func (s *Session) SetCompanyName(name string) {
	s.state.CompanyName = name
}

// MarkKnowledgeLoaded flags that a knowledge base is available.
func (s *Session) MarkKnowledgeLoaded() {
	s.state.KnowledgeLoaded = true
}

// SetPersona records the agreed buyer persona.
func (s *Session) SetPersona(p domain.BuyerPersona) {
	s.state.Persona = &p
}

// SetHero records the selected hero concept and thesis.
func (s *Session) SetHero(h domain.HeroContext) {
	s.state.Hero = &h
}

// SetOutline records the agreed outline, assigns IDs to sections that lack
// one, and seeds pending section progress for each section.
func (s *Session) SetOutline(o domain.Outline) {
	for i := range o.Sections {
		if o.Sections[i].ID == "" {
			o.Sections[i].ID = uuid.NewString()
		}
	}
	s.state.Outline = &o

	progress := make([]domain.SectionProgress, 0, len(o.Sections))
	for _, sec := range o.Sections {
		progress = append(progress, domain.SectionProgress{
			SectionID: sec.ID,
			Status:    domain.SectionPending,
		})
	}
	s.state.Progress.SectionProgress = progress
	s.state.Progress.CurrentSectionID = ""
}

// SaveContext applies a mutation to the gathered context. Detour facts
// arrive at any stage, so this carries no stage validation.
func (s *Session) SaveContext(fn func(*domain.GatheredContext)) {
	fn(&s.state.Context)
}

// Advance moves the workflow to the next stage once the current stage's
// exit criteria hold. The completed stage is recorded exactly once.
func (s *Session) Advance() error {
	current := s.state.Stage()
	if current == domain.StageComplete {
		return ErrWorkflowComplete
	}
	if err := s.exitCriteria(current); err != nil {
		return err
	}

	next, ok := domain.NextStage(current)
	if !ok {
		return ErrWorkflowComplete
	}
	if !s.state.Progress.StageCompleted(current) {
		s.state.Progress.CompletedStages = append(s.state.Progress.CompletedStages, current)
	}
	s.state.Progress.CurrentStage = next
	return nil
}

// exitCriteria checks the facts each stage must have produced before the
// workflow may leave it.
func (s *Session) exitCriteria(stage domain.WorkflowStage) error {
	switch stage {
	case domain.StageWelcome:
		if s.state.CompanyName == "" {
			return fmt.Errorf("%w: company name not set", ErrStageIncomplete)
		}
	case domain.StageBuyerPersona:
		if s.state.Persona == nil {
			return fmt.Errorf("%w: buyer persona not set", ErrStageIncomplete)
		}
	case domain.StageHeroConcept:
		if s.state.Hero == nil || s.state.Hero.SelectedHero == "" {
			return fmt.Errorf("%w: hero concept not selected", ErrStageIncomplete)
		}
	case domain.StageInvestmentThesis:
		if s.state.Hero == nil {
			return fmt.Errorf("%w: investment thesis not set", ErrStageIncomplete)
		}
		th := s.state.Hero.Thesis
		if th.Asset == "" || th.Timing == "" || th.Opportunity == "" {
			return fmt.Errorf("%w: investment thesis has empty legs", ErrStageIncomplete)
		}
	case domain.StageOutline:
		if s.state.Outline.Empty() {
			return fmt.Errorf("%w: outline has no sections", ErrStageIncomplete)
		}
	case domain.StageBuildingSections:
		for _, sec := range s.state.Progress.SectionProgress {
			if sec.Status != domain.SectionComplete {
				return fmt.Errorf("%w: section %s is %s", ErrStageIncomplete, sec.SectionID, sec.Status)
			}
		}
	}
	return nil
}

// NavigateTo jumps back to an earlier stage at the user's request.
// Completed stages at or after the target are un-completed so the workflow
// re-runs from there; persisted facts and section build progress are
// preserved so prior work is revised rather than recreated.
func (s *Session) NavigateTo(target domain.WorkflowStage) error {
	ti := domain.StageIndex(target)
	if ti < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownStage, target)
	}
	ci := domain.StageIndex(s.state.Stage())
	if ti > ci {
		return fmt.Errorf("%w: %s is ahead of %s", ErrForwardJump, target, s.state.Stage())
	}

	kept := s.state.Progress.CompletedStages[:0]
	for _, c := range s.state.Progress.CompletedStages {
		if domain.StageIndex(c) < ti {
			kept = append(kept, c)
		}
	}
	s.state.Progress.CompletedStages = kept
	s.state.Progress.CurrentStage = target
	return nil
}

// StartSection marks a section as the one being worked on and moves it
// into content development if it was still pending.
func (s *Session) StartSection(sectionID string) error {
	sec := s.state.Progress.Section(sectionID)
	if sec == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
	}
	if sec.Status == domain.SectionPending {
		sec.Status = domain.SectionContentDevelopment
	}
	s.state.Progress.CurrentSectionID = sectionID
	return nil
}

// SetSectionStatus records a section status transition.
func (s *Session) SetSectionStatus(sectionID string, status domain.SectionStatus) error {
	sec := s.state.Progress.Section(sectionID)
	if sec == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
	}
	sec.Status = status
	return nil
}

// AddSlide appends a slide to a section, assigning an id when absent,
// and returns the slide id.
func (s *Session) AddSlide(sectionID, slideID string) (string, error) {
	sec := s.state.Progress.Section(sectionID)
	if sec == nil {
		return "", fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
	}
	if slideID == "" {
		slideID = uuid.NewString()
	}
	sec.Slides = append(sec.Slides, domain.SlideProgress{SlideID: slideID})
	return slideID, nil
}

// ApproveSlide records content and/or visual approval for a slide.
func (s *Session) ApproveSlide(sectionID, slideID string, content, visual bool) error {
	sec := s.state.Progress.Section(sectionID)
	if sec == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSection, sectionID)
	}
	for i := range sec.Slides {
		if sec.Slides[i].SlideID != slideID {
			continue
		}
		if content {
			sec.Slides[i].ContentApproved = true
		}
		if visual {
			sec.Slides[i].VisualApproved = true
		}
		return nil
	}
	return fmt.Errorf("%w: %s in section %s", ErrUnknownSlide, slideID, sectionID)
}
