package domain

// SlideProgress tracks approval of a single slide. A slide counts as
// approved only when both content and visual have been signed off.
type SlideProgress struct {
	SlideID         string
	ContentApproved bool
	VisualApproved  bool
}

// Approved reports whether both approval flags are set.
func (s SlideProgress) Approved() bool {
	return s.ContentApproved && s.VisualApproved
}

// SectionProgress tracks the build state of one CIM section.
type SectionProgress struct {
	SectionID string
	Status    SectionStatus
	Slides    []SlideProgress
}

// ApprovedSlides returns the number of fully approved slides.
func (s SectionProgress) ApprovedSlides() int {
	n := 0
	for _, sl := range s.Slides {
		if sl.Approved() {
			n++
		}
	}
	return n
}

// WorkflowProgress is the position of a conversation within the workflow.
// SectionProgress is a slice rather than a map so that rendering preserves
// insertion order.
type WorkflowProgress struct {
	CurrentStage     WorkflowStage
	CompletedStages  []WorkflowStage
	SectionProgress  []SectionProgress
	CurrentSectionID string
}

// StageCompleted reports whether s appears in CompletedStages.
func (p WorkflowProgress) StageCompleted(s WorkflowStage) bool {
	for _, c := range p.CompletedStages {
		if c == s {
			return true
		}
	}
	return false
}

// Section returns a pointer into SectionProgress for the given id, or nil.
func (p *WorkflowProgress) Section(id string) *SectionProgress {
	for i := range p.SectionProgress {
		if p.SectionProgress[i].SectionID == id {
			return &p.SectionProgress[i]
		}
	}
	return nil
}

// DealState is the aggregate conversation state for one CIM engagement.
// The orchestrator is the sole writer; the prompt compiler only reads it.
// The zero value is valid and renders as a fresh welcome-stage conversation.
type DealState struct {
	CompanyName     string
	KnowledgeLoaded bool
	Progress        WorkflowProgress
	Persona         *BuyerPersona
	Hero            *HeroContext
	Outline         *Outline
	Context         GatheredContext
}

// Stage returns the current stage, defaulting to welcome for a zero state.
func (s DealState) Stage() WorkflowStage {
	if s.Progress.CurrentStage == "" {
		return StageWelcome
	}
	return s.Progress.CurrentStage
}
