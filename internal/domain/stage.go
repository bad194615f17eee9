package domain

// WorkflowStage identifies a step in the fixed CIM-building conversation flow.
type WorkflowStage string

const (
	StageWelcome          WorkflowStage = "welcome"
	StageBuyerPersona     WorkflowStage = "buyer_persona"
	StageHeroConcept      WorkflowStage = "hero_concept"
	StageInvestmentThesis WorkflowStage = "investment_thesis"
	StageOutline          WorkflowStage = "outline"
	StageBuildingSections WorkflowStage = "building_sections"
	StageComplete         WorkflowStage = "complete"
)

// StageOrder is the canonical stage sequence. Stages are never skipped when
// advancing; backward navigation is an explicit operation.
var StageOrder = []WorkflowStage{
	StageWelcome,
	StageBuyerPersona,
	StageHeroConcept,
	StageInvestmentThesis,
	StageOutline,
	StageBuildingSections,
	StageComplete,
}

// StageIndex returns the position of a stage in the canonical order,
// or -1 for an unknown stage.
func StageIndex(s WorkflowStage) int {
	for i, st := range StageOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// ValidStage reports whether s is a known workflow stage.
func ValidStage(s WorkflowStage) bool {
	return StageIndex(s) >= 0
}

// NextStage returns the successor of s in the canonical order.
// The second return is false when s is the final stage or unknown.
func NextStage(s WorkflowStage) (WorkflowStage, bool) {
	i := StageIndex(s)
	if i < 0 || i >= len(StageOrder)-1 {
		return "", false
	}
	return StageOrder[i+1], true
}

// SectionStatus tracks how far along a CIM section build is.
type SectionStatus string

const (
	SectionPending            SectionStatus = "pending"
	SectionContentDevelopment SectionStatus = "content_development"
	SectionBuildingSlides     SectionStatus = "building_slides"
	SectionComplete           SectionStatus = "complete"
)

// BuyerType classifies the target buyer the CIM is positioned for.
type BuyerType string

const (
	BuyerStrategic BuyerType = "strategic"
	BuyerFinancial BuyerType = "financial"
	BuyerPE        BuyerType = "pe"
)
