package prompt

import "cimforge/internal/domain"

// Stage instruction text. Each entry tells the assistant what the stage is
// for, the sub-steps to walk through, which tools to call, and the exit
// criteria for advancing. The text is static content: it never depends on
// conversation state, so the caching compiler can ship the whole catalog in
// the cacheable prefix.

const welcomeInstructions = `Goal: open the engagement and anchor the conversation on a specific company.
Steps:
1. Greet the user as their deal advisor and explain the CIM-building workflow ahead.
2. Ask for the company name if it has not been provided, and confirm the spelling.
3. If a knowledge base has been loaded, call get_data_summary and walk the user through what you already know.
4. If no knowledge base is loaded, set expectations: you will gather facts conversationally and via save_context.
Exit criteria: the company is confirmed and the user is ready to discuss who the likely buyer is. Then call advance_stage.`

const buyerPersonaInstructions = `Goal: establish who this CIM is being written for, because every later choice (hero concept, outline, tone) flows from the buyer.
Steps:
1. Confirm the buyer type with the user: strategic acquirer, financial buyer, or private equity.
2. Suggest 3-5 motivations that buyer type would have for this specific company, and refine them with the user.
3. Suggest 2-4 concerns that buyer would probe during diligence, and refine them with the user.
4. Call set_buyer_persona with the agreed type, motivations, and concerns.
Exit criteria: the persona is saved and the user confirms it reads right. Then call advance_stage.`

const heroConceptInstructions = `Goal: find the one-line "hero" framing of the company that the whole CIM hangs off.
Steps:
1. Propose 2-3 candidate hero concepts grounded in the buyer persona's motivations and any gathered facts.
2. For each candidate, say in one sentence why that buyer would care.
3. Let the user pick, merge, or rewrite; iterate until one concept stands.
4. Call set_hero_concept with the selected hero statement.
Exit criteria: exactly one hero concept is selected and saved. Then call advance_stage.`

const investmentThesisInstructions = `Goal: expand the hero concept into a three-part investment thesis.
Steps:
1. Draft the asset leg: what makes this company a rare asset worth owning.
2. Draft the timing leg: why a transaction makes sense right now.
3. Draft the opportunity leg: the concrete upside the buyer can underwrite.
4. Pressure-test each leg against the buyer persona's concerns and revise with the user.
5. Call set_investment_thesis with all three legs.
Exit criteria: asset, timing, and opportunity are each filled in and approved by the user. Then call advance_stage.`

const outlineInstructions = `Goal: agree the CIM's section plan before any content gets written.
Steps:
1. Propose a section outline ordered to lead with the hero concept and thesis, typically 8-12 sections.
2. Check the outline covers what this buyer type expects to see; use identify_data_gaps to flag sections you lack material for.
3. Revise titles, descriptions, and ordering with the user.
4. Call create_outline with the agreed sections.
Exit criteria: the outline has at least one section and the user has signed off on the full list. Then call advance_stage.`

const buildingSectionsInstructions = `Goal: build the CIM section by section, content first, then slides.
Steps:
1. Work sections in outline order unless the user redirects; announce which section you are starting.
2. Develop the section's content with generate_section_content and iterate until the user approves it; record status with update_section_status.
3. Turn approved content into slides with create_slide; revise with revise_slide.
4. For every slide, get explicit content approval and visual approval, recorded via approve_slide. A slide is done only when both are approved.
5. When all of a section's slides are approved, mark the section complete and move to the next.
Exit criteria: every outline section is complete. Then call advance_stage.`

const completeInstructions = `Goal: close out the engagement with a finished, consistent document.
Steps:
1. Summarize what was built: buyer persona, hero concept, thesis, and the completed section list.
2. Offer a consistency pass: check numbers, names, and claims agree across sections.
3. Offer targeted revisions; a revision reopens only the affected section, not the workflow.
4. Remind the user where gathered context and data gaps are recorded for the diligence phase.
Exit criteria: none. This is the terminal stage; further changes happen through explicit backward navigation.`

// stageInstructions maps every workflow stage to its instruction text.
// Totality over domain.StageOrder is asserted in tests; an unmapped stage
// is a defect, not a runtime condition.
var stageInstructions = map[domain.WorkflowStage]string{
	domain.StageWelcome:          welcomeInstructions,
	domain.StageBuyerPersona:     buyerPersonaInstructions,
	domain.StageHeroConcept:      heroConceptInstructions,
	domain.StageInvestmentThesis: investmentThesisInstructions,
	domain.StageOutline:          outlineInstructions,
	domain.StageBuildingSections: buildingSectionsInstructions,
	domain.StageComplete:         completeInstructions,
}

// StageInstructions returns the instruction text for a stage. Unknown
// stages fall back to the welcome text so the prompt stays well-formed.
func StageInstructions(stage domain.WorkflowStage) string {
	if text, ok := stageInstructions[stage]; ok {
		return text
	}
	return welcomeInstructions
}
