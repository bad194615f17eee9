package orchestrator

import "errors"

var (
	// ErrStageIncomplete indicates the current stage's exit criteria are
	// not met, so the workflow cannot advance.
	ErrStageIncomplete = errors.New("current stage exit criteria not met")

	// ErrWorkflowComplete indicates the workflow is at its terminal stage.
	ErrWorkflowComplete = errors.New("workflow already complete")

	// ErrUnknownStage indicates a stage name outside the canonical order.
	ErrUnknownStage = errors.New("unknown workflow stage")

	// ErrForwardJump indicates an attempt to navigate forward; stages are
	// only ever entered in order via Advance.
	ErrForwardJump = errors.New("cannot navigate forward past unfinished stages")

	// ErrUnknownSection indicates a section id not present in the outline.
	ErrUnknownSection = errors.New("unknown section")

	// ErrUnknownSlide indicates a slide id not present in its section.
	ErrUnknownSlide = errors.New("unknown slide")
)
