// Package cli wires the cimforge commands: an interactive chat session
// with the CIM assistant plus inspection commands for the compiled prompt
// and workflow state.
package cli

import (
	"github.com/spf13/cobra"

	"cimforge/internal/llm"
	"cimforge/internal/orchestrator"
	"cimforge/internal/prompt"
)

// App holds the collaborators CLI commands run against.
type App struct {
	Session  *orchestrator.Session
	Compiler prompt.Compiler
	Chat     llm.Client
}

// NewRootCmd creates the top-level "cimforge" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cimforge",
		Short: "AI-assisted CIM builder for M&A deal teams",
	}

	root.AddCommand(
		newChatCmd(app),
		newSetupCmd(app),
		newPromptCmd(app),
		newStatusCmd(app),
		newStagesCmd(app),
	)

	return root
}
