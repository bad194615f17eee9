package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cimforge/internal/cli/formatter"
	"cimforge/internal/prompt"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show workflow position and gathered facts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := app.Session.State()
			out := cmd.OutOrStdout()

			title := "CIM Workflow"
			if state.CompanyName != "" {
				title = state.CompanyName
			}
			fmt.Fprintln(out, formatter.RenderBox(title, formatter.RenderWorkflow(state.Progress)))

			fmt.Fprintln(out, formatter.Header("Buyer Persona"))
			fmt.Fprintln(out, prompt.FormatBuyerPersona(state.Persona))
			fmt.Fprintln(out, formatter.Header("Hero Concept"))
			fmt.Fprintln(out, prompt.FormatHeroContext(state.Hero))
			fmt.Fprintln(out, formatter.Header("Outline"))
			fmt.Fprintln(out, prompt.FormatOutline(state.Outline))
			fmt.Fprintln(out, formatter.Header("Gathered Context"))
			fmt.Fprintln(out, prompt.FormatGatheredContext(state.Context))
			return nil
		},
	}
}
