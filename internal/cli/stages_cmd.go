package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cimforge/internal/cli/formatter"
	"cimforge/internal/domain"
	"cimforge/internal/prompt"
)

func newStagesCmd(app *App) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:   "stages",
		Short: "List the workflow stages in order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			progress := app.Session.State().Progress

			for i, stage := range domain.StageOrder {
				fmt.Fprintf(out, "%d. %s\n", i+1, formatter.StagePill(stage, progress))
				if long {
					fmt.Fprintln(out, formatter.Dim(prompt.StageInstructions(stage)))
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&long, "long", false, "include each stage's full instructions")
	return cmd
}
