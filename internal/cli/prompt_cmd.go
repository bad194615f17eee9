package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cimforge/internal/cli/formatter"
)

func newPromptCmd(app *App) *cobra.Command {
	var cached bool

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the compiled system prompt for the current state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state := app.Session.State()

			if !cached {
				fmt.Fprintln(cmd.OutOrStdout(), app.Compiler.SystemPrompt(state))
				return nil
			}

			p := app.Compiler.SystemPromptForCaching(state)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("static (cached prefix)"))
			fmt.Fprintln(out, p.Static)
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Header("dynamic (per request)"))
			fmt.Fprintln(out, p.Dynamic)
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.RenderCachedPromptSummary(p))
			return nil
		},
	}

	cmd.Flags().BoolVar(&cached, "cached", false, "print the static/dynamic cache split instead of the full prompt")
	return cmd
}
