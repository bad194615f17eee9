package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive session with the CIM assistant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.Chat == nil {
				return fmt.Errorf("no chat backend configured; set ANTHROPIC_API_KEY or run a local Ollama")
			}
			if !app.Chat.Available(context.Background()) {
				return fmt.Errorf("chat backend is not reachable; check CIMFORGE_LLM_* settings")
			}

			_, err := tea.NewProgram(newChatModel(app)).Run()
			return err
		},
	}
}
