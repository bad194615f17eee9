package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"cimforge/internal/cli/formatter"
	"cimforge/internal/domain"
)

// forgeHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func forgeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// setupForm collects the engagement basics before the first chat turn.
func setupForm(company *string, buyerType *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Company name").
				Placeholder("Meridian Analytics").
				Value(company).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("company name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Likely buyer type").
				Options(
					huh.NewOption("Strategic acquirer", string(domain.BuyerStrategic)),
					huh.NewOption("Financial buyer", string(domain.BuyerFinancial)),
					huh.NewOption("Private equity", string(domain.BuyerPE)),
					huh.NewOption("Not sure yet", ""),
				).
				Value(buyerType),
		),
	).WithTheme(forgeHuhTheme()).WithShowHelp(false)
}

func newSetupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Record the engagement basics before chatting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var company, buyerType string

			if err := setupForm(&company, &buyerType).Run(); err != nil {
				return fmt.Errorf("setup aborted: %w", err)
			}

			app.Session.SetCompanyName(strings.TrimSpace(company))
			if buyerType != "" {
				app.Session.SaveContext(func(c *domain.GatheredContext) {
					c.Notes = append(c.Notes, "Initial buyer type guess: "+buyerType)
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Engagement set up for %s. Run `cimforge chat` to begin.\n", company)
			return nil
		},
	}
}
