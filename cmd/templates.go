package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/spf13/cobra"

	"github.com/zjrosen/pagesmith/internal/config"
	"github.com/zjrosen/pagesmith/internal/templates"
)

const templateDescWidth = 60

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List built-in site templates",
	Long: `List the built-in site templates.

Examples:
  # List templates
  pagesmith templates

  # Start the editor from one
  pagesmith --template portfolio`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		list, err := templates.List()
		if err != nil {
			return err
		}
		return printTemplates(cmd.OutOrStdout(), list, cfg.Template)
	},
}

var templatesUseCmd = &cobra.Command{
	Use:   "use NAME",
	Short: "Set the default template in the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ValidateTemplate(args[0]); err != nil {
			return err
		}
		path := configPath()
		if err := config.SaveTemplate(path, args[0]); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "default template set to %s in %s\n", args[0], path)
		return err
	},
}

func init() {
	templatesCmd.AddCommand(templatesUseCmd)
	rootCmd.AddCommand(templatesCmd)
}

// printTemplates writes one line per template. The current default is
// marked with an asterisk.
func printTemplates(w io.Writer, list []templates.Template, current string) error {
	if current == "" {
		current = templates.DefaultTemplate
	}

	idWidth := 0
	for _, tpl := range list {
		idWidth = max(idWidth, lipgloss.Width(tpl.ID))
	}
	idStyle := lipgloss.NewStyle().Bold(true).Width(idWidth + 2)
	catStyle := lipgloss.NewStyle().Faint(true).Width(14)

	for _, tpl := range list {
		marker := "  "
		if tpl.ID == current {
			marker = "* "
		}
		line := marker +
			idStyle.Render(tpl.ID) +
			catStyle.Render(tpl.Category) +
			fmt.Sprintf("%2d blocks  ", len(tpl.Blocks)) +
			truncate.StringWithTail(tpl.Description, templateDescWidth, "...")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
