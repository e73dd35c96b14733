package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/pagesmith/internal/blocks"
	"github.com/zjrosen/pagesmith/internal/config"
	"github.com/zjrosen/pagesmith/internal/document"
	"github.com/zjrosen/pagesmith/internal/export"
	"github.com/zjrosen/pagesmith/internal/shared"
)

var (
	exportTemplate string
	exportOutput   string
	exportFrom     string
	exportSave     bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a site as JSON without opening the editor",
	Long: `Build a site from a template and write it as JSON.

With --from, a previously exported site is read back, validated, and
written again with block order renumbered.

Examples:
  # Export the default template to stdout
  pagesmith export

  # Export a built-in template to a file
  pagesmith export --template portfolio -o site.json

  # Normalize an exported site
  pagesmith export --from site.json -o clean.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if exportFrom != "" && cmd.Flags().Changed("template") {
			return fmt.Errorf("--from and --template cannot be combined")
		}

		doc, err := exportSource()
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			return export.Write(cmd.OutOrStdout(), doc)
		}
		if err := export.WriteFile(exportOutput, doc); err != nil {
			return err
		}
		if exportSave {
			if err := config.SaveExportPath(configPath(), exportOutput); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
		}
		_, err = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d blocks)\n", exportOutput, doc.Len())
		return err
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "built-in template to export (default from config)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "re-read an exported site instead of building a template")
	exportCmd.Flags().BoolVar(&exportSave, "save", false, "remember --output as export_path in the config file")
	rootCmd.AddCommand(exportCmd)
}

func exportSource() (document.Website, error) {
	if exportFrom != "" {
		return export.ReadFile(exportFrom)
	}

	name := exportTemplate
	if name == "" {
		name = cfg.Template
	}
	return openDocument(blocks.NewRegistry(), shared.UUIDGenerator{}, "", name)
}
