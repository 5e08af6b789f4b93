package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the resume as JSON or TOML",
	Long: `Write the current resume document to stdout or a file.

The JSON output can be used as a seed file (seed.path).

Examples:
  resumedesk export > resume.json
  resumedesk export --format toml -o resume.toml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json or toml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	format := domain.ExportFormat(strings.ToLower(exportFormat))
	data, err := s.Exporter.Export(s.Store.Get(), format)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if exportOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOutput, err)
	}
	cmd.Printf("Exported %s to %s\n", format, exportOutput)
	return nil
}
