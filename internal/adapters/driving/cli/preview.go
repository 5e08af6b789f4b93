package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui/views/preview"
)

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the rendered resume",
	Long: `Print the resume as it appears in the dashboard's live preview.

The width defaults to the preview.width setting.`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 0, "wrap width in columns")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}

	width := previewWidth
	if width <= 0 && s.Settings != nil {
		if current, err := s.Settings.Get(); err == nil {
			width = current.Preview.Width
		}
	}
	if width <= 0 {
		return fmt.Errorf("invalid width %d", width)
	}

	model := s.Preview.Project(s.Store.Get())
	fmt.Fprint(cmd.OutOrStdout(), preview.Render(model, width, styles.DefaultStyles()))
	return nil
}
