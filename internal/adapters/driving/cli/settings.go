package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change preview, sign-in and seed settings.

Settings are stored in config.toml in the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Keys:
  preview.show_on_start     open the preview when the dashboard loads (true/false)
  preview.width             preview width in columns
  access.max_failed_logins  failed sign-ins allowed before throttling (0 disables)
  access.cooldown           time to regain one failed sign-in, e.g. 30s
  seed.path                 JSON file to load the resume from (empty for built-in)
  seed.watch                reload the seed file when it changes (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	if s.Settings == nil {
		return errors.New("settings service not configured")
	}

	settings, err := s.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Preview]")
	cmd.Printf("  Show on start: %s\n", yesNo(settings.Preview.ShowOnStart))
	cmd.Printf("  Width: %d\n", settings.Preview.Width)
	cmd.Println()

	cmd.Println("[Access]")
	if settings.Access.MaxFailedLogins > 0 {
		cmd.Printf("  Max failed logins: %d\n", settings.Access.MaxFailedLogins)
		cmd.Printf("  Cooldown: %s\n", settings.Access.Cooldown)
	} else {
		cmd.Println("  Throttling: disabled")
	}
	cmd.Println()

	cmd.Println("[Seed]")
	if settings.Seed.Path != "" {
		cmd.Printf("  Path: %s\n", settings.Seed.Path)
	} else {
		cmd.Println("  Path: (built-in)")
	}
	cmd.Printf("  Watch: %s\n", yesNo(settings.Seed.Watch))
	cmd.Println()

	cmd.Printf("Config: %s\n", s.Settings.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	s, err := requireServices()
	if err != nil {
		return err
	}
	if s.Settings == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := s.Settings.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w\nvalid keys: %s", err, strings.Join(s.Settings.Keys(), ", "))
		}
		return err
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
