// Package cli provides the resumedesk command line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driven"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
	"github.com/custodia-labs/resumedesk/internal/logger"
)

// version is set at build time.
var version = "dev"

// Options carries the global flags to the bootstrap function.
type Options struct {
	ConfigDir string
	Verbose   bool
}

// Services are the ports the commands run against.
type Services struct {
	Store    driving.DocumentStore
	Preview  driving.PreviewRenderer
	Exporter driving.DocumentExporter
	Access   driving.AccessGate
	Settings driving.SettingsService

	// TUI holds the ports for the dashboard.
	TUI *tui.Ports

	// Watcher is set when the document was loaded from a file that can be
	// watched for changes.
	Watcher driven.SeedWatcher

	// LoginHint is shown under the login form.
	LoginHint string
}

// Bootstrap builds the services once the global flags are known.
type Bootstrap func(opts Options) (*Services, error)

var (
	bootstrap Bootstrap
	active    *Services
	opts      Options
)

// errNotConfigured is returned when a command runs before services exist.
var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "resumedesk",
	Short: "Edit a resume from the terminal",
	Long: `resumedesk is a terminal dashboard for editing a single-page resume.

Sign in as an admin to edit the profile, skills, experience, education,
projects and certifications, with a live preview that follows every change.
Viewers can browse but not edit.

Running resumedesk with no command opens the dashboard.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.ConfigDir, "config-dir", "", "configuration directory (default ~/.resumedesk)")
	registerTUIFlags(rootCmd)
}

// SetBootstrap sets the function that builds the services.
func SetBootstrap(fn Bootstrap) {
	bootstrap = fn
}

// SetServices sets the services directly, bypassing the bootstrap.
func SetServices(s *Services) {
	active = s
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(opts.Verbose)
	logger.Debug("command: %s", cmd.CommandPath())

	if active != nil || bootstrap == nil {
		return nil
	}
	s, err := bootstrap(opts)
	if err != nil {
		return err
	}
	active = s
	return nil
}

func requireServices() (*Services, error) {
	if active == nil {
		return nil, errNotConfigured
	}
	return active, nil
}
