package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driven"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
	"github.com/custodia-labs/resumedesk/internal/logger"
)

var (
	tuiWatch   bool
	tuiLogFile string
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive terminal dashboard.

Controls:
  tab      - Switch between sidebar, editor and preview
  ↑/k, ↓/j - Navigate
  enter    - Edit field / commit
  esc      - Cancel / back to sidebar
  a, d     - Add / delete record
  h, x     - Add / remove highlight
  +, -     - Raise / lower skill level
  p        - Toggle preview
  ctrl+s   - Save
  ?        - Help
  ctrl+c   - Quit`,
	RunE: runTUI,
}

func init() {
	registerTUIFlags(tuiCmd)
	rootCmd.AddCommand(tuiCmd)
}

func registerTUIFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&tuiWatch, "watch", "w", false, "reload the seed file when it changes")
	cmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write logs to this file while the dashboard runs")
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("tui panic: %v", r)
		}
	}()

	s, err := requireServices()
	if err != nil {
		return err
	}

	// The dashboard owns the terminal; logs go to a file or nowhere.
	closeLog, err := redirectLogs(tuiLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	app, err := tui.NewApp(s.TUI)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if s.Watcher != nil && watchEnabled(s.Settings) {
		if err := forwardSeedChanges(ctx, s.Watcher, s.Store); err != nil {
			return err
		}
	}

	app.WithContext(ctx).WithLoginHint(s.LoginHint)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func watchEnabled(settings driving.SettingsService) bool {
	if tuiWatch || settings == nil {
		return tuiWatch
	}
	current, err := settings.Get()
	if err != nil {
		return false
	}
	return current.Seed.Watch
}

// forwardSeedChanges replaces the document every time the seed file is
// rewritten. Invalid files are logged and skipped.
func forwardSeedChanges(ctx context.Context, watcher driven.SeedWatcher, store driving.DocumentStore) error {
	changes, err := watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch seed: %w", err)
	}

	go func() {
		for change := range changes {
			if change.Err != nil {
				logger.Warn("seed change ignored: %v", change.Err)
				continue
			}
			store.Replace(change.Resume)
			logger.Debug("seed change applied, revision %d", store.Revision())
		}
	}()
	return nil
}

func redirectLogs(path string) (func(), error) {
	if path == "" {
		logger.SetOutput(nil)
		return func() { logger.SetOutput(os.Stderr) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
