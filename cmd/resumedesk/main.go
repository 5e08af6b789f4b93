package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/resumedesk/internal/adapters/driven/config/file"
	"github.com/custodia-labs/resumedesk/internal/adapters/driven/seed"
	"github.com/custodia-labs/resumedesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/cli"
	"github.com/custodia-labs/resumedesk/internal/adapters/driving/tui"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driven"
	"github.com/custodia-labs/resumedesk/internal/core/services"
	"github.com/custodia-labs/resumedesk/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

const loginHint = "Demo accounts: admin / admin123 · viewer / view123"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the adapters to the core services.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	logger.Section("bootstrap")

	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	credentials := file.NewCredentialStore(configStore, memory.NewDemoCredentialStore())
	access := services.NewAccessGate(credentials, settings.Access)

	var (
		source  driven.SeedSource = seed.Builtin{}
		watcher driven.SeedWatcher
	)
	if settings.Seed.Path != "" {
		fileSource, err := seed.NewFileSource(settings.Seed.Path)
		if err != nil {
			return nil, err
		}
		source, watcher = fileSource, fileSource
	}

	initial, err := source.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load resume from %s: %w", source.Name(), err)
	}
	logger.Info("loaded resume from %s", source.Name())

	store := services.NewDocumentStore(initial)
	renderer := services.NewPreviewRenderer()

	ports := tui.NewPorts(store, access, renderer)
	ports.Profile = services.NewProfileEditor(store)
	ports.Skills = services.NewSkillEditor(store)
	ports.Experience = services.NewExperienceEditor(store)
	ports.Education = services.NewEducationEditor(store)
	ports.Projects = services.NewProjectEditor(store)
	ports.Certifications = services.NewCertificationEditor(store)
	ports.Save = services.NewSaveService(store, memory.NewSaveRecorder())
	ports.Settings = settingsService

	return &cli.Services{
		Store:     store,
		Preview:   renderer,
		Exporter:  services.NewExporter(),
		Access:    access,
		Settings:  settingsService,
		TUI:       ports,
		Watcher:   watcher,
		LoginHint: loginHint,
	}, nil
}
