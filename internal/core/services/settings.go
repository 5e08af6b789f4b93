package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driven"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyPreviewShowOnStart = "preview.show_on_start"
	keyPreviewWidth       = "preview.width"
	keyAccessMaxFailed    = "access.max_failed_logins"
	keyAccessCooldown     = "access.cooldown"
	keySeedPath           = "seed.path"
	keySeedWatch          = "seed.watch"
)

type settingKind int

const (
	kindString settingKind = iota
	kindInt
	kindBool
	kindDuration
)

var settingKinds = map[string]settingKind{
	keyPreviewShowOnStart: kindBool,
	keyPreviewWidth:       kindInt,
	keyAccessMaxFailed:    kindInt,
	keyAccessCooldown:     kindDuration,
	keySeedPath:           kindString,
	keySeedWatch:          kindBool,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Preview: domain.PreviewSettings{
			ShowOnStart: s.getBool(keyPreviewShowOnStart, defaults.Preview.ShowOnStart),
			Width:       s.getInt(keyPreviewWidth, defaults.Preview.Width),
		},
		Access: domain.AccessSettings{
			MaxFailedLogins: s.getInt(keyAccessMaxFailed, defaults.Access.MaxFailedLogins),
			Cooldown:        s.getDuration(keyAccessCooldown, defaults.Access.Cooldown),
		},
		Seed: domain.SeedSettings{
			Path:  s.configStore.GetString(keySeedPath), // No default - empty means built-in
			Watch: s.getBool(keySeedWatch, defaults.Seed.Watch),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyPreviewShowOnStart, settings.Preview.ShowOnStart); err != nil {
		return fmt.Errorf("save preview show_on_start: %w", err)
	}
	if err := s.configStore.Set(keyPreviewWidth, settings.Preview.Width); err != nil {
		return fmt.Errorf("save preview width: %w", err)
	}

	if err := s.configStore.Set(keyAccessMaxFailed, settings.Access.MaxFailedLogins); err != nil {
		return fmt.Errorf("save access max_failed_logins: %w", err)
	}
	if err := s.configStore.Set(keyAccessCooldown, settings.Access.Cooldown.String()); err != nil {
		return fmt.Errorf("save access cooldown: %w", err)
	}

	if err := s.configStore.Set(keySeedPath, settings.Seed.Path); err != nil {
		return fmt.Errorf("save seed path: %w", err)
	}
	if err := s.configStore.Set(keySeedWatch, settings.Seed.Watch); err != nil {
		return fmt.Errorf("save seed watch: %w", err)
	}

	return nil
}

// Set parses value according to the key's type and stores it.
func (s *SettingsService) Set(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var parsed any
	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s expects a non-negative integer", domain.ErrInvalidInput, key)
		}
		parsed = n
	case kindDuration:
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return fmt.Errorf("%w: %s expects a duration such as 30s", domain.ErrInvalidInput, key)
		}
		parsed = d.String()
	default:
		parsed = value
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the settings keys Set accepts, in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		keyPreviewShowOnStart,
		keyPreviewWidth,
		keyAccessMaxFailed,
		keyAccessCooldown,
		keySeedPath,
		keySeedWatch,
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
