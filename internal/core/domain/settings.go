package domain

import "time"

const unknownDescription = "Unknown"

// ExportFormat defines how a resume document is serialised by the export
// command.
type ExportFormat string

// Available export formats.
const (
	// ExportFormatJSON writes the document with the camelCase keys used by
	// seed files, so an export can be loaded back as a seed.
	ExportFormatJSON ExportFormat = "json"

	// ExportFormatTOML writes the document as TOML.
	ExportFormatTOML ExportFormat = "toml"
)

// IsValid returns true if the export format is recognised.
func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatJSON, ExportFormatTOML:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f ExportFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f ExportFormat) Description() string {
	switch f {
	case ExportFormatJSON:
		return "JSON (seed file compatible)"
	case ExportFormatTOML:
		return "TOML"
	default:
		return unknownDescription
	}
}

// AllExportFormats returns all available export formats.
func AllExportFormats() []ExportFormat {
	return []ExportFormat{ExportFormatJSON, ExportFormatTOML}
}

// PreviewSettings holds live preview configuration.
type PreviewSettings struct {
	// ShowOnStart opens the preview pane as soon as the dashboard loads.
	ShowOnStart bool

	// Width is the preview pane width in columns.
	Width int
}

// AccessSettings holds login throttling configuration.
type AccessSettings struct {
	// MaxFailedLogins is the number of failed logins allowed in a burst.
	MaxFailedLogins int

	// Cooldown is the time it takes to regain one failed attempt.
	Cooldown time.Duration
}

// SeedSettings holds the initial document source.
type SeedSettings struct {
	// Path is a JSON seed file. Empty means the built-in document.
	Path string

	// Watch reloads the document when the seed file changes.
	Watch bool
}

// HasFile returns true if a seed file is configured.
func (s SeedSettings) HasFile() bool {
	return s.Path != ""
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Preview holds live preview settings.
	Preview PreviewSettings

	// Access holds login throttling settings.
	Access AccessSettings

	// Seed holds the initial document source.
	Seed SeedSettings
}

// Settings defaults.
const (
	DefaultPreviewWidth    = 60
	DefaultMaxFailedLogins = 5
	DefaultLoginCooldown   = 30 * time.Second
)

// DefaultAppSettings returns settings with sensible defaults.
// The built-in document is used unless a seed file is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Preview: PreviewSettings{
			ShowOnStart: false,
			Width:       DefaultPreviewWidth,
		},
		Access: AccessSettings{
			MaxFailedLogins: DefaultMaxFailedLogins,
			Cooldown:        DefaultLoginCooldown,
		},
		Seed: SeedSettings{},
	}
}
