package driven

import (
	"context"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

// SeedSource provides the document the store starts with.
type SeedSource interface {
	// Load returns the initial document.
	Load(ctx context.Context) (domain.Resume, error)

	// Name describes where the document comes from, for logs and the status bar.
	Name() string
}

// SeedChange is delivered when a watched seed source changes on disk.
// Exactly one of Resume or Err is meaningful.
type SeedChange struct {
	Resume domain.Resume
	Err    error
}

// SeedWatcher is an optional capability of a SeedSource that can report
// changes. The channel is closed when ctx is cancelled.
type SeedWatcher interface {
	Watch(ctx context.Context) (<-chan SeedChange, error)
}
