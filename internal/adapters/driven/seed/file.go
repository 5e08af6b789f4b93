package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driven"
	"github.com/custodia-labs/resumedesk/internal/logger"
)

// Ensure FileSource implements the interfaces.
var (
	_ driven.SeedSource  = (*FileSource)(nil)
	_ driven.SeedWatcher = (*FileSource)(nil)
)

// DefaultDebounce is how long the watcher waits after the last write
// before reloading. Editors often write a file in several steps.
const DefaultDebounce = 150 * time.Millisecond

// FileSource loads the document from a JSON file on disk.
type FileSource struct {
	path     string
	debounce time.Duration
}

// NewFileSource creates a source for the JSON file at path.
func NewFileSource(path string) (*FileSource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve seed path: %w", err)
	}
	return &FileSource{path: filepath.Clean(abs), debounce: DefaultDebounce}, nil
}

// Path returns the absolute file path.
func (s *FileSource) Path() string {
	return s.path
}

// Name describes the source.
func (s *FileSource) Name() string {
	return s.path
}

// Load reads, validates and decodes the file.
func (s *FileSource) Load(ctx context.Context) (domain.Resume, error) {
	if err := ctx.Err(); err != nil {
		return domain.Resume{}, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Resume{}, fmt.Errorf("read seed file: %w", err)
	}

	doc, err := Decode(data)
	if err != nil {
		return domain.Resume{}, fmt.Errorf("load %s: %w", filepath.Base(s.path), err)
	}
	return doc, nil
}

// Watch reports a reloaded document every time the file is written or
// recreated. The parent directory is watched so that editors which replace
// the file by renaming are picked up. The channel closes when ctx ends.
func (s *FileSource) Watch(ctx context.Context) (<-chan driven.SeedChange, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	out := make(chan driven.SeedChange)
	go s.watchLoop(ctx, watcher, out)

	logger.Debug("seed: watching %s", s.path)
	return out, nil
}

func (s *FileSource) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, out chan<- driven.SeedChange) {
	defer close(out)
	defer watcher.Close()

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !s.handleFsEvent(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			pending = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			if !send(ctx, out, driven.SeedChange{Err: err}) {
				return
			}

		case <-pending:
			pending = nil
			doc, err := s.Load(ctx)
			if err != nil {
				logger.Warn("seed: reload failed: %v", err)
			} else {
				logger.Event("seed_reload", "path", s.path, "skills", len(doc.Skills))
			}
			if !send(ctx, out, driven.SeedChange{Resume: doc, Err: err}) {
				return
			}
		}
	}
}

// handleFsEvent reports whether event should trigger a reload.
func (s *FileSource) handleFsEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != s.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create) != 0
}

func send(ctx context.Context, out chan<- driven.SeedChange, change driven.SeedChange) bool {
	select {
	case out <- change:
		return true
	case <-ctx.Done():
		return false
	}
}
