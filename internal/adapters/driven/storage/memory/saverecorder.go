package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driven"
)

// Ensure SaveRecorder implements the interface.
var _ driven.SaveHook = (*SaveRecorder)(nil)

// SaveRecorder is the default save hook. It keeps the last saved snapshot
// in memory and counts save requests; nothing is written anywhere.
type SaveRecorder struct {
	mu       sync.RWMutex
	count    int
	revision uint64
	last     *domain.Resume
}

// NewSaveRecorder creates an empty recorder.
func NewSaveRecorder() *SaveRecorder {
	return &SaveRecorder{}
}

// OnSave records doc as the latest snapshot.
func (r *SaveRecorder) OnSave(_ context.Context, doc domain.Resume, revision uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count++
	r.revision = revision
	r.last = &doc
	return nil
}

// Count returns the number of saves recorded.
func (r *SaveRecorder) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Last returns the most recent snapshot and its revision.
func (r *SaveRecorder) Last() (domain.Resume, uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.last == nil {
		return domain.Resume{}, 0, false
	}
	return *r.last, r.revision, true
}
