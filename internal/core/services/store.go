package services

import (
	"sync"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
	"github.com/custodia-labs/resumedesk/internal/logger"
)

// Ensure DocumentStore implements the interface.
var _ driving.DocumentStore = (*DocumentStore)(nil)

type subscriber struct {
	id int
	fn func(domain.Resume)
}

// DocumentStore holds the current resume and fans out replacements to
// subscribers. The document itself is an immutable value; the mutex only
// guards the current pointer, the revision and the subscriber list.
type DocumentStore struct {
	mu       sync.RWMutex
	current  domain.Resume
	revision uint64
	subs     []subscriber
	nextSub  int
}

// NewDocumentStore creates a store holding initial.
func NewDocumentStore(initial domain.Resume) *DocumentStore {
	return &DocumentStore{current: initial}
}

// Get returns the current document.
func (s *DocumentStore) Get() domain.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace makes next current and notifies subscribers in registration order.
// Subscribers run outside the lock and may call back into the store.
func (s *DocumentStore) Replace(next domain.Resume) {
	s.mu.Lock()
	s.current = next
	s.revision++
	rev := s.revision
	subs := make([]subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	logger.Event("replace", "revision", rev, "subscribers", len(subs))

	for _, sub := range subs {
		sub.fn(next)
	}
}

// Subscribe registers fn for every future Replace.
func (s *DocumentStore) Subscribe(fn func(domain.Resume)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

func (s *DocumentStore) unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]subscriber, 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.id != id {
			kept = append(kept, sub)
		}
	}
	s.subs = kept
}

// Revision returns the number of replaces applied so far.
func (s *DocumentStore) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}
