package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driven"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driving"
	"github.com/custodia-labs/resumedesk/internal/logger"
)

// Ensure SaveService implements the interface.
var _ driving.SaveService = (*SaveService)(nil)

// SaveService hands the current document to a save hook.
type SaveService struct {
	store driving.DocumentStore
	hook  driven.SaveHook

	mu   sync.Mutex
	last *domain.SaveReceipt
}

// NewSaveService creates a save service. hook may be nil, in which case a
// save is only logged.
func NewSaveService(store driving.DocumentStore, hook driven.SaveHook) *SaveService {
	return &SaveService{store: store, hook: hook}
}

// Save passes the current document and revision to the hook.
func (s *SaveService) Save(ctx context.Context) (domain.SaveReceipt, error) {
	if err := ctx.Err(); err != nil {
		return domain.SaveReceipt{}, err
	}

	// Revision is read before Get so the receipt never claims a newer
	// revision than the document handed to the hook.
	rev := s.store.Revision()
	doc := s.store.Get()

	if s.hook != nil {
		if err := s.hook.OnSave(ctx, doc, rev); err != nil {
			return domain.SaveReceipt{}, fmt.Errorf("save hook: %w", err)
		}
	}

	receipt := domain.SaveReceipt{Revision: rev, SavedAt: time.Now()}
	s.mu.Lock()
	s.last = &receipt
	s.mu.Unlock()

	logger.Event("save", "revision", rev)
	return receipt, nil
}

// LastSave returns the most recent receipt.
func (s *SaveService) LastSave() (domain.SaveReceipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return domain.SaveReceipt{}, false
	}
	return *s.last, true
}
