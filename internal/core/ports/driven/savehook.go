package driven

import (
	"context"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

// SaveHook receives the document when the user asks to save.
// The default implementation only records the request.
type SaveHook interface {
	OnSave(ctx context.Context, doc domain.Resume, revision uint64) error
}
