package seed

import (
	"context"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driven"
)

// Ensure Builtin implements the interface.
var _ driven.SeedSource = Builtin{}

// Builtin serves the document compiled into the binary.
type Builtin struct{}

// Load returns a fresh copy of the built-in document.
func (Builtin) Load(ctx context.Context) (domain.Resume, error) {
	if err := ctx.Err(); err != nil {
		return domain.Resume{}, err
	}
	return domain.DefaultResume(), nil
}

// Name describes the source.
func (Builtin) Name() string {
	return "built-in"
}
