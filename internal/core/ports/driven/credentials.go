package driven

import (
	"context"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

// CredentialStore resolves usernames to password hashes for the access gate.
type CredentialStore interface {
	// Lookup returns the credential for username.
	// Returns domain.ErrNotFound if the user does not exist.
	Lookup(ctx context.Context, username string) (*domain.Credential, error)

	// List returns every known user, sorted by username.
	List(ctx context.Context) ([]domain.User, error)

	// Put creates or replaces a credential.
	Put(ctx context.Context, cred domain.Credential) error
}
