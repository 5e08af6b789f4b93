package driving

import (
	"context"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

// AccessGate authenticates a user before the dashboard is shown.
type AccessGate interface {
	// Login checks the password and starts a session.
	// Returns domain.ErrInvalidCredentials or domain.ErrRateLimited.
	Login(ctx context.Context, username, password string) (*domain.Session, error)

	// Users lists the accounts that can log in.
	Users(ctx context.Context) ([]domain.User, error)

	// Register hashes password and stores the account.
	Register(ctx context.Context, user domain.User, password string) error

	// HashPassword returns the stored form of password, for pasting into
	// the config file by hand.
	HashPassword(password string) (string, error)
}

// SaveService forwards save requests to the configured save hook.
type SaveService interface {
	Save(ctx context.Context) (domain.SaveReceipt, error)

	// LastSave returns the most recent receipt, if any.
	LastSave() (domain.SaveReceipt, bool)
}
