package memory

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driven"
)

// Ensure CredentialStore implements the interface.
var _ driven.CredentialStore = (*CredentialStore)(nil)

// CredentialStore is an in-memory implementation of driven.CredentialStore.
type CredentialStore struct {
	mu    sync.RWMutex
	creds map[string]domain.Credential
}

// NewCredentialStore creates an empty credential store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{
		creds: make(map[string]domain.Credential),
	}
}

// Demo account passwords. They are printed on the login screen.
const (
	DemoAdminPassword  = "admin123"
	DemoViewerPassword = "view123"
)

// NewDemoCredentialStore creates a store holding the two demo accounts:
// admin/admin123 and viewer/view123.
func NewDemoCredentialStore() *CredentialStore {
	s := NewCredentialStore()
	s.creds["admin"] = domain.Credential{
		User:         domain.User{Username: "admin", Name: "Chaitanya (Admin)", Role: domain.RoleAdmin},
		PasswordHash: mustHash(DemoAdminPassword),
	}
	s.creds["viewer"] = domain.Credential{
		User:         domain.User{Username: "viewer", Name: "Guest Viewer", Role: domain.RoleViewer},
		PasswordHash: mustHash(DemoViewerPassword),
	}
	return s
}

// mustHash hashes at the minimum cost; demo passwords are public anyway.
func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// Lookup returns the credential for username.
func (s *CredentialStore) Lookup(_ context.Context, username string) (*domain.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cred, ok := s.creds[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &cred, nil
}

// List returns all users sorted by username.
func (s *CredentialStore) List(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, 0, len(s.creds))
	for _, c := range s.creds {
		users = append(users, c.User)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

// Put creates or replaces a credential.
func (s *CredentialStore) Put(_ context.Context, cred domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[cred.User.Username] = cred
	return nil
}
