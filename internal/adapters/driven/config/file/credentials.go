package file

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
	"github.com/custodia-labs/resumedesk/internal/core/ports/driven"
)

// Ensure CredentialStore implements the interface.
var _ driven.CredentialStore = (*CredentialStore)(nil)

// Config key layout for users: users.<username>.<field>.
const (
	usersPrefix       = "users."
	userFieldHash     = "password_hash"
	userFieldRole     = "role"
	userFieldName     = "name"
	defaultConfigRole = domain.RoleViewer
)

// CredentialStore reads accounts from the configuration file. Accounts
// missing from the config are looked up in the fallback store, so config
// users shadow the fallback's users of the same name.
type CredentialStore struct {
	config   driven.ConfigStore
	fallback driven.CredentialStore
}

// NewCredentialStore creates a config-backed credential store.
// fallback may be nil.
func NewCredentialStore(config driven.ConfigStore, fallback driven.CredentialStore) *CredentialStore {
	return &CredentialStore{config: config, fallback: fallback}
}

func userKey(username, field string) string {
	return usersPrefix + username + "." + field
}

// Lookup returns the credential for username.
func (s *CredentialStore) Lookup(ctx context.Context, username string) (*domain.Credential, error) {
	if cred, ok := s.fromConfig(username); ok {
		return cred, nil
	}
	if s.fallback == nil {
		return nil, domain.ErrNotFound
	}
	return s.fallback.Lookup(ctx, username)
}

func (s *CredentialStore) fromConfig(username string) (*domain.Credential, bool) {
	if username == "" || strings.Contains(username, ".") {
		return nil, false
	}
	hash := s.config.GetString(userKey(username, userFieldHash))
	if hash == "" {
		return nil, false
	}

	role := domain.Role(s.config.GetString(userKey(username, userFieldRole)))
	if !role.IsValid() {
		role = defaultConfigRole
	}
	name := s.config.GetString(userKey(username, userFieldName))
	if name == "" {
		name = username
	}

	return &domain.Credential{
		User:         domain.User{Username: username, Name: name, Role: role},
		PasswordHash: hash,
	}, true
}

// List returns config users and fallback users, sorted by username.
func (s *CredentialStore) List(ctx context.Context) ([]domain.User, error) {
	byName := make(map[string]domain.User)

	if s.fallback != nil {
		users, err := s.fallback.List(ctx)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			byName[u.Username] = u
		}
	}

	for _, key := range s.config.Keys(usersPrefix) {
		rest := strings.TrimPrefix(key, usersPrefix)
		username, field, ok := strings.Cut(rest, ".")
		if !ok || field != userFieldHash {
			continue
		}
		if cred, ok := s.fromConfig(username); ok {
			byName[username] = cred.User
		}
	}

	users := make([]domain.User, 0, len(byName))
	for _, u := range byName {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

// Put writes the credential to the configuration file.
func (s *CredentialStore) Put(_ context.Context, cred domain.Credential) error {
	username := cred.User.Username
	if username == "" || strings.Contains(username, ".") {
		return fmt.Errorf("%w: username must be non-empty and contain no dots", domain.ErrInvalidInput)
	}
	if cred.PasswordHash == "" {
		return fmt.Errorf("%w: password hash is required", domain.ErrInvalidInput)
	}

	fields := []struct {
		field string
		value string
	}{
		{userFieldHash, cred.PasswordHash},
		{userFieldRole, cred.User.Role.String()},
		{userFieldName, cred.User.Name},
	}
	for _, f := range fields {
		if err := s.config.Set(userKey(username, f.field), f.value); err != nil {
			return fmt.Errorf("save user %s %s: %w", username, f.field, err)
		}
	}
	return nil
}
