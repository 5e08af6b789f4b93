package file

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumedesk/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

func TestCredentialStore_ConfigShadowsFallback(t *testing.T) {
	cfg := memory.NewConfigStoreWith(map[string]any{
		"users.admin.password_hash": "config-hash",
		"users.admin.role":          "admin",
		"users.admin.name":          "Owner",
	})
	store := NewCredentialStore(cfg, memory.NewDemoCredentialStore())

	cred, err := store.Lookup(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "config-hash", cred.PasswordHash)
	assert.Equal(t, "Owner", cred.User.Name)

	cred, err = store.Lookup(context.Background(), "viewer")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleViewer, cred.User.Role)
}

func TestCredentialStore_Defaults(t *testing.T) {
	cfg := memory.NewConfigStoreWith(map[string]any{
		"users.sam.password_hash": "h",
		"users.sam.role":          "superuser",
	})
	store := NewCredentialStore(cfg, nil)

	cred, err := store.Lookup(context.Background(), "sam")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleViewer, cred.User.Role)
	assert.Equal(t, "sam", cred.User.Name)
}

func TestCredentialStore_LookupMissing(t *testing.T) {
	store := NewCredentialStore(memory.NewConfigStore(), nil)

	_, err := store.Lookup(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = store.Lookup(context.Background(), "a.b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCredentialStore_PutAndList(t *testing.T) {
	cfg := memory.NewConfigStore()
	store := NewCredentialStore(cfg, memory.NewDemoCredentialStore())
	ctx := context.Background()

	err := store.Put(ctx, domain.Credential{
		User:         domain.User{Username: "editor", Name: "Ed", Role: domain.RoleAdmin},
		PasswordHash: "hash",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", cfg.GetString("users.editor.role"))

	users, err := store.List(ctx)
	require.NoError(t, err)
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	assert.Equal(t, []string{"admin", "editor", "viewer"}, names)
}

func TestCredentialStore_PutInvalid(t *testing.T) {
	store := NewCredentialStore(memory.NewConfigStore(), nil)
	ctx := context.Background()

	err := store.Put(ctx, domain.Credential{User: domain.User{Username: "a.b"}, PasswordHash: "h"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.Put(ctx, domain.Credential{User: domain.User{Username: "ok"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
