package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

func TestDemoCredentialStore_Accounts(t *testing.T) {
	store := NewDemoCredentialStore()
	ctx := context.Background()

	tests := []struct {
		username string
		password string
		role     domain.Role
		name     string
	}{
		{"admin", "admin123", domain.RoleAdmin, "Chaitanya (Admin)"},
		{"viewer", "view123", domain.RoleViewer, "Guest Viewer"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			cred, err := store.Lookup(ctx, tt.username)
			require.NoError(t, err)
			assert.Equal(t, tt.role, cred.User.Role)
			assert.Equal(t, tt.name, cred.User.Name)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(tt.password)))
		})
	}
}

func TestCredentialStore_LookupMissing(t *testing.T) {
	store := NewCredentialStore()

	_, err := store.Lookup(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCredentialStore_PutAndList(t *testing.T) {
	store := NewDemoCredentialStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, domain.Credential{
		User:         domain.User{Username: "editor", Name: "Ed", Role: domain.RoleAdmin},
		PasswordHash: "hash",
	}))

	users, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "editor", users[1].Username)
	assert.Equal(t, "viewer", users[2].Username)
}

func TestSaveRecorder(t *testing.T) {
	rec := NewSaveRecorder()

	_, _, ok := rec.Last()
	assert.False(t, ok)

	doc := domain.DefaultResume()
	require.NoError(t, rec.OnSave(context.Background(), doc, 7))
	require.NoError(t, rec.OnSave(context.Background(), doc, 9))

	last, rev, ok := rec.Last()
	assert.True(t, ok)
	assert.Equal(t, uint64(9), rev)
	assert.Equal(t, doc.Profile.Name, last.Profile.Name)
	assert.Equal(t, 2, rec.Count())
}
