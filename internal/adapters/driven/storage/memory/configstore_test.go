package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("preview.width", 72))
	require.NoError(t, store.Set("preview.width", 80))

	val, ok := store.Get("preview.width")
	assert.True(t, ok)
	assert.Equal(t, 80, val)

	_, ok = store.Get("nonexistent")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{
		"seed.path":                "resume.json",
		"preview.width":            int64(64),
		"access.max_failed_logins": float64(3.9),
		"preview.show_on_start":    true,
		"users.admin.name":         42,
		"access.cooldown":          "30s",
		"seed.watch":               "true",
	})

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"string", store.GetString("seed.path"), "resume.json"},
		{"string wrong type", store.GetString("users.admin.name"), ""},
		{"int from int64", store.GetInt("preview.width"), 64},
		{"int from float64", store.GetInt("access.max_failed_logins"), 3},
		{"int wrong type", store.GetInt("access.cooldown"), 0},
		{"bool", store.GetBool("preview.show_on_start"), true},
		{"bool wrong type", store.GetBool("seed.watch"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestConfigStore_Keys(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{
		"users.viewer.role": "viewer",
		"users.admin.role":  "admin",
		"preview.width":     60,
	})

	assert.Equal(t, []string{"users.admin.role", "users.viewer.role"}, store.Keys("users."))
	assert.Len(t, store.Keys(""), 3)
	assert.Empty(t, store.Keys("seed."))
}

func TestConfigStore_NewConfigStoreWithCopies(t *testing.T) {
	src := map[string]any{"seed.path": "a.json"}
	store := NewConfigStoreWith(src)
	src["seed.path"] = "b.json"

	assert.Equal(t, "a.json", store.GetString("seed.path"))
}

func TestConfigStore_SaveLoadPath(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "users.u" + string(rune('A'+id%26)) + ".role"
			_ = store.Set(key, "viewer")
			_ = store.GetString(key)
			_ = store.Keys("users.")
		}(i)
	}
	wg.Wait()

	assert.Len(t, store.Keys("users."), 26)
}
