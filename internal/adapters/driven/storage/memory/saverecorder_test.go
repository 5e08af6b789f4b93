package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/resumedesk/internal/core/domain"
)

func TestSaveRecorder_Empty(t *testing.T) {
	r := NewSaveRecorder()

	_, _, ok := r.Last()

	assert.False(t, ok)
	assert.Equal(t, 0, r.Count())
}

func TestSaveRecorder_RecordsLatest(t *testing.T) {
	r := NewSaveRecorder()
	first := domain.DefaultResume()
	second := domain.DefaultResume()
	second.Profile.Name = "Second"

	require.NoError(t, r.OnSave(context.Background(), first, 1))
	require.NoError(t, r.OnSave(context.Background(), second, 4))

	doc, rev, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "Second", doc.Profile.Name)
	assert.Equal(t, uint64(4), rev)
	assert.Equal(t, 2, r.Count())
}

func TestSaveRecorder_Concurrent(t *testing.T) {
	r := NewSaveRecorder()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = r.OnSave(context.Background(), domain.Resume{}, uint64(i))
			r.Last()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, r.Count())
}
