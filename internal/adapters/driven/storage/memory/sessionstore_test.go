package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

func newSession(id string) *domain.Session {
	now := time.Now()
	return &domain.Session{ID: id, Assessment: domain.NewAssessment(), CreatedAt: now, UpdatedAt: now}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := newSession("s1")
	require.NoError(t, session.Assessment.Set(domain.DimensionGovernance, domain.LevelSelfAware))
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	l, ok := got.Assessment.Level(domain.DimensionGovernance)
	assert.True(t, ok)
	assert.Equal(t, domain.LevelSelfAware, l)
	assert.Equal(t, 1, store.Count(ctx))
}

func TestSessionStore_Get_NotFound(t *testing.T) {
	store := NewSessionStore()
	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionStore_Save_Invalid(t *testing.T) {
	store := NewSessionStore()
	assert.ErrorIs(t, store.Save(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(context.Background(), &domain.Session{}), domain.ErrInvalidInput)
}

func TestSessionStore_Isolation(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	session := newSession("s1")
	require.NoError(t, store.Save(ctx, session))

	// mutating the caller's copy does not leak into the store
	require.NoError(t, session.Assessment.Set(domain.DimensionGovernance, domain.LevelPioneering))
	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Assessment.Len())

	// nor does mutating a retrieved copy
	require.NoError(t, got.Assessment.Set(domain.DimensionFaultDetection, domain.LevelReactive))
	again, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, again.Assessment.Len())
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSession("s1")))
	require.NoError(t, store.Delete(ctx, "s1"))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Equal(t, 0, store.Count(ctx))
}

func TestSessionStore_Concurrency(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", n)
			_ = store.Save(ctx, newSession(id))
			_, _ = store.Get(ctx, id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, store.Count(ctx))
}
