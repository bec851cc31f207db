package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/omdiag/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/omdiag/internal/core/domain"
)

func TestAssessmentService_StartAndAnswer(t *testing.T) {
	ctx := context.Background()
	svc := NewAssessmentService(memory.NewSessionStore())
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	session, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, fixed, session.CreatedAt)
	assert.Equal(t, 0, session.Assessment.Len())

	for _, d := range domain.AllDimensions() {
		session, err = svc.Answer(ctx, session.ID, d, domain.LevelForwardThinking)
		require.NoError(t, err)
	}
	assert.True(t, session.Assessment.Complete())

	got, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, got.Assessment.Complete())
}

func TestAssessmentService_AnswerValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewAssessmentService(memory.NewSessionStore())

	session, err := svc.Start(ctx)
	require.NoError(t, err)

	_, err = svc.Answer(ctx, session.ID, domain.Dimension("energy"), domain.LevelReactive)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Answer(ctx, session.ID, domain.DimensionGovernance, domain.Level(5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.Answer(ctx, "unknown", domain.DimensionGovernance, domain.LevelReactive)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAssessmentService_SessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := NewAssessmentService(memory.NewSessionStore())

	first, err := svc.Start(ctx)
	require.NoError(t, err)
	second, err := svc.Start(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = svc.Answer(ctx, first.ID, domain.DimensionGovernance, domain.LevelPioneering)
	require.NoError(t, err)

	got, err := svc.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Assessment.Len())
}

func TestAssessmentService_ConcurrentAnswers(t *testing.T) {
	ctx := context.Background()
	svc := NewAssessmentService(memory.NewSessionStore())

	session, err := svc.Start(ctx)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, d := range domain.AllDimensions() {
		wg.Add(1)
		go func(d domain.Dimension) {
			defer wg.Done()
			_, _ = svc.Answer(ctx, session.ID, d, domain.LevelSelfAware)
		}(d)
	}
	wg.Wait()

	got, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, got.Assessment.Complete(), "no answer may be lost")
}

func TestAssessmentService_Discard(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSessionStore()
	svc := NewAssessmentService(store)

	session, err := svc.Start(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Discard(ctx, session.ID))
	assert.Equal(t, 0, store.Count(ctx))

	_, err = svc.Get(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, svc.Discard(ctx, session.ID), domain.ErrSessionNotFound)
}
