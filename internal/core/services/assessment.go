package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/omdiag/internal/core/domain"
	"github.com/custodia-labs/omdiag/internal/core/ports/driven"
	"github.com/custodia-labs/omdiag/internal/core/ports/driving"
	"github.com/custodia-labs/omdiag/internal/logger"
)

// Ensure AssessmentService implements the interface.
var _ driving.AssessmentService = (*AssessmentService)(nil)

// AssessmentService manages in-progress assessments, one per session.
type AssessmentService struct {
	store driven.SessionStore
	now   func() time.Time

	// mu serialises read-modify-write of a session's answers.
	mu sync.Mutex
}

// NewAssessmentService creates a new assessment service.
func NewAssessmentService(store driven.SessionStore) *AssessmentService {
	return &AssessmentService{
		store: store,
		now:   time.Now,
	}
}

// Start opens a new, empty session.
func (s *AssessmentService) Start(ctx context.Context) (*domain.Session, error) {
	now := s.now()
	session := &domain.Session{
		ID:         uuid.New().String(),
		Assessment: domain.NewAssessment(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	logger.Debug("Started session %s", session.ID)
	return session, nil
}

// Answer records the level for a dimension in a session.
// Answers may arrive in any order and may be changed.
func (s *AssessmentService) Answer(
	ctx context.Context, id string, d domain.Dimension, l domain.Level,
) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := session.Assessment.Set(d, l); err != nil {
		return nil, err
	}
	session.UpdatedAt = s.now()

	if err := s.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	logger.Debug("Session %s: %s = %d (%d/%d answered)",
		id, d, int(l), session.Assessment.Len(), len(domain.AllDimensions()))
	return session, nil
}

// Get retrieves a session by ID.
func (s *AssessmentService) Get(ctx context.Context, id string) (*domain.Session, error) {
	return s.store.Get(ctx, id)
}

// Discard removes a session and its answers.
func (s *AssessmentService) Discard(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	logger.Debug("Discarded session %s", id)
	return nil
}
