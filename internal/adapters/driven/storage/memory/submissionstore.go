// Package memory provides in-memory store implementations, used in
// tests and when history persistence is disabled.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driven"
)

// Ensure SubmissionStore implements the interface.
var _ driven.SubmissionStore = (*SubmissionStore)(nil)

// SubmissionStore is an in-memory implementation of driven.SubmissionStore.
type SubmissionStore struct {
	mu          sync.RWMutex
	submissions map[string]domain.NetlistSubmission
}

// NewSubmissionStore creates a new in-memory submission store.
func NewSubmissionStore() *SubmissionStore {
	return &SubmissionStore{
		submissions: make(map[string]domain.NetlistSubmission),
	}
}

// Save records a submission.
func (s *SubmissionStore) Save(_ context.Context, submission *domain.NetlistSubmission) error {
	if submission == nil || submission.ID == "" {
		return fmt.Errorf("submission must have an ID: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions[submission.ID] = *submission
	return nil
}

// Get retrieves a submission by ID.
func (s *SubmissionStore) Get(_ context.Context, id string) (*domain.NetlistSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	submission, ok := s.submissions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &submission, nil
}

// List returns submissions newest first, up to limit entries.
func (s *SubmissionStore) List(_ context.Context, limit int) ([]domain.NetlistSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.NetlistSubmission, 0, len(s.submissions))
	for _, submission := range s.submissions {
		result = append(result, submission)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].SubmittedAt.After(result[j].SubmittedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// Delete removes a submission. Deleting a missing submission is not an
// error.
func (s *SubmissionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.submissions, id)
	return nil
}
