package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driven"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driving"
	"github.com/custodia-labs/netwiz-cli/internal/logger"
)

// Ensure SubmissionService implements the interface.
var _ driving.SubmissionService = (*SubmissionService)(nil)

// SubmissionService records validation runs in the local history.
type SubmissionService struct {
	store driven.SubmissionStore
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(store driven.SubmissionStore) *SubmissionService {
	return &SubmissionService{store: store}
}

// Record stores one validation run. The netlist may be nil (text did
// not parse) and the result may be nil (no call completed); both are
// recorded as-is.
func (s *SubmissionService) Record(
	ctx context.Context, rawText, filename string,
	netlist *domain.Netlist, result *domain.ValidationResult,
) (*domain.NetlistSubmission, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryUnavailable
	}

	submission := &domain.NetlistSubmission{
		ID:          uuid.NewString(),
		RawText:     rawText,
		Netlist:     netlist,
		Filename:    filename,
		SubmittedAt: time.Now().UTC(),
		Result:      result,
	}

	if err := s.store.Save(ctx, submission); err != nil {
		return nil, fmt.Errorf("save submission: %w", err)
	}

	logger.Info("Recorded submission %s (%d bytes)", submission.ID, len(rawText))
	return submission, nil
}

// Get retrieves a submission by ID.
func (s *SubmissionService) Get(ctx context.Context, id string) (*domain.NetlistSubmission, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	submission, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get submission %s: %w", id, err)
	}
	return submission, nil
}

// List returns submissions newest first.
func (s *SubmissionService) List(ctx context.Context, limit int) ([]domain.NetlistSubmission, error) {
	if s.store == nil {
		return []domain.NetlistSubmission{}, nil
	}
	submissions, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return submissions, nil
}

// Delete removes a submission from the history.
func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrHistoryUnavailable
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete submission %s: %w", id, err)
	}
	return nil
}
