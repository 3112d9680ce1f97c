package driven

import (
	"context"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// SubmissionStore persists locally recorded validation runs.
type SubmissionStore interface {
	// Save records a submission. Returns domain.ErrInvalidInput when
	// the submission is nil or has no ID.
	Save(ctx context.Context, submission *domain.NetlistSubmission) error

	// Get retrieves a submission by ID. Returns domain.ErrNotFound
	// when no submission with that ID exists.
	Get(ctx context.Context, id string) (*domain.NetlistSubmission, error)

	// List returns submissions ordered by submission time, newest
	// first, up to limit entries. A non-positive limit returns all.
	List(ctx context.Context, limit int) ([]domain.NetlistSubmission, error)

	// Delete removes a submission by ID. Deleting a missing submission
	// is not an error.
	Delete(ctx context.Context, id string) error
}
