package driving

import (
	"context"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// SubmissionService manages the local history of validation runs.
type SubmissionService interface {
	// Record stores a validation run and returns the stored submission.
	Record(ctx context.Context, rawText, filename string, netlist *domain.Netlist, result *domain.ValidationResult) (*domain.NetlistSubmission, error)

	// Get retrieves a submission by ID.
	Get(ctx context.Context, id string) (*domain.NetlistSubmission, error)

	// List returns submissions newest first, up to limit entries.
	List(ctx context.Context, limit int) ([]domain.NetlistSubmission, error)

	// Delete removes a submission.
	Delete(ctx context.Context, id string) error
}
