package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
)

// SessionController orchestrates debounced, staleness-guarded
// asynchronous revalidation of one open document.
//
// The protocol is sequence-numbered and independent of any scheduling
// primitive. The caller owns timing: after TextChanged it schedules a
// wait of DebounceWindow and then calls DebounceElapsed with the
// returned token. A token invalidated by a newer text change reports
// stale and dispatches nothing. Validate performs the remote call
// without touching session state; Accept applies the staleness guard
// and swaps the published snapshot atomically.
type SessionController interface {
	// TextChanged records a new document text, re-parses it, and
	// starts a fresh debounce window. The previous window's token is
	// invalidated.
	TextChanged(text string) domain.DebounceToken

	// DebounceElapsed reports whether the token is still current. When
	// it is, the controller tags and returns the request to dispatch.
	DebounceElapsed(token domain.DebounceToken) (domain.ValidationRequest, bool)

	// Validate performs the remote validation call for a request. It
	// is the only suspending operation; it mutates no session state,
	// so stale calls complete harmlessly.
	Validate(ctx context.Context, req domain.ValidationRequest) domain.ValidationCallOutcome

	// Accept applies the staleness guard to an outcome. A non-stale
	// outcome atomically becomes the published snapshot, which is
	// returned with ok=true. Stale outcomes are discarded with
	// ok=false.
	Accept(outcome domain.ValidationCallOutcome) (domain.SessionSnapshot, bool)

	// Snapshot returns the current published session state.
	Snapshot() domain.SessionSnapshot

	// DebounceWindow returns the configured debounce duration.
	DebounceWindow() time.Duration
}
