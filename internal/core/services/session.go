package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/custodia-labs/netwiz-cli/internal/core/domain"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driven"
	"github.com/custodia-labs/netwiz-cli/internal/core/ports/driving"
	"github.com/custodia-labs/netwiz-cli/internal/logger"
)

// Ensure SessionController implements the interface.
var _ driving.SessionController = (*SessionController)(nil)

// DefaultDebounce is the debounce window applied when none is
// configured. It bounds request volume under fast typing without
// losing freshness.
const DefaultDebounce = 400 * time.Millisecond

// SessionController owns the validation session of one open document.
//
// It implements the sequence-numbered request/response protocol: text
// changes invalidate the previous debounce token, only the last change
// in a burst dispatches a request, and a response is accepted only when
// its request id matches the most recently dispatched request and no
// text change happened since dispatch. Stale responses are discarded
// silently; there is no network cancellation, a stale in-flight call
// simply completes and its outcome is dropped.
//
// The controller is the sole owner of the mutable session; everything
// it hands out is an immutable snapshot.
type SessionController struct {
	parser    driven.NetlistParser
	validator driven.ValidationService
	debounce  time.Duration

	mu          sync.Mutex
	rawText     string
	netlist     *domain.Netlist
	result      *domain.ValidationResult
	state       domain.SessionState
	debounceSeq uint64 // current debounce token; older tokens are stale
	requestSeq  uint64 // request id generator
	latestReqID uint64 // most recently dispatched request id
	acceptedID  uint64 // request id of the published result
	textEpoch   uint64 // bumped on every text change
	latestEpoch uint64 // text epoch captured at last dispatch
	subscribers []func(domain.SessionSnapshot)
}

// SessionConfig holds configuration for a session controller.
type SessionConfig struct {
	// Debounce is the window between the last text change and the
	// dispatched validation call (default: 400ms).
	Debounce time.Duration
}

// NewSessionController creates a controller for one document.
func NewSessionController(parser driven.NetlistParser, validator driven.ValidationService, cfg SessionConfig) *SessionController {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	return &SessionController{
		parser:    parser,
		validator: validator,
		debounce:  cfg.Debounce,
		state:     domain.StateIdle,
	}
}

// Subscribe registers a callback invoked with the new snapshot after
// every accepted outcome. This is the explicit notification channel
// between the controller and its rendering consumers; callbacks run
// synchronously inside Accept.
func (c *SessionController) Subscribe(fn func(domain.SessionSnapshot)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// TextChanged records new document text and opens a fresh debounce
// window, invalidating any previous token. The text is re-parsed
// immediately; parse failure leaves the parsed netlist nil but never
// blocks validation, because the rule engine may produce syntax-level
// diagnostics for unparseable text.
func (c *SessionController) TextChanged(text string) domain.DebounceToken {
	netlist, err := c.parser.Parse(text)
	if err != nil {
		if !errors.Is(err, domain.ErrParseFailure) {
			logger.Warn("Unexpected parser error: %v", err)
		}
		netlist = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.rawText = text
	c.netlist = netlist
	c.state = domain.StatePending
	c.textEpoch++
	c.debounceSeq++
	logger.Debug("Text changed: %d bytes, parsed=%t, token=%d", len(text), netlist != nil, c.debounceSeq)
	return domain.DebounceToken(c.debounceSeq)
}

// DebounceElapsed closes a debounce window. When the token is still
// current it tags the captured text with the next request id and
// returns the request to dispatch; a superseded token reports stale
// and dispatches nothing, so N changes inside one window produce
// exactly one call, using the final change's text.
func (c *SessionController) DebounceElapsed(token domain.DebounceToken) (domain.ValidationRequest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if uint64(token) != c.debounceSeq {
		logger.Debug("Debounce token %d superseded by %d", token, c.debounceSeq)
		return domain.ValidationRequest{}, false
	}

	c.requestSeq++
	c.latestReqID = c.requestSeq
	c.latestEpoch = c.textEpoch
	logger.Debug("Dispatching validation request %d", c.requestSeq)
	return domain.ValidationRequest{ID: c.requestSeq, RawText: c.rawText}, true
}

// Validate performs the remote call for a request and resolves it into
// a tagged outcome. It holds no lock and mutates no session state, so
// overlapping calls interleave safely and a call that became stale
// completes without effect.
func (c *SessionController) Validate(ctx context.Context, req domain.ValidationRequest) domain.ValidationCallOutcome {
	if c.validator == nil {
		return domain.ValidationCallOutcome{
			RequestID: req.ID,
			Failure:   domain.ErrValidationUnavailable.Error(),
		}
	}

	result, err := c.validator.ValidateText(ctx, req.RawText)
	if err != nil {
		logger.Warn("Validation request %d failed: %v", req.ID, err)
		return domain.ValidationCallOutcome{RequestID: req.ID, Failure: err.Error()}
	}
	return domain.ValidationCallOutcome{RequestID: req.ID, Result: result}
}

// Accept applies the staleness guard. An outcome is current only when
// its request id equals the most recently dispatched id and the text
// has not changed since that dispatch; anything else is discarded
// unconditionally, which keeps published state moving strictly forward
// in request-id order even when network responses complete out of
// order. A transport failure is published as a synthesized
// single-error result so consumers always have something to render.
func (c *SessionController) Accept(outcome domain.ValidationCallOutcome) (domain.SessionSnapshot, bool) {
	c.mu.Lock()

	if outcome.RequestID != c.latestReqID || c.latestEpoch != c.textEpoch {
		logger.Debug("Discarding stale response %d (latest=%d)", outcome.RequestID, c.latestReqID)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap, false
	}

	if outcome.TransportFailed() {
		c.result = domain.NewTransportFailureResult(outcome.Failure)
		c.state = domain.StateFailed
	} else {
		c.result = outcome.Result
		c.state = domain.StateResolved
	}
	c.acceptedID = outcome.RequestID
	logger.Info("Accepted validation response %d: valid=%t, errors=%d, warnings=%d",
		outcome.RequestID, c.result.IsValid, len(c.result.Errors), len(c.result.Warnings))

	snap := c.snapshotLocked()
	subscribers := make([]func(domain.SessionSnapshot), len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(snap)
	}
	return snap, true
}

// Snapshot returns the current published session state.
func (c *SessionController) Snapshot() domain.SessionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// DebounceWindow returns the configured debounce duration.
func (c *SessionController) DebounceWindow() time.Duration {
	return c.debounce
}

// snapshotLocked builds a snapshot. Callers hold c.mu. The netlist and
// result pointers are shared: both are immutable once published.
func (c *SessionController) snapshotLocked() domain.SessionSnapshot {
	return domain.SessionSnapshot{
		RawText:   c.rawText,
		Netlist:   c.netlist,
		Result:    c.result,
		RequestID: c.acceptedID,
		State:     c.state,
	}
}
