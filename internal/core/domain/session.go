package domain

// SessionState is the lifecycle state of a validation session.
type SessionState string

// Session lifecycle: Idle -> Pending -> (Resolved | Failed) -> Idle.
// Any text change re-enters Pending regardless of current state.
const (
	// StateIdle means no validation is scheduled or in flight.
	StateIdle SessionState = "idle"

	// StatePending means a debounce window or validation call is open.
	StatePending SessionState = "pending"

	// StateResolved means the latest accepted outcome carried a result
	// from the rule engine.
	StateResolved SessionState = "resolved"

	// StateFailed means the latest accepted outcome was a transport
	// failure and the published result is synthesized.
	StateFailed SessionState = "failed"
)

// SessionSnapshot is the immutable published state of a validation
// session. Consumers (graph derivation, decoration building, the UI)
// receive snapshots; only the session controller mutates the
// underlying session.
type SessionSnapshot struct {
	// RawText is the document text the snapshot was produced from.
	RawText string

	// Netlist is the parsed model, or nil when the text does not
	// structurally parse. "Text changed" and "text parses" are
	// independent facts.
	Netlist *Netlist

	// Result is the most recently accepted validation result, or nil
	// when no call has completed yet.
	Result *ValidationResult

	// RequestID is the id of the accepted request that produced
	// Result; zero when Result is nil.
	RequestID uint64

	// State is the session lifecycle state at snapshot time.
	State SessionState
}

// DebounceToken identifies one text-change burst. A token returned by
// TextChanged is invalidated by any later text change, so only the
// last change in a burst dispatches a validation call.
type DebounceToken uint64

// ValidationRequest is one dispatched validation call, tagged with a
// monotonically increasing request id for the staleness guard.
type ValidationRequest struct {
	// ID is the request sequence number.
	ID uint64

	// RawText is the document text captured at dispatch time.
	RawText string
}

// ValidationCallOutcome is the resolved outcome of one validation
// call: either a result (including the engine's "document is invalid"
// responses) or a transport failure message. The distinction is
// resolved once at the validation adapter boundary, never re-inspected
// downstream.
type ValidationCallOutcome struct {
	// RequestID ties the outcome to its request for the staleness guard.
	RequestID uint64

	// Result is the engine's result. Nil only on transport failure.
	Result *ValidationResult

	// Failure is the transport failure message when Result is nil.
	Failure string
}

// TransportFailed reports whether the call failed without a
// diagnostic payload.
func (o ValidationCallOutcome) TransportFailed() bool {
	return o.Result == nil
}
