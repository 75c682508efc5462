// Package endpoint defines the runtime state records for probed endpoints.
// An Endpoint is a mutable record owned exclusively by the orchestrator
// (dashboard or best-pick loop); the metrics engine only ever receives it
// as a read-only snapshot.
package endpoint

import "github.com/erwinh22/free-coding-models-sub000/internal/catalog"

// Outcome classifies a single probe attempt. This is a closed set: any raw
// status from the probe must be mapped into one of these before the engine
// sees it.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeAuthMissing
	OutcomeRateLimited
	OutcomeServerError
	OutcomeTimeout
	OutcomeOther
)

// String returns a short label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeAuthMissing:
		return "auth-missing"
	case OutcomeRateLimited:
		return "rate-limited"
	case OutcomeServerError:
		return "server-error"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "error"
	}
}

// Ping is one recorded probe attempt. Immutable once recorded.
// ElapsedMs is meaningful for non-success outcomes too: an auth rejection
// still measures reachability latency.
type Ping struct {
	ElapsedMs int
	Outcome   Outcome
}

// Status is the last-observed coarse lifecycle state of an endpoint,
// distinct from the per-ping outcomes in History.
type Status int

const (
	StatusPending Status = iota
	StatusReachable
	StatusAuthMissing
	StatusRateLimited
	StatusUnreachable
	StatusTimedOut
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusReachable:
		return "reachable"
	case StatusAuthMissing:
		return "auth-missing"
	case StatusRateLimited:
		return "rate-limited"
	case StatusUnreachable:
		return "unreachable"
	case StatusTimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

// RateLimitCode is the error code recorded when a probe is rejected for
// rate limiting. Verdict logic special-cases it as "overloaded".
const RateLimitCode = "429"

// Endpoint is the mutable per-endpoint record: the static catalog entry
// plus everything observed since process start. History is append-only and
// chronological; the latest ping is always the last element.
type Endpoint struct {
	catalog.Entry

	// Rank is the endpoint's index in the catalog, used for default sorting.
	Rank int

	Status        Status
	LastErrorCode string
	History       []Ping
}

// New creates endpoint records for the given catalog entries, all Pending.
func New(entries []catalog.Entry) []*Endpoint {
	eps := make([]*Endpoint, len(entries))
	for i, e := range entries {
		eps[i] = &Endpoint{Entry: e, Rank: i, Status: StatusPending}
	}
	return eps
}

// Record appends a ping to the history and updates the coarse lifecycle
// state. This is the single mutation point for endpoint state; only the
// orchestrator calls it, one append per probe completion.
func (e *Endpoint) Record(p Ping, errorCode string) {
	e.History = append(e.History, p)

	switch p.Outcome {
	case OutcomeSuccess:
		e.Status = StatusReachable
	case OutcomeAuthMissing:
		e.Status = StatusAuthMissing
	case OutcomeRateLimited:
		e.Status = StatusRateLimited
	case OutcomeTimeout:
		e.Status = StatusTimedOut
	default:
		e.Status = StatusUnreachable
	}

	// The code is sticky: a success does not clear it, so a rate limit stays
	// visible (and keeps the verdict at overloaded) until a different error
	// code replaces it.
	if errorCode != "" {
		e.LastErrorCode = errorCode
	}
}

// LatestPing returns the most recent ping and true, or a zero Ping and
// false when no probe has completed yet.
func (e *Endpoint) LatestPing() (Ping, bool) {
	if len(e.History) == 0 {
		return Ping{}, false
	}
	return e.History[len(e.History)-1], true
}
