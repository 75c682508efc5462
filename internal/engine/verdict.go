package engine

import (
	"math"

	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
)

// Verdict is the qualitative health label for an endpoint. The declaration
// order is the contract: healthiest first, so "sort by verdict" can compare
// values directly.
type Verdict int

const (
	VerdictPerfect Verdict = iota
	VerdictNormal
	VerdictSlow
	VerdictSpiky
	VerdictVerySlow
	VerdictOverloaded
	VerdictUnstable
	VerdictNotActive
	VerdictPending
)

// String returns the display label for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictPerfect:
		return "perfect"
	case VerdictNormal:
		return "normal"
	case VerdictSlow:
		return "slow"
	case VerdictSpiky:
		return "spiky"
	case VerdictVerySlow:
		return "very slow"
	case VerdictOverloaded:
		return "overloaded"
	case VerdictUnstable:
		return "unstable"
	case VerdictNotActive:
		return "not active"
	default:
		return "pending"
	}
}

// Latency thresholds (ms) for the verdict decision chain.
const (
	fastAvgMs     = 400
	normalAvgMs   = 1000
	slowAvgMs     = 3000
	verySlowAvgMs = 5000

	// Spiky carve-out: a low average can hide multi-second tail stalls,
	// so a p95 above these ceilings overrides Perfect/Normal.
	fastSpikyP95Ms   = 3000
	normalSpikyP95Ms = 5000

	// minSamplesForSpiky guards the carve-out so a single cold-start
	// outlier can't mislabel an endpoint before enough samples exist.
	minSamplesForSpiky = 3
)

// ComputeVerdict classifies an endpoint's health from its history, coarse
// lifecycle status, and last error code. The checks run in a fixed order
// and the first match wins:
//
//  1. Last error code was a rate limit → Overloaded.
//  2. Unreachable/timed-out now, but it succeeded before → Unstable.
//  3. Unreachable/timed-out and never succeeded → NotActive.
//  4. No successful pings at all yet → Pending.
//  5. Otherwise classify by average latency, with the spiky carve-out.
//
// "Worked before, failing now" and "never worked" are materially different
// states and must not be collapsed.
func ComputeVerdict(e *endpoint.Endpoint) Verdict {
	if e.LastErrorCode == endpoint.RateLimitCode {
		return VerdictOverloaded
	}

	down := e.Status == endpoint.StatusUnreachable || e.Status == endpoint.StatusTimedOut
	if down {
		if successCount(e.History) > 0 {
			return VerdictUnstable
		}
		return VerdictNotActive
	}

	avg := AverageLatency(e.History)
	if math.IsInf(avg, 1) {
		return VerdictPending
	}

	p95 := Percentile95(e.History)
	haveEnoughData := successCount(e.History) >= minSamplesForSpiky

	switch {
	case avg < fastAvgMs:
		if haveEnoughData && p95 > fastSpikyP95Ms {
			return VerdictSpiky
		}
		return VerdictPerfect
	case avg < normalAvgMs:
		if haveEnoughData && p95 > normalSpikyP95Ms {
			return VerdictSpiky
		}
		return VerdictNormal
	case avg < slowAvgMs:
		return VerdictSlow
	case avg < verySlowAvgMs:
		return VerdictVerySlow
	default:
		return VerdictUnstable
	}
}
