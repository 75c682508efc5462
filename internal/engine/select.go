package engine

import "github.com/erwinh22/free-coding-models-sub000/internal/endpoint"

// PickBest returns the single best endpoint under a 4-key lexicographic
// order, or nil for an empty input. Each key only breaks ties in the
// previous one:
//
//  1. Reachable endpoints beat everything else (binary split, not graded).
//  2. Lower average latency.
//  3. Higher stability score.
//  4. Higher uptime.
//
// Used by the unattended "observe for a while, then hand off the winner"
// mode, so the result must be deterministic for a given snapshot.
func PickBest(endpoints []*endpoint.Endpoint) *endpoint.Endpoint {
	var best *endpoint.Endpoint
	for _, e := range endpoints {
		if best == nil || betterThan(e, best) {
			best = e
		}
	}
	return best
}

// betterThan reports whether a should rank above b in the PickBest order.
func betterThan(a, b *endpoint.Endpoint) bool {
	aUp := a.Status == endpoint.StatusReachable
	bUp := b.Status == endpoint.StatusReachable
	if aUp != bUp {
		return aUp
	}

	aAvg := AverageLatency(a.History)
	bAvg := AverageLatency(b.History)
	if aAvg != bAvg {
		return aAvg < bAvg
	}

	aStab := StabilityScore(a.History)
	bStab := StabilityScore(b.History)
	if aStab != bStab {
		return aStab > bStab
	}

	return Uptime(a.History) > Uptime(b.History)
}
