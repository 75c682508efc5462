// Package engine derives health and consistency metrics from probe history
// and produces total orderings over endpoints. Every function here is pure:
// same input, same output, no I/O, no shared state. The dashboard calls
// these once per render frame against orchestrator-owned snapshots, so
// "no data yet" cases return sentinel values rather than errors.
package engine

import (
	"math"
	"sort"

	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
)

// successLatencies extracts elapsed times of successful pings, in history
// order. Failed attempts carry elapsed times that aren't comparable to real
// round trips (a rate-limit rejection can return near-instantly), so every
// latency statistic filters to successes first.
func successLatencies(history []endpoint.Ping) []float64 {
	var out []float64
	for _, p := range history {
		if p.Outcome == endpoint.OutcomeSuccess {
			out = append(out, float64(p.ElapsedMs))
		}
	}
	return out
}

// AverageLatency returns the mean latency over successful pings, rounded to
// the nearest integer. With no successful pings it returns +Inf, which sorts
// last and displays as unknown; an empty history and a history of only
// failures are indistinguishable here.
func AverageLatency(history []endpoint.Ping) float64 {
	lats := successLatencies(history)
	if len(lats) == 0 {
		return math.Inf(1)
	}
	sum := 0.0
	for _, v := range lats {
		sum += v
	}
	return math.Round(sum / float64(len(lats)))
}

// Percentile95 returns the nearest-rank 95th percentile of successful
// latencies: sort ascending, take index ceil(n*0.95)-1 clamped to [0,n-1].
// Not interpolated: with n=5 the index is 4 (the max), with n=20 it's 18.
// Returns +Inf when there are no successful pings.
func Percentile95(history []endpoint.Ping) float64 {
	lats := successLatencies(history)
	if len(lats) == 0 {
		return math.Inf(1)
	}
	sort.Float64s(lats)
	idx := int(math.Ceil(float64(len(lats))*0.95)) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(lats) {
		idx = len(lats) - 1
	}
	return lats[idx]
}

// Jitter returns the population standard deviation of successful latencies,
// rounded to the nearest integer. Population (divide by n) rather than
// sample variance: the history is the entire set of observations so far,
// not a sample of a larger one. Fewer than 2 successes yields 0: spread
// can't be estimated from a single point.
func Jitter(history []endpoint.Ping) float64 {
	lats := successLatencies(history)
	if len(lats) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range lats {
		mean += v
	}
	mean /= float64(len(lats))

	variance := 0.0
	for _, v := range lats {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(lats))

	return math.Round(math.Sqrt(variance))
}

// Uptime returns the integer percentage of pings that succeeded, 0..100.
// An empty history yields 0, not Inf or NaN: no probes means no evidence
// of health.
func Uptime(history []endpoint.Ping) int {
	if len(history) == 0 {
		return 0
	}
	successes := 0
	for _, p := range history {
		if p.Outcome == endpoint.OutcomeSuccess {
			successes++
		}
	}
	return int(math.Round(100 * float64(successes) / float64(len(history))))
}

// StabilityScore thresholds: the p95 and jitter sub-scores floor to zero at
// these values, and a success slower than spikeThresholdMs counts as a spike.
const (
	p95FloorMs       = 5000.0
	jitterFloorMs    = 2000.0
	spikeThresholdMs = 3000.0
)

// StabilityScore composites tail latency, jitter, spike rate, and uptime
// into a 0-100 score, weighting consistency as heavily as raw speed: an
// endpoint that is fast on average but stalls for multiple seconds now and
// then must score below a boringly consistent mid-speed one. Returns -1
// when there are no successful pings: insufficient data, distinct from a
// genuine worst score of 0.
func StabilityScore(history []endpoint.Ping) int {
	lats := successLatencies(history)
	if len(lats) == 0 {
		return -1
	}

	p95 := Percentile95(history)
	jitter := Jitter(history)

	p95Score := clamp01(1-p95/p95FloorMs) * 100
	jitterScore := clamp01(1-jitter/jitterFloorMs) * 100

	spikes := 0
	for _, v := range lats {
		if v > spikeThresholdMs {
			spikes++
		}
	}
	spikeRate := float64(spikes) / float64(len(lats))
	spikeScore := clamp01(1-spikeRate) * 100

	reliabilityScore := float64(Uptime(history))

	composite := 0.30*p95Score + 0.30*jitterScore + 0.20*spikeScore + 0.20*reliabilityScore
	return int(math.Round(composite))
}

// clamp01 clamps v to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// successCount returns the number of successful pings in the history.
func successCount(history []endpoint.Ping) int {
	n := 0
	for _, p := range history {
		if p.Outcome == endpoint.OutcomeSuccess {
			n++
		}
	}
	return n
}
