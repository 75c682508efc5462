package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erwinh22/free-coding-models-sub000/internal/catalog"
	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
)

func TestPickBest_Empty(t *testing.T) {
	assert.Nil(t, PickBest(nil))
	assert.Nil(t, PickBest([]*endpoint.Endpoint{}))
}

func TestPickBest_SingleCandidate(t *testing.T) {
	only := testEndpoint(0, "only", "p", catalog.TierA, failed())
	only.Status = endpoint.StatusUnreachable

	// Even a dead endpoint wins when it is the only one
	assert.Same(t, only, PickBest([]*endpoint.Endpoint{only}))
}

func TestPickBest_ReachableBeatsFasterUnreachable(t *testing.T) {
	down := testEndpoint(0, "down", "p", catalog.TierA, ok(50), failed())
	down.Status = endpoint.StatusUnreachable
	up := testEndpoint(1, "up", "p", catalog.TierA, ok(900))

	assert.Same(t, up, PickBest([]*endpoint.Endpoint{down, up}))
}

func TestPickBest_LowerAverageWins(t *testing.T) {
	slow := testEndpoint(0, "slow", "p", catalog.TierA, ok(800))
	fast := testEndpoint(1, "fast", "p", catalog.TierA, ok(200))

	assert.Same(t, fast, PickBest([]*endpoint.Endpoint{slow, fast}))
}

func TestPickBest_StabilityBreaksLatencyTie(t *testing.T) {
	// Identical averages; steady history beats a flaky one
	steady := testEndpoint(0, "steady", "p", catalog.TierA, ok(300), ok(300), ok(300), ok(300))
	flaky := testEndpoint(1, "flaky", "p", catalog.TierA, ok(100), ok(500), ok(100), ok(500))

	assert.Same(t, steady, PickBest([]*endpoint.Endpoint{flaky, steady}))
}

func TestPickBest_UptimeIsFinalTieBreak(t *testing.T) {
	// Equal averages, and histories tuned so the rounded stability scores
	// tie while uptime still differs
	clean := testEndpoint(0, "clean", "p", catalog.TierA, ok(300), ok(300), ok(300))

	var flakyHistory []endpoint.Ping
	for i := 0; i < 97; i++ {
		flakyHistory = append(flakyHistory, ok(300))
	}
	flakyHistory = append(flakyHistory, failed(), failed(), failed())
	flaky := testEndpoint(1, "flaky", "p", catalog.TierA, flakyHistory...)

	assert.Equal(t, StabilityScore(clean.History), StabilityScore(flaky.History))
	assert.Same(t, clean, PickBest([]*endpoint.Endpoint{flaky, clean}))
}

func TestPickBest_FirstWinsOnCompleteTie(t *testing.T) {
	a := testEndpoint(0, "a", "p", catalog.TierA, ok(300))
	b := testEndpoint(1, "b", "p", catalog.TierA, ok(300))

	assert.Same(t, a, PickBest([]*endpoint.Endpoint{a, b}))
}
