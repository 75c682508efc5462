package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erwinh22/free-coding-models-sub000/internal/catalog"
	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
)

// testEndpoint builds an endpoint with catalog fields for sort tests.
func testEndpoint(rank int, label, provider string, tier catalog.Tier, history ...endpoint.Ping) *endpoint.Endpoint {
	return &endpoint.Endpoint{
		Entry: catalog.Entry{
			ID:       label,
			Label:    label,
			Provider: provider,
			Tier:     tier,
		},
		Rank:    rank,
		Status:  endpoint.StatusReachable,
		History: history,
	}
}

func TestColumn_Next_CyclesThroughAll(t *testing.T) {
	c := ColumnRank
	seen := map[Column]bool{c: true}
	for i := 0; i < columnCount-1; i++ {
		c = c.Next()
		assert.False(t, seen[c], "column %s repeated before the cycle closed", c)
		seen[c] = true
	}
	assert.Equal(t, ColumnRank, c.Next())
	assert.Len(t, seen, columnCount)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	a := testEndpoint(0, "a", "p1", catalog.TierC, ok(900))
	b := testEndpoint(1, "b", "p2", catalog.TierS, ok(100))
	input := []*endpoint.Endpoint{a, b}

	sorted := Sort(input, ColumnAverageLatency, Ascending)

	require.Len(t, sorted, 2)
	assert.Equal(t, []*endpoint.Endpoint{a, b}, input)
	assert.Equal(t, []*endpoint.Endpoint{b, a}, sorted)
}

func TestSort_ByRankDefault(t *testing.T) {
	a := testEndpoint(2, "third", "p", catalog.TierA)
	b := testEndpoint(0, "first", "p", catalog.TierA)
	c := testEndpoint(1, "second", "p", catalog.TierA)

	sorted := Sort([]*endpoint.Endpoint{a, b, c}, ColumnRank, Ascending)
	assert.Equal(t, []*endpoint.Endpoint{b, c, a}, sorted)
}

func TestSort_DescendingIsReversedComparator(t *testing.T) {
	a := testEndpoint(0, "a", "p", catalog.TierA, ok(100))
	b := testEndpoint(1, "b", "p", catalog.TierA, ok(500))
	c := testEndpoint(2, "c", "p", catalog.TierA, ok(300))
	input := []*endpoint.Endpoint{a, b, c}

	asc := Sort(input, ColumnAverageLatency, Ascending)
	desc := Sort(input, ColumnAverageLatency, Descending)

	assert.Equal(t, []*endpoint.Endpoint{a, c, b}, asc)
	assert.Equal(t, []*endpoint.Endpoint{b, c, a}, desc)
}

func TestSort_StableOnTies(t *testing.T) {
	// Same average latency, so input order must survive
	a := testEndpoint(0, "a", "p", catalog.TierA, ok(200))
	b := testEndpoint(1, "b", "p", catalog.TierA, ok(200))
	c := testEndpoint(2, "c", "p", catalog.TierA, ok(200))

	sorted := Sort([]*endpoint.Endpoint{a, b, c}, ColumnAverageLatency, Ascending)
	assert.Equal(t, []*endpoint.Endpoint{a, b, c}, sorted)
}

func TestSort_FailedLatestPingSortsLast(t *testing.T) {
	healthy := testEndpoint(0, "healthy", "p", catalog.TierA, ok(2000))
	failing := testEndpoint(1, "failing", "p", catalog.TierA, ok(100), failed())

	sorted := Sort([]*endpoint.Endpoint{failing, healthy}, ColumnLatestPing, Ascending)
	assert.Equal(t, []*endpoint.Endpoint{healthy, failing}, sorted)
}

func TestSort_ByTierUsesRankOrder(t *testing.T) {
	sPlus := testEndpoint(0, "splus", "p", catalog.TierSPlus)
	aMinus := testEndpoint(1, "aminus", "p", catalog.TierAMinus)
	unknown := testEndpoint(2, "mystery", "p", catalog.Tier("Z"))

	sorted := Sort([]*endpoint.Endpoint{unknown, aMinus, sPlus}, ColumnTier, Ascending)
	assert.Equal(t, []*endpoint.Endpoint{sPlus, aMinus, unknown}, sorted)
}

func TestSort_ByVerdictHealthOrder(t *testing.T) {
	perfect := testEndpoint(0, "perfect", "p", catalog.TierA, ok(100), ok(110), ok(105))
	slow := testEndpoint(1, "slow", "p", catalog.TierA, ok(2000), ok(2100), ok(1900))
	down := testEndpoint(2, "down", "p", catalog.TierA, failed())
	down.Status = endpoint.StatusUnreachable

	sorted := Sort([]*endpoint.Endpoint{down, slow, perfect}, ColumnVerdict, Ascending)
	assert.Equal(t, []*endpoint.Endpoint{perfect, slow, down}, sorted)
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		in     string
		expect float64
	}{
		{"57.6%", 57.6},
		{"100%", 100},
		{"", 0},
		{"n/a", 0},
		{" 61.8% ", 61.8},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expect, ParseScore(tt.in))
		})
	}
}

func TestParseContextSize(t *testing.T) {
	tests := []struct {
		in     string
		expect float64
	}{
		{"128k", 128},
		{"32k", 32},
		{"1m", 1000},
		{"", 0},
		{"huge", 0},
		{"256K", 256},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expect, ParseContextSize(tt.in))
		})
	}
}
