package engine

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
)

// Column identifies a sortable dashboard column.
type Column int

const (
	ColumnRank Column = iota
	ColumnTier
	ColumnOrigin
	ColumnName
	ColumnLatestPing
	ColumnAverageLatency
	ColumnScore
	ColumnContext
	ColumnStatus
	ColumnVerdict
	ColumnUptime
	ColumnStability
)

// columnCount is the number of sortable columns, used for cycling.
const columnCount = 12

// String returns the display label for the column.
func (c Column) String() string {
	switch c {
	case ColumnRank:
		return "rank"
	case ColumnTier:
		return "tier"
	case ColumnOrigin:
		return "origin"
	case ColumnName:
		return "name"
	case ColumnLatestPing:
		return "latest ping"
	case ColumnAverageLatency:
		return "avg latency"
	case ColumnScore:
		return "score"
	case ColumnContext:
		return "context"
	case ColumnStatus:
		return "status"
	case ColumnVerdict:
		return "verdict"
	case ColumnUptime:
		return "uptime"
	case ColumnStability:
		return "stability"
	default:
		return "rank"
	}
}

// Next cycles to the next sortable column.
func (c Column) Next() Column {
	return Column((int(c) + 1) % columnCount)
}

// Direction is the sort direction for a column.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Sort returns the endpoints ordered by the given column and direction.
// The input slice is never mutated; equal keys keep their relative input
// order (stable), so repeated renders stay deterministic while metrics tie.
//
// Latency-flavored columns treat "no successful data" as +Inf, a real
// magnitude rather than a flag. Ascending puts failures last; descending
// is "worst first" and puts them at the top.
func Sort(endpoints []*endpoint.Endpoint, column Column, direction Direction) []*endpoint.Endpoint {
	sorted := make([]*endpoint.Endpoint, len(endpoints))
	copy(sorted, endpoints)

	less := lessFunc(column)
	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == Descending {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})

	return sorted
}

// lessFunc returns the natural (ascending) comparator for a column.
func lessFunc(column Column) func(a, b *endpoint.Endpoint) bool {
	switch column {
	case ColumnTier:
		return func(a, b *endpoint.Endpoint) bool {
			return a.Tier.Rank() < b.Tier.Rank()
		}
	case ColumnOrigin:
		return func(a, b *endpoint.Endpoint) bool {
			return a.Provider < b.Provider
		}
	case ColumnName:
		return func(a, b *endpoint.Endpoint) bool {
			return strings.ToLower(a.Label) < strings.ToLower(b.Label)
		}
	case ColumnLatestPing:
		return func(a, b *endpoint.Endpoint) bool {
			return latestLatency(a) < latestLatency(b)
		}
	case ColumnAverageLatency:
		return func(a, b *endpoint.Endpoint) bool {
			return AverageLatency(a.History) < AverageLatency(b.History)
		}
	case ColumnScore:
		return func(a, b *endpoint.Endpoint) bool {
			return ParseScore(a.Score) < ParseScore(b.Score)
		}
	case ColumnContext:
		return func(a, b *endpoint.Endpoint) bool {
			return ParseContextSize(a.Context) < ParseContextSize(b.Context)
		}
	case ColumnStatus:
		return func(a, b *endpoint.Endpoint) bool {
			return a.Status.String() < b.Status.String()
		}
	case ColumnVerdict:
		return func(a, b *endpoint.Endpoint) bool {
			return ComputeVerdict(a) < ComputeVerdict(b)
		}
	case ColumnUptime:
		return func(a, b *endpoint.Endpoint) bool {
			return Uptime(a.History) < Uptime(b.History)
		}
	case ColumnStability:
		return func(a, b *endpoint.Endpoint) bool {
			return StabilityScore(a.History) < StabilityScore(b.History)
		}
	default: // ColumnRank
		return func(a, b *endpoint.Endpoint) bool {
			return a.Rank < b.Rank
		}
	}
}

// latestLatency returns the most recent ping's latency if it succeeded,
// +Inf otherwise. A failed latest ping sorts to the bottom ascending.
func latestLatency(e *endpoint.Endpoint) float64 {
	p, ok := e.LatestPing()
	if !ok || p.Outcome != endpoint.OutcomeSuccess {
		return math.Inf(1)
	}
	return float64(p.ElapsedMs)
}

// ParseScore parses an externally supplied percentage string like "57.6%"
// into its numeric value. Absent or unparseable scores compare as 0.
func ParseScore(score string) float64 {
	s := strings.TrimSuffix(strings.TrimSpace(score), "%")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseContextSize parses a context window label into comparable units of
// 1k tokens: "128k" → 128, "1m" → 1000. Absent or unparseable labels
// compare as 0.
func ParseContextSize(label string) float64 {
	s := strings.ToLower(strings.TrimSpace(label))
	if s == "" {
		return 0
	}

	mult := 1.0
	switch {
	case strings.HasSuffix(s, "k"):
		s = strings.TrimSuffix(s, "k")
	case strings.HasSuffix(s, "m"):
		s = strings.TrimSuffix(s, "m")
		mult = 1000
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v * mult
}
