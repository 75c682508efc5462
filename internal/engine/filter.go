package engine

import (
	"github.com/erwinh22/free-coding-models-sub000/internal/catalog"
	"github.com/erwinh22/free-coding-models-sub000/internal/endpoint"
)

// FilterByTierLetter returns the endpoints whose tier belongs to the given
// single-letter group (S, A, B, or C, case-insensitive). An unknown letter
// returns nil so the caller can tell "invalid filter" apart from "filtered
// to empty", which is a non-nil empty slice.
func FilterByTierLetter(endpoints []*endpoint.Endpoint, letter string) []*endpoint.Endpoint {
	group := catalog.TierGroup(letter)
	if group == nil {
		return nil
	}

	members := make(map[catalog.Tier]bool, len(group))
	for _, t := range group {
		members[t] = true
	}

	filtered := make([]*endpoint.Endpoint, 0, len(endpoints))
	for _, e := range endpoints {
		if members[e.Tier] {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
