package catalog

import "strings"

// Tier is a declared capability rank for an endpoint's model,
// one of the 8 known ranks from S+ (best) to C (worst).
type Tier string

// Known tiers in rank order, best first.
const (
	TierSPlus  Tier = "S+"
	TierS      Tier = "S"
	TierAPlus  Tier = "A+"
	TierA      Tier = "A"
	TierAMinus Tier = "A-"
	TierBPlus  Tier = "B+"
	TierB      Tier = "B"
	TierC      Tier = "C"
)

// tierOrder backs Rank lookups. Position = rank, lower is better.
var tierOrder = []Tier{TierSPlus, TierS, TierAPlus, TierA, TierAMinus, TierBPlus, TierB, TierC}

// Rank returns the tier's position in the rank order (0 = best).
// Unrecognized tiers rank after every known tier rather than failing;
// they originate from static external data the core doesn't validate.
func (t Tier) Rank() int {
	for i, known := range tierOrder {
		if t == known {
			return i
		}
	}
	return len(tierOrder)
}

// TierGroup returns the tiers belonging to a single-letter group:
// S→{S+,S}, A→{A+,A,A-}, B→{B+,B}, C→{C}. The letter is case-insensitive.
// Returns nil for an unknown letter so callers can distinguish an invalid
// filter from a filter that matched nothing.
func TierGroup(letter string) []Tier {
	switch strings.ToUpper(letter) {
	case "S":
		return []Tier{TierSPlus, TierS}
	case "A":
		return []Tier{TierAPlus, TierA, TierAMinus}
	case "B":
		return []Tier{TierBPlus, TierB}
	case "C":
		return []Tier{TierC}
	default:
		return nil
	}
}
