package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTier_Rank(t *testing.T) {
	tests := []struct {
		tier   Tier
		expect int
	}{
		{TierSPlus, 0},
		{TierS, 1},
		{TierAPlus, 2},
		{TierA, 3},
		{TierAMinus, 4},
		{TierBPlus, 5},
		{TierB, 6},
		{TierC, 7},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.tier.Rank())
		})
	}
}

func TestTier_Rank_UnknownRanksWorst(t *testing.T) {
	assert.Equal(t, 8, Tier("Z").Rank())
	assert.Equal(t, 8, Tier("").Rank())
	assert.Greater(t, Tier("D").Rank(), TierC.Rank())
}

func TestTierGroup(t *testing.T) {
	tests := []struct {
		letter string
		expect []Tier
	}{
		{"S", []Tier{TierSPlus, TierS}},
		{"A", []Tier{TierAPlus, TierA, TierAMinus}},
		{"B", []Tier{TierBPlus, TierB}},
		{"C", []Tier{TierC}},
		{"s", []Tier{TierSPlus, TierS}},
		{"a", []Tier{TierAPlus, TierA, TierAMinus}},
	}

	for _, tt := range tests {
		t.Run(tt.letter, func(t *testing.T) {
			assert.Equal(t, tt.expect, TierGroup(tt.letter))
		})
	}
}

func TestTierGroup_Unknown(t *testing.T) {
	assert.Nil(t, TierGroup("X"))
	assert.Nil(t, TierGroup(""))
	assert.Nil(t, TierGroup("S+"))
}
