package generator

import (
	"math/rand"
	"testing"

	"github.com/learningpython92/FinalDashboard/internal/profile"
	"github.com/stretchr/testify/assert"
)

var testMix = []profile.Channel{
	{Name: "Portal", Weight: 0.50},
	{Name: "Campus", Weight: 0.20},
	{Name: "Agency", Weight: 0.15},
	{Name: "Referral", Weight: 0.10},
}

func TestPickWeighted(t *testing.T) {
	cases := []struct {
		r    float64
		want string
	}{
		{0.0, "Portal"},
		{0.5, "Portal"},
		{0.50001, "Campus"},
		{0.65, "Campus"},
		{0.84, "Agency"},
		{0.9, "Referral"},
		// Past the cumulative total of 0.95.
		{0.97, "Referral"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, pickWeighted(tc.r, testMix), "r=%v", tc.r)
	}
}

func TestPickWeightedEmptyMix(t *testing.T) {
	assert.Equal(t, UnknownSource, pickWeighted(0.3, nil))
	assert.Equal(t, UnknownSource, pickWeighted(0.3, []profile.Channel{}))
}

func TestWeightedDistribution(t *testing.T) {
	f := NewFaker(rand.New(rand.NewSource(42)))
	mix := []profile.Channel{
		{Name: "A", Weight: 0.7},
		{Name: "B", Weight: 0.3},
	}

	const draws = 20000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[f.Weighted(mix)]++
	}

	assert.InDelta(t, 0.7, float64(counts["A"])/draws, 0.02)
	assert.InDelta(t, 0.3, float64(counts["B"])/draws, 0.02)
}
