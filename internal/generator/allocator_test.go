package generator

import (
	"testing"

	"github.com/learningpython92/FinalDashboard/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSumsExactly(t *testing.T) {
	functions := profile.MustDefault().Functions

	cases := []struct {
		total, available int
	}{
		{30000, 26473},
		{200000, 171999},
		{100000, 93333},
		{5000, 4321},
		{7, 6},
	}

	for _, tc := range cases {
		gap := tc.total - tc.available
		shares := Split(tc.total, tc.available, gap, functions)
		require.Len(t, shares, len(functions))

		var total, available, sumGap int
		for i, s := range shares {
			assert.Equal(t, functions[i].Name, s.Function)
			assert.Equal(t, s.Total-s.Available, s.Gap, "gap for %s", s.Function)
			total += s.Total
			available += s.Available
			sumGap += s.Gap
		}

		assert.Equal(t, tc.total, total)
		assert.Equal(t, tc.available, available)
		assert.Equal(t, gap, sumGap)
	}
}

func TestSplitLastFunctionAbsorbsRemainder(t *testing.T) {
	functions := []profile.Function{
		{Name: "A", Weight: 1.0 / 3},
		{Name: "B", Weight: 1.0 / 3},
		{Name: "C", Weight: 1.0 / 3},
	}

	shares := Split(10, 7, 3, functions)

	assert.Equal(t, Share{Function: "A", Total: 3, Available: 2, Gap: 1}, shares[0])
	assert.Equal(t, Share{Function: "B", Total: 3, Available: 2, Gap: 1}, shares[1])
	assert.Equal(t, Share{Function: "C", Total: 4, Available: 3, Gap: 1}, shares[2])
}

func TestSplitGapFollowsTotalMinusAvailable(t *testing.T) {
	functions := []profile.Function{
		{Name: "A", Weight: 0.5},
		{Name: "B", Weight: 0.5},
	}

	shares := Split(10, 9, 1, functions)

	// A truncated 1*0.5 would give A no gap at all.
	assert.Equal(t, Share{Function: "A", Total: 5, Available: 4, Gap: 1}, shares[0])
	assert.Equal(t, Share{Function: "B", Total: 5, Available: 5, Gap: 0}, shares[1])
}

func TestSplitSingleFunction(t *testing.T) {
	shares := Split(500, 450, 50, []profile.Function{{Name: "Only", Weight: 0.4}})
	require.Len(t, shares, 1)
	assert.Equal(t, Share{Function: "Only", Total: 500, Available: 450, Gap: 50}, shares[0])
}

func TestHireCount(t *testing.T) {
	assert.Equal(t, 900, HireCount(3000, 0.30))
	assert.Equal(t, 150, HireCount(3000, 0.05))
	assert.Equal(t, 0, HireCount(19, 0.05))
	assert.Equal(t, 0, HireCount(0, 0.30))
}
