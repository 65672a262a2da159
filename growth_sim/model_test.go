package growth_sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogisticPopulationAtTimeZero(t *testing.T) {
	// At t=0 the exponential term is 1 regardless of the growth rate or the
	// lag branch, so the model returns the initial population exactly.
	testCases := []struct {
		initialPop float64
		maxPop     float64
		growthRate float64
		lagTime    float64
	}{
		{1, 100, 0.2, 2},
		{5, 500, 0.5, 3.5},
		{10, 1000, 0.8, 5},
		{10, 1000, 0.8, 0}, // no lag phase: either branch gives t=0
	}

	for _, tc := range testCases {
		pop := LogisticPopulation(0, tc.initialPop, tc.maxPop, tc.growthRate, tc.lagTime)
		assert.InDelta(t, tc.initialPop, pop, 1e-9)
	}
}

func TestLogisticPopulationMonotonicPastLag(t *testing.T) {
	params := CurveParams{InitialPop: 5, MaxPop: 500, GrowthRate: 0.5, LagTime: 3}

	prev := params.PopulationAt(params.LagTime)
	for step := 1; step <= 100; step++ {
		tm := params.LagTime + float64(step)*0.17
		pop := params.PopulationAt(tm)
		require.GreaterOrEqual(t, pop, prev, "population dipped at t=%v", tm)
		require.LessOrEqual(t, pop, params.MaxPop, "population exceeded capacity at t=%v", tm)
		prev = pop
	}
}

func TestLogisticPopulationLagDamping(t *testing.T) {
	params := CurveParams{InitialPop: 5, MaxPop: 500, GrowthRate: 0.5, LagTime: 4}

	// During the lag phase the clock runs at a tenth speed, so the modeled
	// population matches an undamped query at t/10.
	damped := params.PopulationAt(3)
	undamped := LogisticPopulation(0.3, params.InitialPop, params.MaxPop, params.GrowthRate, 0)
	assert.InDelta(t, undamped, damped, 1e-12)

	// And it sits strictly below what the undamped model would give at t=3.
	assert.Less(t, damped, LogisticPopulation(3, params.InitialPop, params.MaxPop, params.GrowthRate, 0))
}

func TestLogisticPopulationApproachesCapacity(t *testing.T) {
	pop := LogisticPopulation(1000, 5, 500, 0.5, 3)
	assert.InDelta(t, 500, pop, 1e-6)
}
