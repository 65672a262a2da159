package growth_sim

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Shared time axis: 50 evenly spaced points over [0, 20].
const (
	TimePoints  = 50
	TimeSpanEnd = 20.0
)

// Per-point multiplicative noise stays within +-5% of the modeled value.
const noiseFraction = 0.05

// Parameter sampling ranges, one per CurveParams field.
var (
	initialPopRange = [2]float64{1, 10}
	maxPopRange     = [2]float64{100, 1000}
	growthRateRange = [2]float64{0.2, 0.8}
	lagTimeRange    = [2]float64{2, 5}
)

// TimeAxis returns a fresh copy of the shared time axis.
func TimeAxis() []float64 {
	return floats.Span(make([]float64, TimePoints), 0, TimeSpanEnd)
}

// SampleCurveParams draws one parameter set, each field independently uniform
// over its range. Pass a seeded source for reproducible draws.
func SampleCurveParams(src rand.Source) CurveParams {
	uniform := func(r [2]float64) float64 {
		return distuv.Uniform{Min: r[0], Max: r[1], Src: src}.Rand()
	}
	return CurveParams{
		InitialPop: uniform(initialPopRange),
		MaxPop:     uniform(maxPopRange),
		GrowthRate: uniform(growthRateRange),
		LagTime:    uniform(lagTimeRange),
	}
}

// GenerateCurves simulates n independent growth curves over the shared time
// axis, naming them Curve_1..Curve_n. Each modeled point is perturbed by
// uniform noise in [-5%, +5%] of its value, drawn independently per point.
// All randomness comes from src, so a seeded source reproduces the table
// exactly.
func GenerateCurves(n int, src rand.Source) CurveTable {
	table := NewCurveTable(TimeAxis())
	noise := distuv.Uniform{Min: -noiseFraction, Max: noiseFraction, Src: src}

	for i := 0; i < n; i++ {
		params := SampleCurveParams(src)

		populations := make([]float64, len(table.Times))
		for j, t := range table.Times {
			pop := params.PopulationAt(t)
			populations[j] = pop + noise.Rand()*pop
		}
		table.AddSeries(fmt.Sprintf("Curve_%d", i+1), populations)
	}
	return table
}
