package growth_sim

import "math"

// Fraction of real time that elapses while a culture is still in lag phase.
const lagDamping = 0.1

// CurveParams holds the four parameters of one logistic growth curve.
type CurveParams struct {
	InitialPop float64
	MaxPop     float64
	GrowthRate float64
	LagTime    float64
}

// LogisticPopulation returns the modeled population at time t. Queries before
// lagTime run on a damped clock (a tenth of real time) to approximate a lag
// phase; afterwards the standard closed-form logistic equation applies.
//
// initialPop must be nonzero. No other validation is performed: negative
// rates, capacities or times propagate mathematically.
func LogisticPopulation(t, initialPop, maxPop, growthRate, lagTime float64) float64 {
	adjusted := t
	if t < lagTime {
		adjusted = t * lagDamping
	}

	denominator := 1 + ((maxPop/initialPop)-1)*math.Exp(-growthRate*adjusted)
	return maxPop / denominator
}

// PopulationAt evaluates the logistic model with this curve's parameters.
func (p CurveParams) PopulationAt(t float64) float64 {
	return LogisticPopulation(t, p.InitialPop, p.MaxPop, p.GrowthRate, p.LagTime)
}
