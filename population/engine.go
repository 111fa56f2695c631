// Package population implements discrete-time logistic growth under a
// harvesting policy.
package population

// Run computes population[0..T] for p. It is a pure function: each call
// allocates its own trajectory and shares nothing with earlier calls.
func Run(p Params) (Trajectory, error) {
	if err := p.Validate(); err != nil {
		return Trajectory{}, err
	}

	points := make([]Point, p.TimeSteps+1)
	points[0] = Point{Time: 0, Population: p.InitialPopulation}

	prev := p.InitialPopulation
	for t := 1; t <= p.TimeSteps; t++ {
		next := Step(prev, p.GrowthRate, p.CarryingCapacity)
		prev = floor(next - p.Policy.harvest(t, prev, p.HarvestAmount))
		points[t] = Point{Time: t, Population: prev}
	}

	return Trajectory{points: points}, nil
}

// Step returns the unharvested logistic update prev + r*prev*(1 - prev/k).
func Step(prev, r, k float64) float64 {
	return prev + r*prev*(1-prev/k)
}

// floor clamps to zero; the negated comparison also maps NaN to zero.
func floor(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return v
}
