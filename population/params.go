package population

import (
	"fmt"
	"log/slog"
	"math"
)

// MaxTimeSteps bounds TimeSteps so a trajectory of TimeSteps+1 points can
// always be allocated.
const MaxTimeSteps = 10_000_000

// Params is the complete input of a single simulation run.
type Params struct {
	InitialPopulation float64
	CarryingCapacity  float64
	GrowthRate        float64
	TimeSteps         int
	Policy            HarvestPolicy
	// HarvestAmount is read only when Policy.UsesAmount() is true.
	HarvestAmount float64
}

// Validate checks the domain of every field the run will read.
func (p Params) Validate() error {
	if !finite(p.InitialPopulation) {
		return invalid("initial_population", p.InitialPopulation, "must be finite")
	}
	if p.InitialPopulation < 0 {
		return invalid("initial_population", p.InitialPopulation, "must be >= 0")
	}
	if !finite(p.CarryingCapacity) {
		return invalid("carrying_capacity", p.CarryingCapacity, "must be finite")
	}
	if p.CarryingCapacity <= 0 {
		return invalid("carrying_capacity", p.CarryingCapacity, "must be > 0")
	}
	if !finite(p.GrowthRate) {
		return invalid("growth_rate", p.GrowthRate, "must be finite")
	}
	if p.TimeSteps < 0 {
		return invalid("time_steps", p.TimeSteps, "must be >= 0")
	}
	if p.TimeSteps > MaxTimeSteps {
		return invalid("time_steps", p.TimeSteps, fmt.Sprintf("must be <= %d", MaxTimeSteps))
	}
	if !p.Policy.Valid() {
		return invalid("harvest_policy", int(p.Policy), "is not a known policy")
	}
	if p.Policy.UsesAmount() && !finite(p.HarvestAmount) {
		return invalid("harvest_amount", p.HarvestAmount, "must be finite")
	}
	return nil
}

// LogValue implements slog.LogValuer for structured logging.
func (p Params) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Float64("initial_population", p.InitialPopulation),
		slog.Float64("carrying_capacity", p.CarryingCapacity),
		slog.Float64("growth_rate", p.GrowthRate),
		slog.Int("time_steps", p.TimeSteps),
		slog.String("harvest_policy", p.Policy.String()),
	}
	if p.Policy.UsesAmount() {
		attrs = append(attrs, slog.Float64("harvest_amount", p.HarvestAmount))
	}
	return slog.GroupValue(attrs...)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
