package population

import (
	"errors"
	"math"
	"testing"
)

func mustRun(t *testing.T, p Params) Trajectory {
	t.Helper()
	tr, err := Run(p)
	if err != nil {
		t.Fatalf("Run(%+v) returned error: %v", p, err)
	}
	return tr
}

func TestRunNoHarvestScenario(t *testing.T) {
	tr := mustRun(t, Params{InitialPopulation: 10, CarryingCapacity: 100, GrowthRate: 0.3, TimeSteps: 5})

	if tr.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", tr.Len())
	}
	if got := tr.At(1).Population; math.Abs(got-12.7) > 1e-9 {
		t.Errorf("population[1] = %v, want 12.7", got)
	}
	for i := 1; i < tr.Len(); i++ {
		prev, cur := tr.At(i-1).Population, tr.At(i).Population
		if cur <= prev {
			t.Errorf("population[%d] = %v not greater than population[%d] = %v", i, cur, i-1, prev)
		}
		if cur >= 100 {
			t.Errorf("population[%d] = %v reached carrying capacity", i, cur)
		}
	}
}

func TestRunConstantHarvestScenario(t *testing.T) {
	tr := mustRun(t, Params{
		InitialPopulation: 50, CarryingCapacity: 100, GrowthRate: 0.5,
		TimeSteps: 1, Policy: HarvestConstant, HarvestAmount: 30,
	})
	if got := tr.At(1).Population; math.Abs(got-32.5) > 1e-9 {
		t.Errorf("population[1] = %v, want 32.5", got)
	}
}

func TestRunPeriodicHarvestScenario(t *testing.T) {
	p := Params{
		InitialPopulation: 50, CarryingCapacity: 100, GrowthRate: 0.2,
		TimeSteps: 3, Policy: HarvestPeriodic, HarvestAmount: 10,
	}
	tr := mustRun(t, p)

	// Steps 1 and 2 are unharvested, step 3 removes the full amount.
	want := make([]float64, 4)
	want[0] = 50
	want[1] = Step(want[0], 0.2, 100)
	want[2] = Step(want[1], 0.2, 100)
	want[3] = Step(want[2], 0.2, 100) - 10

	for i, w := range want {
		if got := tr.At(i).Population; math.Abs(got-w) > 1e-9 {
			t.Errorf("population[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestRunProportionalHarvestScenario(t *testing.T) {
	tr := mustRun(t, Params{
		InitialPopulation: 50, CarryingCapacity: 100, GrowthRate: 0.2,
		TimeSteps: 1, Policy: HarvestProportional,
	})
	if got := tr.At(1).Population; math.Abs(got-50) > 1e-9 {
		t.Errorf("population[1] = %v, want 50", got)
	}
}

func TestRunProportionalIgnoresHarvestAmount(t *testing.T) {
	base := Params{InitialPopulation: 40, CarryingCapacity: 100, GrowthRate: 0.4, TimeSteps: 10, Policy: HarvestProportional}
	withAmount := base
	withAmount.HarvestAmount = math.NaN()

	a := mustRun(t, base)
	b := mustRun(t, withAmount)
	for i := 0; i < a.Len(); i++ {
		if a.At(i) != b.At(i) {
			t.Fatalf("point %d differs: %v vs %v", i, a.At(i), b.At(i))
		}
	}
}

func TestRunShapeAndNonNegative(t *testing.T) {
	cases := []Params{
		{InitialPopulation: 0, CarryingCapacity: 1, GrowthRate: 1, TimeSteps: 0},
		{InitialPopulation: 5, CarryingCapacity: 100, GrowthRate: 2.9, TimeSteps: 50},
		{InitialPopulation: 80, CarryingCapacity: 100, GrowthRate: 0.5, TimeSteps: 30, Policy: HarvestConstant, HarvestAmount: 60},
		{InitialPopulation: 80, CarryingCapacity: 100, GrowthRate: 0.1, TimeSteps: 30, Policy: HarvestPeriodic, HarvestAmount: 1000},
		{InitialPopulation: 1000, CarryingCapacity: 1, GrowthRate: 3, TimeSteps: 20, Policy: HarvestProportional},
		{InitialPopulation: 1000, CarryingCapacity: 1, GrowthRate: -5, TimeSteps: 40},
	}

	for _, p := range cases {
		tr := mustRun(t, p)
		if tr.Len() != p.TimeSteps+1 {
			t.Errorf("%+v: Len() = %d, want %d", p, tr.Len(), p.TimeSteps+1)
		}
		if tr.At(0).Population != p.InitialPopulation {
			t.Errorf("%+v: population[0] = %v, want %v", p, tr.At(0).Population, p.InitialPopulation)
		}
		for i, pt := range tr.Points() {
			if pt.Time != i {
				t.Errorf("%+v: point %d has time %d", p, i, pt.Time)
			}
			if !(pt.Population >= 0) {
				t.Errorf("%+v: population[%d] = %v, want >= 0", p, i, pt.Population)
			}
		}
	}
}

func TestRunZeroGrowthIsConstant(t *testing.T) {
	tr := mustRun(t, Params{InitialPopulation: 37.5, CarryingCapacity: 100, GrowthRate: 0, TimeSteps: 25})
	for i, v := range tr.Populations() {
		if v != 37.5 {
			t.Errorf("population[%d] = %v, want 37.5", i, v)
		}
	}
}

func TestRunCarryingCapacityFixedPoint(t *testing.T) {
	for _, r := range []float64{0.1, 0.5, 1.5, 2.5} {
		tr := mustRun(t, Params{InitialPopulation: 250, CarryingCapacity: 250, GrowthRate: r, TimeSteps: 10})
		for i, v := range tr.Populations() {
			if v != 250 {
				t.Errorf("r=%v: population[%d] = %v, want 250", r, i, v)
			}
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	p := Params{InitialPopulation: 3, CarryingCapacity: 90, GrowthRate: 2.7, TimeSteps: 200, Policy: HarvestPeriodic, HarvestAmount: 4}
	a := mustRun(t, p)
	b := mustRun(t, p)
	for i := 0; i < a.Len(); i++ {
		if math.Float64bits(a.At(i).Population) != math.Float64bits(b.At(i).Population) {
			t.Fatalf("run differs at %d: %v vs %v", i, a.At(i).Population, b.At(i).Population)
		}
	}
}

func TestTrajectoryAccessorsCopy(t *testing.T) {
	tr := mustRun(t, Params{InitialPopulation: 10, CarryingCapacity: 100, GrowthRate: 0.3, TimeSteps: 3})

	pops := tr.Populations()
	pops[0] = -1
	pts := tr.Points()
	pts[1].Population = -1

	if tr.At(0).Population != 10 {
		t.Errorf("Populations() exposed internal storage")
	}
	if tr.At(1).Population < 0 {
		t.Errorf("Points() exposed internal storage")
	}
	if got := tr.Times(); len(got) != 4 || got[3] != 3 {
		t.Errorf("Times() = %v", got)
	}
	if tr.Final().Time != 3 {
		t.Errorf("Final().Time = %d, want 3", tr.Final().Time)
	}
}

func TestRunInvalidParameters(t *testing.T) {
	valid := Params{InitialPopulation: 10, CarryingCapacity: 100, GrowthRate: 0.3, TimeSteps: 5}

	tests := []struct {
		name  string
		mod   func(*Params)
		field string
	}{
		{"zero capacity", func(p *Params) { p.CarryingCapacity = 0 }, "carrying_capacity"},
		{"negative capacity", func(p *Params) { p.CarryingCapacity = -1 }, "carrying_capacity"},
		{"infinite capacity", func(p *Params) { p.CarryingCapacity = math.Inf(1) }, "carrying_capacity"},
		{"negative steps", func(p *Params) { p.TimeSteps = -1 }, "time_steps"},
		{"huge steps", func(p *Params) { p.TimeSteps = math.MaxInt }, "time_steps"},
		{"steps above max", func(p *Params) { p.TimeSteps = MaxTimeSteps + 1 }, "time_steps"},
		{"nan initial", func(p *Params) { p.InitialPopulation = math.NaN() }, "initial_population"},
		{"negative initial", func(p *Params) { p.InitialPopulation = -3 }, "initial_population"},
		{"nan growth", func(p *Params) { p.GrowthRate = math.NaN() }, "growth_rate"},
		{"unknown policy", func(p *Params) { p.Policy = HarvestPolicy(42) }, "harvest_policy"},
		{"nan constant amount", func(p *Params) { p.Policy = HarvestConstant; p.HarvestAmount = math.NaN() }, "harvest_amount"},
		{"inf periodic amount", func(p *Params) { p.Policy = HarvestPeriodic; p.HarvestAmount = math.Inf(-1) }, "harvest_amount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mod(&p)
			_, err := Run(p)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("Run() error = %v, want ErrInvalidParameter", err)
			}
			var pe *ParameterError
			if !errors.As(err, &pe) {
				t.Fatalf("Run() error %T is not *ParameterError", err)
			}
			if pe.Field != tt.field {
				t.Errorf("Field = %q, want %q", pe.Field, tt.field)
			}
		})
	}
}
