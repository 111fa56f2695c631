package view

import (
	"errors"
	"testing"

	"github.com/pthm-cable/logistic/population"
)

func filledForm(policy population.HarvestPolicy, amount string) *Form {
	fm := &Form{Policy: policy}
	fm.SetText(FieldInitialPopulation, "50")
	fm.SetText(FieldCarryingCapacity, "100")
	fm.SetText(FieldGrowthRate, "0.5")
	fm.SetText(FieldTimeSteps, " 1 ")
	fm.SetText(FieldHarvestAmount, amount)
	return fm
}

func TestFormParams(t *testing.T) {
	p, err := filledForm(population.HarvestConstant, "30").Params()
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	want := population.Params{
		InitialPopulation: 50, CarryingCapacity: 100, GrowthRate: 0.5,
		TimeSteps: 1, Policy: population.HarvestConstant, HarvestAmount: 30,
	}
	if p != want {
		t.Errorf("Params() = %+v, want %+v", p, want)
	}
}

func TestFormHarvestAmountOnlyReadWhenEnabled(t *testing.T) {
	tests := []struct {
		policy  population.HarvestPolicy
		enabled bool
	}{
		{population.HarvestNone, false},
		{population.HarvestConstant, true},
		{population.HarvestPeriodic, true},
		{population.HarvestProportional, false},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			fm := filledForm(tt.policy, "lots")
			if fm.HarvestAmountEnabled() != tt.enabled {
				t.Fatalf("HarvestAmountEnabled() = %v, want %v", !tt.enabled, tt.enabled)
			}
			p, err := fm.Params()
			if tt.enabled {
				var pe *population.ParameterError
				if !errors.As(err, &pe) || pe.Field != "harvest_amount" {
					t.Errorf("Params() error = %v, want harvest_amount error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Params() error = %v, want harvest amount ignored", err)
			}
			if p.HarvestAmount != 0 {
				t.Errorf("HarvestAmount = %v, want 0", p.HarvestAmount)
			}
		})
	}
}

func TestFormInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		text  string
		key   string
	}{
		{"empty initial", FieldInitialPopulation, "", "initial_population"},
		{"word capacity", FieldCarryingCapacity, "lots", "carrying_capacity"},
		{"zero capacity", FieldCarryingCapacity, "0", "carrying_capacity"},
		{"nan growth", FieldGrowthRate, "NaN", "growth_rate"},
		{"fractional steps", FieldTimeSteps, "2.5", "time_steps"},
		{"negative steps", FieldTimeSteps, "-4", "time_steps"},
		{"overflowing steps", FieldTimeSteps, "9223372036854775807", "time_steps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm := filledForm(population.HarvestNone, "")
			fm.SetText(tt.field, tt.text)
			_, err := fm.Params()
			if !errors.Is(err, population.ErrInvalidParameter) {
				t.Fatalf("Params() error = %v, want ErrInvalidParameter", err)
			}
			var pe *population.ParameterError
			if !errors.As(err, &pe) || pe.Field != tt.key {
				t.Errorf("error field = %v, want %q", err, tt.key)
			}
		})
	}
}

func TestFormClear(t *testing.T) {
	fm := filledForm(population.HarvestPeriodic, "10")
	fm.Clear()

	for _, f := range Fields {
		if fm.Text(f) != "" {
			t.Errorf("%s = %q after Clear", f.Label(), fm.Text(f))
		}
	}
	if fm.Policy != population.HarvestNone {
		t.Errorf("Policy = %v after Clear, want none", fm.Policy)
	}
	if fm.HarvestAmountEnabled() {
		t.Error("harvest amount still enabled after Clear")
	}
}

func TestFormFillRoundtrip(t *testing.T) {
	want := population.Params{
		InitialPopulation: 12.5, CarryingCapacity: 300, GrowthRate: 0.07,
		TimeSteps: 40, Policy: population.HarvestPeriodic, HarvestAmount: 3.25,
	}
	var fm Form
	fm.Fill(want)
	got, err := fm.Params()
	if err != nil {
		t.Fatalf("Params() error: %v", err)
	}
	if got != want {
		t.Errorf("roundtrip = %+v, want %+v", got, want)
	}

	fm.Fill(population.Params{InitialPopulation: 1, CarryingCapacity: 2, TimeSteps: 3, HarvestAmount: 99})
	if fm.Text(FieldHarvestAmount) != "" {
		t.Errorf("harvest amount text = %q for a policy that ignores it", fm.Text(FieldHarvestAmount))
	}
}
