// Package view holds the presentation state of the simulator: the parameter
// form and the chart model. It has no rendering dependencies.
package view

import (
	"strconv"
	"strings"

	"github.com/pthm-cable/logistic/population"
)

// Field identifies a text input of the form.
type Field int

const (
	FieldInitialPopulation Field = iota
	FieldCarryingCapacity
	FieldGrowthRate
	FieldTimeSteps
	FieldHarvestAmount
	numFields
)

// Label returns the caption shown next to the input.
func (f Field) Label() string {
	switch f {
	case FieldInitialPopulation:
		return "Initial Population (N0)"
	case FieldCarryingCapacity:
		return "Carrying Capacity (K)"
	case FieldGrowthRate:
		return "Growth Rate (r)"
	case FieldTimeSteps:
		return "Time Steps"
	case FieldHarvestAmount:
		return "Harvest Amount"
	default:
		return ""
	}
}

func (f Field) key() string {
	switch f {
	case FieldInitialPopulation:
		return "initial_population"
	case FieldCarryingCapacity:
		return "carrying_capacity"
	case FieldGrowthRate:
		return "growth_rate"
	case FieldTimeSteps:
		return "time_steps"
	case FieldHarvestAmount:
		return "harvest_amount"
	default:
		return "unknown"
	}
}

// Fields lists the inputs in layout order.
var Fields = []Field{
	FieldInitialPopulation,
	FieldCarryingCapacity,
	FieldGrowthRate,
	FieldTimeSteps,
	FieldHarvestAmount,
}

// Form holds raw user input as typed. Values are parsed only by Params.
type Form struct {
	text   [numFields]string
	Policy population.HarvestPolicy
}

// Text returns the raw text of f.
func (fm *Form) Text(f Field) string {
	return fm.text[f]
}

// SetText replaces the raw text of f.
func (fm *Form) SetText(f Field, s string) {
	fm.text[f] = s
}

// TextPtr exposes the backing string of f for in-place editing widgets.
func (fm *Form) TextPtr(f Field) *string {
	return &fm.text[f]
}

// HarvestAmountEnabled reports whether the harvest amount input is read.
func (fm *Form) HarvestAmountEnabled() bool {
	return fm.Policy.UsesAmount()
}

// Clear discards every input and resets the policy to no harvest.
func (fm *Form) Clear() {
	*fm = Form{}
}

// Fill writes p into the form as text.
func (fm *Form) Fill(p population.Params) {
	fm.text[FieldInitialPopulation] = formatFloat(p.InitialPopulation)
	fm.text[FieldCarryingCapacity] = formatFloat(p.CarryingCapacity)
	fm.text[FieldGrowthRate] = formatFloat(p.GrowthRate)
	fm.text[FieldTimeSteps] = strconv.Itoa(p.TimeSteps)
	fm.text[FieldHarvestAmount] = ""
	if p.Policy.UsesAmount() {
		fm.text[FieldHarvestAmount] = formatFloat(p.HarvestAmount)
	}
	fm.Policy = p.Policy
}

// Params parses and validates the form. Non-numeric text and out-of-domain
// values both yield an error matching population.ErrInvalidParameter. The
// harvest amount is required only when HarvestAmountEnabled.
func (fm *Form) Params() (population.Params, error) {
	var p population.Params
	var err error

	if p.InitialPopulation, err = fm.parseFloat(FieldInitialPopulation); err != nil {
		return population.Params{}, err
	}
	if p.CarryingCapacity, err = fm.parseFloat(FieldCarryingCapacity); err != nil {
		return population.Params{}, err
	}
	if p.GrowthRate, err = fm.parseFloat(FieldGrowthRate); err != nil {
		return population.Params{}, err
	}
	if p.TimeSteps, err = fm.parseInt(FieldTimeSteps); err != nil {
		return population.Params{}, err
	}
	p.Policy = fm.Policy
	if fm.HarvestAmountEnabled() {
		if p.HarvestAmount, err = fm.parseFloat(FieldHarvestAmount); err != nil {
			return population.Params{}, err
		}
	}

	if err := p.Validate(); err != nil {
		return population.Params{}, err
	}
	return p, nil
}

func (fm *Form) parseFloat(f Field) (float64, error) {
	s := strings.TrimSpace(fm.text[f])
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, notNumber(f, s, "is not a number")
	}
	return v, nil
}

func (fm *Form) parseInt(f Field) (int, error) {
	s := strings.TrimSpace(fm.text[f])
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, notNumber(f, s, "is not an integer")
	}
	return v, nil
}

func notNumber(f Field, s, reason string) error {
	if s == "" {
		s = `""`
	}
	return &population.ParameterError{Field: f.key(), Value: s, Reason: reason}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
