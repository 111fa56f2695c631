package population

import (
	"fmt"
	"strings"
)

// HarvestPolicy selects the rule that removes population at each step.
type HarvestPolicy int

const (
	HarvestNone HarvestPolicy = iota
	HarvestConstant
	HarvestPeriodic
	HarvestProportional
)

const (
	// ProportionalHarvestRate is the fraction of the previous population
	// removed each step under HarvestProportional. Not configurable.
	ProportionalHarvestRate = 0.10

	// HarvestPeriod is the step interval of HarvestPeriodic (t=3, 6, 9, ...).
	HarvestPeriod = 3
)

// Policies lists every harvest policy in display order.
var Policies = []HarvestPolicy{HarvestNone, HarvestConstant, HarvestPeriodic, HarvestProportional}

// String returns the short lowercase name used in config and CSV output.
func (h HarvestPolicy) String() string {
	switch h {
	case HarvestNone:
		return "none"
	case HarvestConstant:
		return "constant"
	case HarvestPeriodic:
		return "periodic"
	case HarvestProportional:
		return "proportional"
	default:
		return fmt.Sprintf("HarvestPolicy(%d)", int(h))
	}
}

// Label returns the human-facing name shown in the policy dropdown.
func (h HarvestPolicy) Label() string {
	switch h {
	case HarvestNone:
		return "No Harvest"
	case HarvestConstant:
		return "Constant Harvest"
	case HarvestPeriodic:
		return "Periodic Harvest"
	case HarvestProportional:
		return "Proportional Harvest"
	default:
		return h.String()
	}
}

// Valid reports whether h is one of the known policies.
func (h HarvestPolicy) Valid() bool {
	return h >= HarvestNone && h <= HarvestProportional
}

// UsesAmount reports whether the policy reads Params.HarvestAmount.
func (h HarvestPolicy) UsesAmount() bool {
	return h == HarvestConstant || h == HarvestPeriodic
}

// MarshalText implements encoding.TextMarshaler.
func (h HarvestPolicy) MarshalText() ([]byte, error) {
	if !h.Valid() {
		return nil, invalid("harvest_policy", int(h), "is not a known policy")
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HarvestPolicy) UnmarshalText(text []byte) error {
	p, err := ParseHarvestPolicy(string(text))
	if err != nil {
		return err
	}
	*h = p
	return nil
}

// ParseHarvestPolicy accepts either the short name ("periodic") or the
// display label ("Periodic Harvest"), case-insensitively.
func ParseHarvestPolicy(s string) (HarvestPolicy, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Policies {
		if key == p.String() || key == strings.ToLower(p.Label()) {
			return p, nil
		}
	}
	return HarvestNone, invalid("harvest_policy", s, "is not a known policy")
}

// harvest returns h(t) for step t given the previous population.
func (h HarvestPolicy) harvest(t int, prev, amount float64) float64 {
	switch h {
	case HarvestNone:
		return 0
	case HarvestConstant:
		return amount
	case HarvestPeriodic:
		if t%HarvestPeriod == 0 {
			return amount
		}
		return 0
	case HarvestProportional:
		return ProportionalHarvestRate * prev
	default:
		panic(fmt.Sprintf("population: unhandled harvest policy %d", int(h)))
	}
}
