// Package scenario runs a batch of independent simulations, one ECS entity
// per run, so several harvest policies can be compared side by side.
package scenario

import (
	"fmt"
	"sort"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/logistic/population"
	"github.com/pthm-cable/logistic/telemetry"
)

// Spec is the input component of a scenario entity.
type Spec struct {
	Index  int
	Label  string
	Params population.Params
}

// Outcome is the output component, filled in by Run.
type Outcome struct {
	Done       bool
	Trajectory population.Trajectory
	Summary    telemetry.Summary
	Err        error
	Elapsed    time.Duration
}

// Result pairs a scenario's input with its outcome.
type Result struct {
	Label      string
	Params     population.Params
	Trajectory population.Trajectory
	Summary    telemetry.Summary
	Err        error
	Elapsed    time.Duration

	index int
}

// Batch holds scenarios in an ECS world.
type Batch struct {
	world  *ecs.World
	mapper *ecs.Map2[Spec, Outcome]
	filter *ecs.Filter2[Spec, Outcome]
	count  int
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	world := ecs.NewWorld()
	return &Batch{
		world:  world,
		mapper: ecs.NewMap2[Spec, Outcome](world),
		filter: ecs.NewFilter2[Spec, Outcome](world),
	}
}

// ForPolicies builds one scenario per policy from shared base parameters.
// Each scenario is labelled with the policy's short name.
func ForPolicies(base population.Params, policies []population.HarvestPolicy) *Batch {
	b := NewBatch()
	for _, policy := range policies {
		p := base
		p.Policy = policy
		b.Add(policy.String(), p)
	}
	return b
}

// Add queues a scenario. Labels are not required to be unique.
func (b *Batch) Add(label string, p population.Params) {
	spec := Spec{Index: b.count, Label: label, Params: p}
	b.mapper.NewEntity(&spec, &Outcome{})
	b.count++
}

// Len returns the number of scenarios in the batch.
func (b *Batch) Len() int {
	return b.count
}

// Run executes every scenario that has not run yet and returns all results
// in insertion order. A failing scenario records its error and does not
// stop the others.
func (b *Batch) Run() []Result {
	results := make([]Result, 0, b.count)

	query := b.filter.Query()
	for query.Next() {
		spec, out := query.Get()
		if !out.Done {
			execute(spec, out)
		}
		results = append(results, Result{
			Label:      spec.Label,
			Params:     spec.Params,
			Trajectory: out.Trajectory,
			Summary:    out.Summary,
			Err:        out.Err,
			Elapsed:    out.Elapsed,
			index:      spec.Index,
		})
	}

	// Query order follows archetype storage, not insertion.
	sort.Slice(results, func(i, j int) bool {
		return results[i].index < results[j].index
	})
	return results
}

func execute(spec *Spec, out *Outcome) {
	start := time.Now()
	tr, err := population.Run(spec.Params)
	out.Elapsed = time.Since(start)
	out.Done = true
	if err != nil {
		out.Err = fmt.Errorf("scenario %q: %w", spec.Label, err)
		return
	}
	out.Trajectory = tr
	out.Summary = telemetry.Summarize(tr)
	out.Summary.Run = spec.Label
	out.Summary.Policy = spec.Params.Policy.String()
}
