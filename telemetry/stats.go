// Package telemetry summarizes trajectories, detects notable moments and
// writes experiment output.
package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/logistic/population"
)

// Summary holds aggregated statistics of one trajectory.
type Summary struct {
	Run        string  `csv:"run"`
	Policy     string  `csv:"policy"`
	Steps      int     `csv:"steps"`
	Initial    float64 `csv:"initial"`
	Final      float64 `csv:"final"`
	Peak       float64 `csv:"peak"`
	PeakTime   int     `csv:"peak_time"`
	Trough     float64 `csv:"trough"`
	TroughTime int     `csv:"trough_time"`
	Mean       float64 `csv:"mean"`
	StdDev     float64 `csv:"std_dev"`
	P10        float64 `csv:"p10"`
	P50        float64 `csv:"p50"`
	P90        float64 `csv:"p90"`

	// Extinct means the run ended at zero. ExtinctionTime is the first
	// step at zero, -1 if it never got there.
	Extinct        bool `csv:"extinct"`
	ExtinctionTime int  `csv:"extinction_time"`
}

// Summarize computes summary statistics for tr. Run and Policy are left for
// the caller to fill in.
//
// A run that overflowed holds +Inf points. Peak and Final report them as is,
// while Mean, StdDev and the percentiles are taken over the finite points
// only and stay 0 when there are none. StdDev is +Inf when the spread of the
// finite points is too large to represent.
func Summarize(tr population.Trajectory) Summary {
	s := Summary{ExtinctionTime: -1}
	n := tr.Len()
	if n == 0 {
		return s
	}

	pops := tr.Populations()
	s.Steps = n - 1
	s.Initial = pops[0]
	s.Final = pops[n-1]

	peak := floats.MaxIdx(pops)
	trough := floats.MinIdx(pops)
	s.Peak, s.PeakTime = pops[peak], peak
	s.Trough, s.TroughTime = pops[trough], trough

	finite := make([]float64, 0, n)
	for _, v := range pops {
		if !math.IsInf(v, 0) {
			finite = append(finite, v)
		}
	}
	if len(finite) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(finite, nil)
		if math.IsNaN(s.StdDev) {
			s.StdDev = math.Inf(1)
		}
	} else if len(finite) == 1 {
		s.Mean = finite[0]
	}

	if len(finite) > 0 {
		sort.Float64s(finite)
		s.P10 = stat.Quantile(0.10, stat.Empirical, finite, nil)
		s.P50 = stat.Quantile(0.50, stat.Empirical, finite, nil)
		s.P90 = stat.Quantile(0.90, stat.Empirical, finite, nil)
	}

	for t, v := range pops {
		if v == 0 {
			s.ExtinctionTime = t
			break
		}
	}
	s.Extinct = s.Final == 0

	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("run", s.Run),
		slog.String("policy", s.Policy),
		slog.Int("steps", s.Steps),
		slog.Float64("initial", s.Initial),
		slog.Float64("final", s.Final),
		slog.Float64("peak", s.Peak),
		slog.Int("peak_time", s.PeakTime),
		slog.Float64("trough", s.Trough),
		slog.Int("trough_time", s.TroughTime),
		slog.Float64("mean", s.Mean),
		slog.Float64("std_dev", s.StdDev),
		slog.Float64("p10", s.P10),
		slog.Float64("p50", s.P50),
		slog.Float64("p90", s.P90),
		slog.Bool("extinct", s.Extinct),
		slog.Int("extinction_time", s.ExtinctionTime),
	)
}

// LogStats logs the summary using slog.
func (s Summary) LogStats() {
	slog.Info("summary", "stats", s)
}
