package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/logistic/config"
	"github.com/pthm-cable/logistic/population"
	"github.com/pthm-cable/logistic/scenario"
	"github.com/pthm-cable/logistic/telemetry"
	"github.com/pthm-cable/logistic/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	compare := flag.Bool("compare", false, "Headless: run every configured harvest policy on the same parameters")
	logStats := flag.Bool("log-stats", false, "Log every trajectory point via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")

	// Parameter overrides (applied only when set)
	n0 := flag.Float64("n0", 0, "Initial population")
	k := flag.Float64("k", 0, "Carrying capacity")
	r := flag.Float64("r", 0, "Intrinsic growth rate")
	steps := flag.Int("t", 0, "Number of time steps")
	policy := flag.String("policy", "", "Harvest policy: none, constant, periodic, proportional")
	harvest := flag.Float64("harvest", 0, "Harvest amount (constant and periodic policies)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	params, err := cfg.Params()
	if err != nil {
		slog.Error("invalid simulation config", "error", err)
		os.Exit(1)
	}

	var policyErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n0":
			params.InitialPopulation = *n0
		case "k":
			params.CarryingCapacity = *k
		case "r":
			params.GrowthRate = *r
		case "t":
			params.TimeSteps = *steps
		case "policy":
			params.Policy, policyErr = population.ParseHarvestPolicy(*policy)
		case "harvest":
			params.HarvestAmount = *harvest
		}
	})
	if policyErr != nil {
		slog.Error("invalid -policy", "error", policyErr)
		os.Exit(1)
	}
	cfg.SetParams(params)

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	if !*headless {
		ui.NewApp(cfg, params, output).Run()
		return
	}

	slog.Info("starting headless simulation", "params", params, "compare", *compare)

	batch := scenario.NewBatch()
	if *compare {
		batch = scenario.ForPolicies(params, cfg.Derived.ComparePolicies)
	} else {
		batch.Add(params.Policy.String(), params)
	}

	failed := false
	for _, res := range batch.Run() {
		if res.Err != nil {
			slog.Error("simulation failed", "run", res.Label, "error", res.Err)
			failed = true
			continue
		}
		report(cfg, output, res, *logStats)
	}
	if failed {
		output.Close()
		os.Exit(1)
	}
}

// report logs one result and writes it to the output directory.
func report(cfg *config.Config, output *telemetry.OutputManager, res scenario.Result, logStats bool) {
	if logStats {
		for _, p := range res.Trajectory.Points() {
			slog.Info("step", "run", res.Label, "time", p.Time, "population", p.Population)
		}
	}

	res.Summary.LogStats()
	slog.Debug("run timing", "run", res.Label, "elapsed", res.Elapsed)

	detector := telemetry.NewBookmarkDetector(res.Params.CarryingCapacity,
		cfg.Telemetry.CapacityTolerance, cfg.Telemetry.CollapseDropFraction)
	for _, b := range detector.Scan(res.Trajectory) {
		b.Run = res.Label
		b.LogBookmark()
		if err := output.WriteBookmark(b); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}

	if err := output.WriteTrajectory(res.Label, res.Trajectory); err != nil {
		slog.Error("failed to write trajectory", "error", err)
	}
	if err := output.WriteSummary(res.Summary); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
}
