package ui

import (
	"errors"
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/logistic/config"
	"github.com/pthm-cable/logistic/population"
	"github.com/pthm-cable/logistic/scenario"
	"github.com/pthm-cable/logistic/telemetry"
	"github.com/pthm-cable/logistic/view"
)

// App is the interactive simulator window.
type App struct {
	cfg    *config.Config
	output *telemetry.OutputManager

	form  view.Form
	chart *view.Chart

	formPanel *FormPanel
	plotPanel *PlotPanel
	renderer  *Renderer

	errMsg string
	runs   int
}

// NewApp creates the window state with the form prefilled from initial.
// output may be nil.
func NewApp(cfg *config.Config, initial population.Params, output *telemetry.OutputManager) *App {
	a := &App{
		cfg:       cfg,
		output:    output,
		chart:     view.NewChart(cfg.Plot),
		formPanel: NewFormPanel(10, 50, int32(cfg.Screen.Width)-20),
		plotPanel: NewPlotPanel(cfg.Plot),
		renderer:  NewRenderer(),
	}
	a.form.Fill(initial)
	return a
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(a.cfg.Screen.Width), int32(a.cfg.Screen.Height), "Logistic Growth Model Simulator")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(a.cfg.Screen.TargetFPS))

	for !rl.WindowShouldClose() {
		a.Draw()
	}
}

// Draw renders one frame and handles the button pressed in it.
func (a *App) Draw() {
	t := a.renderer.Theme
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	rl.BeginDrawing()
	defer rl.EndDrawing()
	rl.ClearBackground(t.Background)

	a.renderer.DrawCentered("Logistic Growth Model Simulator", w/2, t.Padding, t.TitleFontSize, t.ValueColor)

	plotY := 50 + a.formPanel.Height() + t.Padding
	if a.errMsg != "" {
		plotY = a.renderer.DrawBanner(10, plotY, w-20, a.errMsg) + t.Padding
	}
	a.plotPanel.Draw(a.chart, 10, plotY, w-20, h-plotY-10)

	// Form last: its dropdown list may overlap the plot.
	a.formPanel.width = w - 20
	switch a.formPanel.Draw(&a.form) {
	case ActionSimulate:
		a.Simulate()
	case ActionCompare:
		a.Compare()
	case ActionClear:
		a.Clear()
	}
}

// Simulate runs the engine with the form's parameters and replaces the plot.
func (a *App) Simulate() {
	p, err := a.form.Params()
	if err != nil {
		a.showError(err)
		return
	}
	tr, err := population.Run(p)
	if err != nil {
		a.showError(err)
		return
	}
	a.errMsg = ""
	a.chart.SetTrajectory(tr)

	a.runs++
	label := fmt.Sprintf("run-%d", a.runs)
	summary := telemetry.Summarize(tr)
	summary.Run = label
	summary.Policy = p.Policy.String()
	slog.Info("simulated", "params", p, "summary", summary)
	a.record(label, p, tr, summary)
}

// Compare runs every configured policy on the form's parameters and plots
// one line per policy.
func (a *App) Compare() {
	p, err := a.form.Params()
	if err != nil {
		a.showError(err)
		return
	}
	a.errMsg = ""
	a.chart.Clear()

	a.runs++
	results := scenario.ForPolicies(p, a.cfg.Derived.ComparePolicies).Run()
	for _, res := range results {
		if res.Err != nil {
			slog.Warn("comparison run failed", "run", res.Label, "error", res.Err)
			continue
		}
		a.chart.AddSeries(res.Params.Policy.Label(), res.Trajectory)
		label := fmt.Sprintf("run-%d-%s", a.runs, res.Label)
		res.Summary.Run = label
		a.record(label, res.Params, res.Trajectory, res.Summary)
	}
}

// Clear discards the form inputs and the plot. The engine holds no state.
func (a *App) Clear() {
	a.form.Clear()
	a.chart.Clear()
	a.errMsg = ""
}

func (a *App) showError(err error) {
	if errors.Is(err, population.ErrInvalidParameter) {
		a.errMsg = "Input Error: Please enter valid numerical values: " + err.Error()
	} else {
		a.errMsg = "Error: " + err.Error()
	}
	slog.Warn("simulation rejected", "error", err)
}

func (a *App) record(label string, p population.Params, tr population.Trajectory, s telemetry.Summary) {
	if a.output == nil {
		return
	}
	if err := a.output.WriteTrajectory(label, tr); err != nil {
		slog.Error("failed to write trajectory", "error", err)
	}
	if err := a.output.WriteSummary(s); err != nil {
		slog.Error("failed to write summary", "error", err)
	}
	for _, b := range telemetry.NewBookmarkDetector(p.CarryingCapacity, a.cfg.Telemetry.CapacityTolerance, a.cfg.Telemetry.CollapseDropFraction).Scan(tr) {
		b.Run = label
		if err := a.output.WriteBookmark(b); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}
