package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/logistic/config"
	"github.com/pthm-cable/logistic/view"
)

// PlotPanel draws a view.Chart as a line plot with axes, grid and legend.
type PlotPanel struct {
	renderer *Renderer
	margins  config.PlotConfig
}

// NewPlotPanel creates a plot panel using the margins of pc.
func NewPlotPanel(pc config.PlotConfig) *PlotPanel {
	return &PlotPanel{renderer: NewRenderer(), margins: pc}
}

// Draw renders the chart into the given screen rectangle.
func (pp *PlotPanel) Draw(chart *view.Chart, x, y, w, h int32) {
	r := pp.renderer
	t := r.Theme
	r.DrawPanel(x, y, w, h)

	r.DrawCentered(chart.Title, x+w/2, y+t.Padding, t.TitleFontSize, t.ValueColor)
	if chart.Empty() {
		return
	}

	m := pp.margins
	vp := chart.Viewport(
		float32(x)+float32(m.MarginLeft),
		float32(y)+float32(m.MarginTop),
		float32(w)-float32(m.MarginLeft+m.MarginRight),
		float32(h)-float32(m.MarginTop+m.MarginBottom),
	)

	pp.drawGrid(chart, vp)
	pp.drawSeries(chart, vp)
	pp.drawAxes(chart, vp)
	pp.drawLegend(chart, vp)
	pp.drawHover(chart, vp)
}

func (pp *PlotPanel) drawGrid(chart *view.Chart, vp view.Viewport) {
	t := pp.renderer.Theme
	for _, tick := range chart.XTicks() {
		sx, _ := vp.DataToScreen(tick.Value, 0)
		rl.DrawLineV(rl.Vector2{X: sx, Y: vp.Y}, rl.Vector2{X: sx, Y: vp.Y + vp.H}, t.GridColor)
		pp.renderer.DrawCentered(tick.Label, int32(sx), int32(vp.Y+vp.H)+6, t.FontSize-2, t.LabelColor)
	}
	for _, tick := range chart.YTicks() {
		_, sy := vp.DataToScreen(0, tick.Value)
		rl.DrawLineV(rl.Vector2{X: vp.X, Y: sy}, rl.Vector2{X: vp.X + vp.W, Y: sy}, t.GridColor)
		lw := rl.MeasureText(tick.Label, t.FontSize-2)
		rl.DrawText(tick.Label, int32(vp.X)-lw-6, int32(sy)-(t.FontSize-2)/2, t.FontSize-2, t.LabelColor)
	}
}

func (pp *PlotPanel) drawSeries(chart *view.Chart, vp view.Viewport) {
	t := pp.renderer.Theme
	for i, s := range chart.Series() {
		color := t.SeriesColor(i)
		for j := 1; j < len(s.Points); j++ {
			x0, y0 := vp.DataToScreen(float64(s.Points[j-1].Time), s.Points[j-1].Population)
			x1, y1 := vp.DataToScreen(float64(s.Points[j].Time), s.Points[j].Population)
			rl.DrawLineEx(rl.Vector2{X: x0, Y: y0}, rl.Vector2{X: x1, Y: y1}, t.LineThickness, color)
		}
		if len(s.Points) == 1 {
			x0, y0 := vp.DataToScreen(float64(s.Points[0].Time), s.Points[0].Population)
			rl.DrawCircleV(rl.Vector2{X: x0, Y: y0}, t.LineThickness*1.5, color)
		}
	}
}

func (pp *PlotPanel) drawAxes(chart *view.Chart, vp view.Viewport) {
	r := pp.renderer
	t := r.Theme
	rl.DrawRectangleLinesEx(rl.Rectangle{X: vp.X, Y: vp.Y, Width: vp.W, Height: vp.H}, 1, t.AxisColor)

	r.DrawCentered(chart.XLabel, int32(vp.X+vp.W/2), int32(vp.Y+vp.H)+26, t.HeaderFontSize, t.ValueColor)
	r.DrawVertical(chart.YLabel, vp.X-float32(pp.margins.MarginLeft)+14, vp.Y+vp.H/2, t.HeaderFontSize, t.ValueColor)
}

func (pp *PlotPanel) drawLegend(chart *view.Chart, vp view.Viewport) {
	t := pp.renderer.Theme
	series := chart.Series()

	var width int32
	for _, s := range series {
		if w := rl.MeasureText(s.Label, t.FontSize); w > width {
			width = w
		}
	}
	width += 40
	height := int32(len(series))*(t.FontSize+6) + 8

	x := int32(vp.X+vp.W) - width - 8
	y := int32(vp.Y) + 8
	rl.DrawRectangle(x, y, width, height, rl.Fade(rl.White, 0.9))
	rl.DrawRectangleLines(x, y, width, height, t.PanelBorder)

	for i, s := range series {
		ly := y + 4 + int32(i)*(t.FontSize+6)
		rl.DrawLineEx(
			rl.Vector2{X: float32(x + 6), Y: float32(ly + t.FontSize/2)},
			rl.Vector2{X: float32(x + 26), Y: float32(ly + t.FontSize/2)},
			t.LineThickness, t.SeriesColor(i))
		rl.DrawText(s.Label, x+32, ly, t.FontSize, t.ValueColor)
	}
}

// drawHover shows the value of the first series under the mouse cursor.
func (pp *PlotPanel) drawHover(chart *view.Chart, vp view.Viewport) {
	mouse := rl.GetMousePosition()
	if !vp.Contains(mouse.X, mouse.Y) {
		return
	}
	t := pp.renderer.Theme
	dt, _ := vp.ScreenToData(mouse.X, mouse.Y)
	p, ok := chart.Nearest(0, dt)
	if !ok {
		return
	}
	sx, sy := vp.DataToScreen(float64(p.Time), p.Population)
	rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, 4, t.SeriesColor(0))
	text := fmt.Sprintf("t=%d  N=%.3f", p.Time, p.Population)
	rl.DrawText(text, int32(sx)+8, int32(sy)-t.FontSize-4, t.FontSize, t.ValueColor)
}
