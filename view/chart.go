package view

import (
	"math"
	"strconv"

	"github.com/pthm-cable/logistic/config"
	"github.com/pthm-cable/logistic/population"
)

// Series is one labelled line of the chart.
type Series struct {
	Label  string
	Points []population.Point
}

// Tick is an axis tick position and its label.
type Tick struct {
	Value float64
	Label string
}

// Chart is the model behind the population line plot.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Legend string

	series   []Series
	ticks    int
	headroom float64
}

// NewChart creates an empty chart labelled from the plot config.
func NewChart(pc config.PlotConfig) *Chart {
	ticks := pc.Ticks
	if ticks < 1 {
		ticks = 5
	}
	return &Chart{
		Title:    pc.Title,
		XLabel:   pc.XLabel,
		YLabel:   pc.YLabel,
		Legend:   pc.Legend,
		ticks:    ticks,
		headroom: math.Max(pc.Headroom, 0),
	}
}

// SetTrajectory replaces all series with a single one labelled with the
// chart's legend text.
func (c *Chart) SetTrajectory(tr population.Trajectory) {
	c.series = []Series{{Label: c.Legend, Points: tr.Points()}}
}

// AddSeries appends a labelled trajectory, used for policy comparison.
func (c *Chart) AddSeries(label string, tr population.Trajectory) {
	c.series = append(c.series, Series{Label: label, Points: tr.Points()})
}

// Series returns the series currently plotted.
func (c *Chart) Series() []Series {
	return c.series
}

// Empty returns true if there is nothing to plot.
func (c *Chart) Empty() bool {
	return len(c.series) == 0
}

// Clear discards every series.
func (c *Chart) Clear() {
	c.series = nil
}

// Bounds returns the data range covered by the axes. x spans 0..maxTime,
// y spans 0..maxPopulation plus headroom. Degenerate ranges widen to 1.
func (c *Chart) Bounds() (minX, maxX, minY, maxY float64) {
	for _, s := range c.series {
		for _, p := range s.Points {
			if float64(p.Time) > maxX {
				maxX = float64(p.Time)
			}
			if !math.IsInf(p.Population, 0) && p.Population > maxY {
				maxY = p.Population
			}
		}
	}
	if maxX == 0 {
		maxX = 1
	}
	if maxY == 0 {
		maxY = 1
	} else {
		maxY *= 1 + c.headroom
	}
	return 0, maxX, 0, maxY
}

// Viewport returns the mapping of the current bounds onto a screen rectangle.
func (c *Chart) Viewport(x, y, w, h float32) Viewport {
	minX, maxX, minY, maxY := c.Bounds()
	return Viewport{X: x, Y: y, W: w, H: h, MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

// XTicks returns evenly spaced integer time ticks.
func (c *Chart) XTicks() []Tick {
	_, maxX, _, _ := c.Bounds()
	n := c.ticks
	if int(maxX) < n {
		n = int(maxX)
	}
	ticks := make([]Tick, 0, n+1)
	last := -1
	for i := 0; i <= n; i++ {
		v := int(math.Round(maxX * float64(i) / float64(n)))
		if v == last {
			continue
		}
		last = v
		ticks = append(ticks, Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}
	return ticks
}

// YTicks returns evenly spaced population ticks.
func (c *Chart) YTicks() []Tick {
	_, _, minY, maxY := c.Bounds()
	ticks := make([]Tick, 0, c.ticks+1)
	for i := 0; i <= c.ticks; i++ {
		v := minY + (maxY-minY)*float64(i)/float64(c.ticks)
		ticks = append(ticks, Tick{Value: v, Label: strconv.FormatFloat(v, 'f', decimals(maxY-minY), 64)})
	}
	return ticks
}

// Nearest returns the point of series s closest in time to t.
func (c *Chart) Nearest(s int, t float64) (population.Point, bool) {
	if s < 0 || s >= len(c.series) || len(c.series[s].Points) == 0 {
		return population.Point{}, false
	}
	pts := c.series[s].Points
	i := int(math.Round(t))
	if i < 0 {
		i = 0
	}
	if i >= len(pts) {
		i = len(pts) - 1
	}
	return pts[i], true
}

// decimals picks label precision from the axis span.
func decimals(span float64) int {
	switch {
	case span >= 100:
		return 0
	case span >= 1:
		return 1
	default:
		return 3
	}
}
