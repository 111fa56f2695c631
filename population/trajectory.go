package population

// Point is one sample of a trajectory.
type Point struct {
	Time       int     `csv:"time"`
	Population float64 `csv:"population"`
}

// Trajectory is the immutable result of a run: times 0..T in order.
type Trajectory struct {
	points []Point
}

// Len returns the number of points (TimeSteps + 1 for a completed run).
func (tr Trajectory) Len() int {
	return len(tr.points)
}

// At returns the i-th point. Panics if i is out of range.
func (tr Trajectory) At(i int) Point {
	return tr.points[i]
}

// Final returns the last point, or the zero Point for an empty trajectory.
func (tr Trajectory) Final() Point {
	if len(tr.points) == 0 {
		return Point{}
	}
	return tr.points[len(tr.points)-1]
}

// Points returns a copy of all points.
func (tr Trajectory) Points() []Point {
	out := make([]Point, len(tr.points))
	copy(out, tr.points)
	return out
}

// Populations returns a copy of the population column.
func (tr Trajectory) Populations() []float64 {
	out := make([]float64, len(tr.points))
	for i, p := range tr.points {
		out[i] = p.Population
	}
	return out
}

// Times returns a copy of the time column.
func (tr Trajectory) Times() []int {
	out := make([]int, len(tr.points))
	for i, p := range tr.points {
		out[i] = p.Time
	}
	return out
}
