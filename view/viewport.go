package view

// Viewport maps data coordinates (time, population) onto a screen rectangle.
// Screen y grows downward, data y grows upward.
type Viewport struct {
	// Screen rectangle
	X, Y, W, H float32

	// Data bounds
	MinX, MaxX float64
	MinY, MaxY float64
}

// DataToScreen converts a data point to screen coordinates.
func (v Viewport) DataToScreen(dx, dy float64) (sx, sy float32) {
	sx = v.X + float32(ratio(dx, v.MinX, v.MaxX))*v.W
	sy = v.Y + v.H - float32(ratio(dy, v.MinY, v.MaxY))*v.H
	return sx, sy
}

// ScreenToData converts screen coordinates back to data coordinates.
func (v Viewport) ScreenToData(sx, sy float32) (dx, dy float64) {
	fx := float64((sx - v.X) / v.W)
	fy := float64((v.Y + v.H - sy) / v.H)
	dx = v.MinX + fx*(v.MaxX-v.MinX)
	dy = v.MinY + fy*(v.MaxY-v.MinY)
	return dx, dy
}

// Contains returns true if the screen point lies inside the plot area.
func (v Viewport) Contains(sx, sy float32) bool {
	return sx >= v.X && sx <= v.X+v.W && sy >= v.Y && sy <= v.Y+v.H
}

func ratio(val, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (val - lo) / (hi - lo)
}
