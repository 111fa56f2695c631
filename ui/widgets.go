package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawLabel draws a text label.
func (r *Renderer) DrawLabel(x, y int32, text string) {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.LabelColor)
}

// DrawCentered draws text horizontally centered on cx.
func (r *Renderer) DrawCentered(text string, cx, y, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, y, size, color)
}

// DrawVertical draws text rotated 90 degrees counter-clockwise, centered on (cx, cy).
func (r *Renderer) DrawVertical(text string, cx, cy float32, size int32, color rl.Color) {
	font := rl.GetFontDefault()
	spacing := float32(size) / 10
	dim := rl.MeasureTextEx(font, text, float32(size), spacing)
	rl.DrawTextPro(font, text,
		rl.Vector2{X: cx, Y: cy},
		rl.Vector2{X: dim.X / 2, Y: dim.Y / 2},
		-90, float32(size), spacing, color)
}

// DrawBanner draws a one-line message box, used for input errors.
func (r *Renderer) DrawBanner(x, y, width int32, text string) int32 {
	h := r.Theme.FontSize + r.Theme.Padding
	rl.DrawRectangle(x, y, width, h, r.Theme.ErrorBg)
	rl.DrawRectangleLines(x, y, width, h, r.Theme.ErrorText)
	rl.DrawText(text, x+r.Theme.Padding/2, y+r.Theme.Padding/2, r.Theme.FontSize, r.Theme.ErrorText)
	return y + h
}
