// Package ui renders the simulator window: the parameter form, the
// Simulate and Clear buttons, and the population plot.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	Background     rl.Color
	PanelBg        rl.Color
	PanelBorder    rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	AxisColor      rl.Color
	GridColor      rl.Color
	ErrorBg        rl.Color
	ErrorText      rl.Color
	SeriesColors   []rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	FieldWidth     int32
	FieldHeight    int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
	LineThickness  float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:  rl.RayWhite,
		PanelBg:     rl.Color{R: 245, G: 245, B: 245, A: 255},
		PanelBorder: rl.Color{R: 190, G: 190, B: 190, A: 255},
		LabelColor:  rl.DarkGray,
		ValueColor:  rl.Black,
		AxisColor:   rl.Color{R: 60, G: 60, B: 60, A: 255},
		GridColor:   rl.Color{R: 225, G: 225, B: 225, A: 255},
		ErrorBg:     rl.Color{R: 250, G: 225, B: 225, A: 255},
		ErrorText:   rl.Color{R: 170, G: 30, B: 30, A: 255},
		SeriesColors: []rl.Color{
			{R: 31, G: 119, B: 180, A: 255},
			{R: 255, G: 127, B: 14, A: 255},
			{R: 44, G: 160, B: 44, A: 255},
			{R: 214, G: 39, B: 40, A: 255},
			{R: 148, G: 103, B: 189, A: 255},
		},
		Padding:        10,
		LineHeight:     28,
		LabelWidth:     190,
		FieldWidth:     160,
		FieldHeight:    24,
		FontSize:       14,
		HeaderFontSize: 16,
		TitleFontSize:  22,
		LineThickness:  2,
	}
}

// SeriesColor returns the palette color for the i-th series.
func (t Theme) SeriesColor(i int) rl.Color {
	return t.SeriesColors[i%len(t.SeriesColors)]
}
