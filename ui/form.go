package ui

import (
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/logistic/population"
	"github.com/pthm-cable/logistic/view"
)

// Action is a button press reported by the form panel.
type Action int

const (
	ActionNone Action = iota
	ActionSimulate
	ActionCompare
	ActionClear
)

const maxFieldChars = 24

// FormPanel renders the parameter inputs and the action buttons.
type FormPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32

	editing      view.Field // field with keyboard focus, -1 for none
	dropdownOpen bool
	policyItems  string
}

// NewFormPanel creates a form panel anchored at (x, y).
func NewFormPanel(x, y, width int32) *FormPanel {
	labels := make([]string, len(population.Policies))
	for i, p := range population.Policies {
		labels[i] = p.Label()
	}
	return &FormPanel{
		renderer:    NewRenderer(),
		x:           x,
		y:           y,
		width:       width,
		editing:     -1,
		policyItems: strings.Join(labels, ";"),
	}
}

// Height returns the vertical space the panel occupies.
func (fp *FormPanel) Height() int32 {
	t := fp.renderer.Theme
	return t.LineHeight*5 + t.Padding*3
}

// Draw renders the form and returns the button pressed this frame, if any.
func (fp *FormPanel) Draw(form *view.Form) Action {
	t := fp.renderer.Theme
	pad := t.Padding
	colW := fp.width / 2

	gui.GroupBox(rect(fp.x, fp.y, fp.width, t.LineHeight*3+pad*2), "Model Parameters")

	// Two inputs per row, like the parameter grid of the original form.
	rowY := fp.y + pad + 4
	for i, f := range view.Fields[:4] {
		cx := fp.x + pad + int32(i%2)*colW
		cy := rowY + int32(i/2)*t.LineHeight
		fp.drawField(form, f, cx, cy, true)
	}

	policyY := rowY + 2*t.LineHeight
	fp.renderer.DrawLabel(fp.x+pad, policyY+5, "Harvest Type")
	amountX := fp.x + pad + colW
	fp.drawField(form, view.FieldHarvestAmount, amountX, policyY, form.HarvestAmountEnabled())

	// Buttons
	buttonY := fp.y + t.LineHeight*3 + pad*3
	action := ActionNone
	if gui.Button(rect(fp.x+pad, buttonY, 110, t.FieldHeight+4), "Simulate") {
		action = ActionSimulate
	}
	if gui.Button(rect(fp.x+pad+120, buttonY, 110, t.FieldHeight+4), "Compare") {
		action = ActionCompare
	}
	if gui.Button(rect(fp.x+pad+240, buttonY, 110, t.FieldHeight+4), "Clear") {
		action = ActionClear
	}

	// Dropdown last so its open list draws over the widgets below it.
	active := int32(form.Policy)
	if gui.DropdownBox(rect(fp.x+pad+t.LabelWidth, policyY, t.FieldWidth, t.FieldHeight), fp.policyItems, &active, fp.dropdownOpen) {
		fp.dropdownOpen = !fp.dropdownOpen
	}
	if population.HarvestPolicy(active).Valid() {
		form.Policy = population.HarvestPolicy(active)
	}

	if action == ActionClear {
		fp.editing = -1
		fp.dropdownOpen = false
	}
	return action
}

func (fp *FormPanel) drawField(form *view.Form, f view.Field, x, y int32, enabled bool) {
	t := fp.renderer.Theme
	fp.renderer.DrawLabel(x, y+5, f.Label())

	if !enabled {
		gui.Disable()
		defer gui.Enable()
		if fp.editing == f {
			fp.editing = -1
		}
	}

	bounds := rect(x+t.LabelWidth, y, t.FieldWidth, t.FieldHeight)
	if gui.TextBox(bounds, form.TextPtr(f), maxFieldChars, fp.editing == f) && enabled {
		if fp.editing == f {
			fp.editing = -1
		} else {
			fp.editing = f
		}
	}
}

func rect(x, y, w, h int32) rl.Rectangle {
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
}
