package game

import (
	"github.com/iburimskiy/rings-and-easings/internal/config"
	"github.com/iburimskiy/rings-and-easings/internal/easing"
	"github.com/iburimskiy/rings-and-easings/internal/gui"
)

var curveNames = easing.Names()

// updatePanel runs the parameter widgets and writes the edits back into
// g.params.
func (g *Game) updatePanel() {
	ui := g.ui
	p := &g.params
	before := *p

	// Easing selection
	ui.Label(gui.R(500, 25, 140, 10), "Timer Easing")
	p.TimerEasing = easing.Curve(ui.ComboBox(gui.R(650, 20, 140, 20), curveNames, int(p.TimerEasing)))

	ui.Label(gui.R(500, 50, 140, 10), "Render Easing I")
	p.ExpandEasing = easing.Curve(ui.ComboBox(gui.R(650, 45, 140, 20), curveNames, int(p.ExpandEasing)))

	ui.Label(gui.R(500, 75, 140, 10), "Render Easing II")
	p.ContractEasing = easing.Curve(ui.ComboBox(gui.R(650, 70, 140, 20), curveNames, int(p.ContractEasing)))

	// Timing
	p.Time = ui.Slider(gui.R(650, 120, 111, 20), "Start time", p.Time, config.TimeMin, config.TimeMax, true)
	p.MinDelay = ui.Slider(gui.R(650, 145, 111, 20), "Min Delay", p.MinDelay, config.MinDelayMin, config.MinDelayMax, true)
	p.MaxDelay = ui.Slider(gui.R(650, 170, 111, 20), "Max Delay", p.MaxDelay, config.MaxDelayMin, config.MaxDelayMax, true)

	// Colors
	p.Colors = ui.CheckBox(gui.R(705, 410, 20, 20), "Colors", p.Colors)
	if p.Colors {
		p.Hue = ui.Slider(gui.R(650, 210, 110, 20), "Hue", p.Hue, config.HueMin, config.HueMax, true)
		p.Saturation = ui.Slider(gui.R(650, 235, 110, 20), "Sat", p.Saturation, 0, 1, true)
		p.Value = ui.Slider(gui.R(650, 260, 110, 20), "Val", p.Value, 0, 1, true)
		p.Step = ui.Slider(gui.R(650, 285, 110, 20), "Step", p.Step, config.StepMin, config.StepMax, true)
	}
	if colorsChanged(&before, p) {
		g.anim.Recolor(p)
	}

	// Geometry
	ui.Label(gui.R(495, 325, 105, 10), "Min/Max")
	p.VisibleStart = ui.Spinner(gui.R(605, 320, 85, 20), p.VisibleStart, 0, config.RingCount-1)
	p.VisibleEnd = ui.Spinner(gui.R(705, 320, 85, 20), p.VisibleEnd, 0, config.RingCount-1)

	ui.Label(gui.R(495, 355, 105, 10), "Angle/Padding")
	p.Angle = ui.Spinner(gui.R(605, 350, 85, 20), p.Angle, config.AngleMin, config.AngleMax)
	p.Padding = ui.Spinner(gui.R(705, 350, 85, 20), p.Padding, config.PaddingMin, config.PaddingMax)

	ui.Label(gui.R(495, 385, 105, 10), "Size/Spacing")
	p.Size = ui.Spinner(gui.R(605, 380, 85, 20), p.Size, config.SizeMin, config.SizeMax)
	p.Spacing = ui.Spinner(gui.R(705, 380, 85, 20), p.Spacing, config.SpacingMin, config.SpacingMax)

	ui.Label(gui.R(495, 415, 105, 10), "Segments")
	p.Segments = ui.Spinner(gui.R(605, 410, 85, 20), p.Segments, config.SegmentsMin, config.SegmentsMax)

	// Actions
	if ui.Button(gui.R(20, 345, 100, 25), "Pick color") {
		if err := g.pickColor(); err != nil {
			g.fail(err)
		}
	}
	if ui.Button(gui.R(20, 380, 100, 30), "RESET") {
		g.reset()
	}

	p.DrawRings = ui.CheckBox(gui.R(20, 415, 20, 20), "Draw Rings", p.DrawRings)
	p.DrawLines = ui.CheckBox(gui.R(135, 415, 20, 20), "Draw Lines", p.DrawLines)
	p.Sound = ui.CheckBox(gui.R(250, 415, 20, 20), "Sound", p.Sound)
}
