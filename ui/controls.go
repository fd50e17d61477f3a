package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evosim/world"
)

// Slider ranges for the live parameter controls.
const (
	PaddingMin, PaddingMax   = 0, 100
	DampingMin, DampingMax   = 0, 2
	TimestepMin, TimestepMax = 0.001, 0.05
	SpeedMin, SpeedMax       = 1, 50
)

// ControlState is what the control panel shows and edits.
type ControlState struct {
	Params world.Params
	Speed  int
	Paused bool
}

// ControlResult reports the user's edits for one frame.
type ControlResult struct {
	Params        world.Params
	ParamsChanged bool
	Speed         int
	TogglePause   bool
	Reset         bool
}

// ControlsPanel renders sliders for the world parameters and buttons for
// pause and reset.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) {
	c.visible = visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Height returns the panel height.
func (c *ControlsPanel) Height() int32 {
	return 4*38 + 30 + c.renderer.Theme.Padding*3 + c.renderer.Theme.LineHeight
}

// Contains reports whether a screen point lies on the panel.
func (c *ControlsPanel) Contains(sx, sy float32) bool {
	return c.visible && sx >= float32(c.x) && sx <= float32(c.x+c.width) &&
		sy >= float32(c.y) && sy <= float32(c.y+c.Height())
}

// Draw renders the controls panel and returns the edits made this frame.
func (c *ControlsPanel) Draw(state ControlState) ControlResult {
	res := ControlResult{Params: state.Params, Speed: state.Speed}
	if !c.visible {
		return res
	}

	r := c.renderer
	padding := r.Theme.Padding
	r.DrawPanel(c.x, c.y, c.width, c.Height())

	x := float32(c.x + padding)
	y := float32(c.y + padding)
	sliderW := float32(c.width - padding*2 - 70)

	rl.DrawText("Parameters", int32(x), int32(y), 16, rl.White)
	y += float32(r.Theme.LineHeight) + 6

	slider := func(label, format string, value, lo, hi float32) float32 {
		rl.DrawText(label, int32(x), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
		v := gui.SliderBar(
			rl.Rectangle{X: x, Y: y + 14, Width: sliderW, Height: 16},
			"", "",
			value, lo, hi,
		)
		rl.DrawText(fmt.Sprintf(format, v), int32(x+sliderW+8), int32(y+15), r.Theme.FontSize, r.Theme.ValueColor)
		y += 38
		return v
	}

	p := state.Params
	padding32 := slider("Padding", "%.1f", float32(p.Padding), PaddingMin, PaddingMax)
	damping32 := slider("Damping", "%.2f", float32(p.Damping), DampingMin, DampingMax)
	timestep32 := slider("Timestep", "%.3f", float32(p.Timestep), TimestepMin, TimestepMax)
	speed32 := slider("Steps / frame", "%.0f", float32(state.Speed), SpeedMin, SpeedMax)

	if padding32 != float32(p.Padding) {
		res.Params.Padding = float64(padding32)
		res.ParamsChanged = true
	}
	if damping32 != float32(p.Damping) {
		res.Params.Damping = float64(damping32)
		res.ParamsChanged = true
	}
	if timestep32 != float32(p.Timestep) {
		res.Params.Timestep = float64(timestep32)
		res.ParamsChanged = true
	}
	res.Speed = max(1, int(speed32+0.5))

	pauseText := "Pause"
	if state.Paused {
		pauseText = "Resume"
	}
	btnW := (float32(c.width) - float32(padding)*3) / 2
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: btnW, Height: 24}, pauseText) {
		res.TogglePause = true
	}
	if gui.Button(rl.Rectangle{X: x + btnW + float32(padding), Y: y, Width: btnW, Height: 24}, "Reset") {
		res.Reset = true
	}

	return res
}
