package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"
)

// handleInput processes keyboard and mouse input.
func (a *App) handleInput() {
	a.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		a.sim.TogglePause()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.reset()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) {
		a.sim.SetStepsPerUpdate(a.sim.StepsPerUpdate() - 1)
	}
	if rl.IsKeyPressed(rl.KeyPeriod) {
		a.sim.SetStepsPerUpdate(a.sim.StepsPerUpdate() + 1)
	}

	if key := rl.GetKeyPressed(); key != 0 {
		a.overlays.HandleKeyPress(key)
	}

	a.handleCameraInput()
	a.handleSelection()
}

// handleResize checks for window resize and propagates new dimensions.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == a.screenWidth && h == a.screenHeight {
		return
	}
	a.screenWidth = w
	a.screenHeight = h

	a.camera.Resize(w, h)
	a.inspPanel.SetPosition(int32(w)-a.inspPanel.Width()-10, 40)
	a.sim.SetWindowSize(float64(w), float64(h))
}

// handleCameraInput processes camera pan/zoom controls.
func (a *App) handleCameraInput() {
	// Pan speed is constant in screen space
	panSpeed := float32(8.0) / a.camera.Zoom

	if rl.IsKeyDown(rl.KeyRight) {
		a.camera.Pan(panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		a.camera.Pan(-panSpeed, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		a.camera.Pan(0, panSpeed)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		a.camera.Pan(0, -panSpeed)
	}

	if wheelMove := rl.GetMouseWheelMove(); wheelMove != 0 {
		a.camera.ZoomBy(1 + wheelMove*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		a.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		a.camera.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		a.camera.Reset()
	}
}

// handleSelection picks or clears the inspected entity.
func (a *App) handleSelection() {
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) || rl.IsKeyPressed(rl.KeyEscape) {
		a.inspector.Deselect()
		return
	}
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}

	mouse := rl.GetMousePosition()
	if a.controls.Contains(mouse.X, mouse.Y) {
		return
	}
	if sections, ok := a.inspector.Sections(a.sim.World()); ok &&
		a.inspPanel.Contains(mouse.X, mouse.Y, a.inspPanel.Height(sections)) {
		return
	}

	wx, wy := a.camera.ScreenToWorld(mouse.X, mouse.Y)
	a.inspector.Select(a.sim.World(), r2.Vec{X: float64(wx), Y: float64(wy)})
}
