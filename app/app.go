// Package app runs a simulation in a raylib window: it forwards input to the
// simulation and draws the world with its panels each frame.
package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evosim/camera"
	"github.com/pthm-cable/evosim/game"
	"github.com/pthm-cable/evosim/inspector"
	"github.com/pthm-cable/evosim/renderer"
	"github.com/pthm-cable/evosim/ui"
)

const (
	panelWidth = 260
	title      = "evosim"
)

// App owns the presentation state of a windowed run.
type App struct {
	sim *game.Simulation

	camera    *camera.Camera
	world     *renderer.WorldRenderer
	inspector *inspector.Inspector
	overlays  *ui.OverlayRegistry

	hud        *ui.HUD
	controls   *ui.ControlsPanel
	inspPanel  *ui.InspectorPanel
	statsPanel *ui.StatsPanel
	perfPanel  *ui.PerfPanel

	screenWidth, screenHeight float32
}

// New creates the presentation for sim. The raylib window must already be
// open.
func New(sim *game.Simulation) *App {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	cam := camera.New(w, h, sim.World().Bounds())

	a := &App{
		sim:          sim,
		camera:       cam,
		world:        renderer.NewWorldRenderer(cam),
		inspector:    inspector.New(renderer.SelectRadius),
		overlays:     ui.NewOverlayRegistry(),
		hud:          ui.NewHUD(),
		controls:     ui.NewControlsPanel(10, 100, panelWidth),
		inspPanel:    ui.NewInspectorPanel(int32(w)-panelWidth-10, 40, panelWidth),
		statsPanel:   ui.NewStatsPanel(10, 100, panelWidth),
		perfPanel:    ui.NewPerfPanel(10, 100),
		screenWidth:  w,
		screenHeight: h,
	}
	sim.SetWindowSize(float64(w), float64(h))
	return a
}

// Update handles input and advances the simulation by one frame.
func (a *App) Update() {
	a.handleInput()
	a.sim.Update()
	a.sim.RecordFrame()
}

// Draw renders one frame.
func (a *App) Draw() {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	w := a.sim.World()
	opts := renderer.Options{
		Targets:  a.overlays.IsEnabled(ui.OverlayTargets),
		Padding:  a.overlays.IsEnabled(ui.OverlayPadding),
		Velocity: a.overlays.IsEnabled(ui.OverlayHeading),
	}
	opts.Selected, opts.HasSelection = a.inspector.Position(w)
	a.world.Draw(w, opts)

	a.drawUI()
}

func (a *App) drawUI() {
	w := a.sim.World()
	hungry := 0
	for _, c := range w.Creatures() {
		if c.Hunger <= c.HungerThreshold {
			hungry++
		}
	}
	a.hud.Draw(ui.HUDData{
		Title:     title,
		Creatures: w.NumCreatures(),
		Food:      w.NumFood(),
		Hungry:    hungry,
		Tick:      a.sim.Tick(),
		SimTime:   a.sim.SimTime(),
		Speed:     a.sim.StepsPerUpdate(),
		FPS:       rl.GetFPS(),
		Paused:    a.sim.Paused(),
	})
	a.hud.DrawControls(int32(a.screenHeight),
		"[Space] Pause  [R] Reset  [,/.] Speed  [Click] Inspect  "+a.overlays.Legend())

	// Left column stacks the enabled panels
	y := int32(100)
	if a.overlays.IsEnabled(ui.OverlayControls) {
		a.controls.SetVisible(true)
		a.controls.SetPosition(10, y)
		a.applyControls(a.controls.Draw(ui.ControlState{
			Params: w.Params(),
			Speed:  a.sim.StepsPerUpdate(),
			Paused: a.sim.Paused(),
		}))
		y += a.controls.Height() + 10
	} else {
		a.controls.SetVisible(false)
	}
	if a.overlays.IsEnabled(ui.OverlayStats) {
		a.statsPanel.SetPosition(10, y)
		y = a.statsPanel.Draw(a.sim.LastStats()) + 20
	}
	if a.overlays.IsEnabled(ui.OverlayPerf) {
		a.perfPanel.SetPosition(10, y)
		a.perfPanel.Draw(a.sim.Perf(), a.sim.Registry())
	}

	if sections, ok := a.inspector.Sections(w); ok {
		a.inspPanel.Draw(sections)
	}
}

// applyControls forwards control panel edits to the simulation.
func (a *App) applyControls(res ui.ControlResult) {
	if res.ParamsChanged {
		if err := a.sim.SetParams(res.Params); err != nil {
			game.Logf("rejected params: %v", err)
		}
	}
	if res.Speed != a.sim.StepsPerUpdate() {
		a.sim.SetStepsPerUpdate(res.Speed)
	}
	if res.TogglePause {
		a.sim.TogglePause()
	}
	if res.Reset {
		a.reset()
	}
}

func (a *App) reset() {
	if err := a.sim.Reset(); err != nil {
		game.Logf("reset failed: %v", err)
		return
	}
	a.inspector.Deselect()
}

// Unload releases presentation resources and closes telemetry output.
func (a *App) Unload() error {
	return a.sim.Close()
}
