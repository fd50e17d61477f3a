// Package renderer draws the arena, food sources and creatures with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/camera"
	"github.com/pthm-cable/evosim/components"
	"github.com/pthm-cable/evosim/vmath"
	"github.com/pthm-cable/evosim/world"
)

// Sizes in world units.
const (
	MaxFoodRadius = 8.0
	CreatureSize  = 6.0
	SelectRadius  = 10.0
)

// Colors
var (
	ColorBackground = rl.Color{R: 18, G: 22, B: 28, A: 255}
	ColorArena      = rl.Color{R: 28, G: 34, B: 42, A: 255}
	ColorPadding    = rl.Color{R: 90, G: 60, B: 60, A: 255}
	ColorFood       = rl.Color{R: 90, G: 200, B: 110, A: 255}
	ColorFoodEmpty  = rl.Color{R: 60, G: 80, B: 60, A: 255}
	ColorTarget     = rl.Color{R: 255, G: 255, B: 255, A: 60}
	ColorVelocity   = rl.Color{R: 255, G: 200, B: 100, A: 200}
	ColorSelection  = rl.Color{R: 255, G: 255, B: 120, A: 255}
)

// Options selects the optional layers of a frame.
type Options struct {
	Targets      bool
	Padding      bool
	Velocity     bool
	Selected     r2.Vec
	HasSelection bool
}

// WorldRenderer draws a world through a camera.
type WorldRenderer struct {
	cam *camera.Camera
}

// NewWorldRenderer creates a renderer that draws through cam.
func NewWorldRenderer(cam *camera.Camera) *WorldRenderer {
	return &WorldRenderer{cam: cam}
}

// Camera returns the camera the renderer draws through.
func (r *WorldRenderer) Camera() *camera.Camera {
	return r.cam
}

// screen converts a world point to a raylib vector.
func (r *WorldRenderer) screen(p r2.Vec) rl.Vector2 {
	x, y := r.cam.WorldToScreen(float32(p.X), float32(p.Y))
	return rl.Vector2{X: x, Y: y}
}

// Draw renders one frame of w. The world is only read.
func (r *WorldRenderer) Draw(w *world.World, opts Options) {
	rl.ClearBackground(ColorBackground)
	r.drawArena(w.Bounds(), w.Params().Padding, opts.Padding)

	for _, f := range w.FoodSources() {
		if !r.cam.IsVisible(float32(f.Position.X), float32(f.Position.Y), MaxFoodRadius) {
			continue
		}
		color := ColorFood
		if f.Amount <= 0 {
			color = ColorFoodEmpty
		}
		radius := max(float32(f.Radius(MaxFoodRadius)), 1)
		rl.DrawCircleV(r.screen(f.Position), r.cam.Scale(radius), color)
	}

	for _, c := range w.Creatures() {
		if !r.cam.IsVisible(float32(c.Position.X), float32(c.Position.Y), CreatureSize) {
			continue
		}
		pos := r.screen(c.Position)

		if opts.Targets {
			if p, ok := w.Resolve(c.Target); ok {
				rl.DrawLineV(pos, r.screen(p), ColorTarget)
			}
		}
		if opts.Velocity && !vmath.IsZero(c.Velocity) {
			rl.DrawLineV(pos, r.screen(r2.Add(c.Position, r2.Scale(2, c.Velocity))), ColorVelocity)
		}
		r.drawCreature(pos, c)
	}

	if opts.HasSelection {
		rl.DrawCircleLines(int32(r.screen(opts.Selected).X), int32(r.screen(opts.Selected).Y),
			r.cam.Scale(SelectRadius), ColorSelection)
	}
}

// drawCreature draws a triangle pointing along the creature's facing.
func (r *WorldRenderer) drawCreature(pos rl.Vector2, c world.Creature) {
	color := colorOf(c.Color)
	if c.Hunger <= c.HungerThreshold {
		color = rl.ColorBrightness(color, -0.35)
	}
	rotation := float32(c.Facing * 180 / math.Pi)
	rl.DrawPoly(pos, 3, r.cam.Scale(CreatureSize), rotation, color)
}

// drawArena fills the arena and outlines the repulsion band.
func (r *WorldRenderer) drawArena(b world.Bounds, padding float64, showPadding bool) {
	x0, y0 := r.cam.WorldToScreen(float32(b.XMin), float32(b.YMin))
	x1, y1 := r.cam.WorldToScreen(float32(b.XMax), float32(b.YMax))
	rl.DrawRectangleRec(rl.Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, ColorArena)

	if !showPadding || padding <= 0 {
		return
	}
	p := r.cam.Scale(float32(padding))
	inner := rl.Rectangle{X: x0 + p, Y: y0 + p, Width: x1 - x0 - 2*p, Height: y1 - y0 - 2*p}
	if inner.Width > 0 && inner.Height > 0 {
		rl.DrawRectangleLinesEx(inner, 1, ColorPadding)
	}
}

func colorOf(c components.Color) rl.Color {
	if c.A == 0 {
		return rl.RayWhite
	}
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
