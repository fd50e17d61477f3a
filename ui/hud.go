package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evosim/systems"
	"github.com/pthm-cable/evosim/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title     string
	Creatures int
	Food      int
	Hungry    int
	Tick      int32
	SimTime   float64
	Speed     int
	FPS       int32
	Paused    bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// FPSColor grades a frame rate: red at 10 or below, orange at 30 or below,
// green otherwise.
func FPSColor(fps int32) rl.Color {
	switch {
	case fps <= 10:
		return rl.Red
	case fps <= 30:
		return rl.Orange
	default:
		return rl.Green
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Creatures: %d (hungry %d) | Food: %d", data.Creatures, data.Hungry, data.Food),
		10, 35, 16, rl.LightGray,
	)

	rl.DrawText(
		fmt.Sprintf("Tick: %d (%.2fs) | Speed: %dx", data.Tick, data.SimTime, data.Speed),
		10, 55, 16, rl.LightGray,
	)
	fps := fmt.Sprintf("FPS: %d", data.FPS)
	rl.DrawText(fps, int32(rl.GetScreenWidth())-rl.MeasureText(fps, 16)-10, 10, 16, FPSColor(data.FPS))

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 75, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the tick phase timing panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, registry *systems.SystemRegistry) {
	x := p.x
	y := p.y

	rl.DrawText("Tick Phases", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Step: %s  (%.0f ticks/s)", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond),
		x, y, 14, rl.Yellow)
	y += 16

	for _, info := range registry.All() {
		pct := stats.PhasePct[info.ID]

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-12s %8s %5.1f%%", info.Name, stats.PhaseAvg[info.ID].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}

// StatsPanel renders the most recent telemetry window.
type StatsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewStatsPanel creates a new window stats panel.
func NewStatsPanel(x, y, width int32) *StatsPanel {
	return &StatsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (s *StatsPanel) SetPosition(x, y int32) {
	s.x = x
	s.y = y
}

// Draw renders the window stats panel.
func (s *StatsPanel) Draw(stats telemetry.WindowStats) int32 {
	r := s.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	panelHeight := lineHeight*8 + padding*2
	r.DrawPanel(s.x, s.y, s.width, panelHeight)

	x := s.x + padding
	y := s.y + padding

	rl.DrawText("Window Stats", x, y, 14, rl.White)
	y += lineHeight + 2

	y = r.DrawLabelValue(x, y, "Window end", fmt.Sprintf("%d (%.1fs)", stats.WindowEndTick, stats.SimTimeSec))
	y = r.DrawLabelValue(x, y, "Hunger", fmt.Sprintf("%.1f +/- %.1f", stats.HungerMean, stats.HungerStd))
	y = r.DrawLabelValue(x, y, "Hunger p10/50/90",
		fmt.Sprintf("%.0f / %.0f / %.0f", stats.HungerP10, stats.HungerP50, stats.HungerP90))
	y = r.DrawLabelValue(x, y, "Speed", fmt.Sprintf("%.2f avg, %.2f max", stats.SpeedMean, stats.SpeedMax))
	y = r.DrawLabelValue(x, y, "Total food", fmt.Sprintf("%.1f", stats.TotalFood))
	y = r.DrawLabelValue(x, y, "Arrivals", fmt.Sprintf("%d", stats.Arrivals))
	y = r.DrawLabelValue(x, y, "Boundary", fmt.Sprintf("%d pushes", stats.BoundaryPushes))

	return y
}
