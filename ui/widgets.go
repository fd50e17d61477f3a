package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evosim/inspector"
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

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawBar draws a bar filled to ratio in [0, 1] with text to its right.
func (r *Renderer) DrawBar(x, y int32, label, text string, ratio float32, width int32) int32 {
	ratio = min(max(ratio, 0), 1)

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 50

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, r.Theme.BarHeight, r.Theme.BarBg)

	fillColor := r.Theme.BarFill
	if ratio < 0.3 {
		fillColor = r.Theme.BarFillLow
	}
	fillWidth := int32(float32(barWidth) * ratio)
	rl.DrawRectangle(barX, y+2, fillWidth, r.Theme.BarHeight, fillColor)

	rl.DrawText(text, barX+barWidth+5, y, r.Theme.FontSize, r.Theme.ValueColor)

	return y + r.Theme.LineHeight + 2
}

// DrawAngle renders a compass-style angle indicator.
func (r *Renderer) DrawAngle(x, y int32, label string, radians float32) int32 {
	size := int32(28)
	centerX := x + r.Theme.LabelWidth + size/2
	centerY := y + size/2

	rl.DrawText(label+":", x, y+size/2-6, r.Theme.FontSize, r.Theme.LabelColor)

	rl.DrawCircle(centerX, centerY, float32(size/2), r.Theme.AngleBg)
	rl.DrawCircleLines(centerX, centerY, float32(size/2), r.Theme.LabelColor)

	needleLen := float32(size/2 - 3)
	endX := float32(centerX) + needleLen*float32(math.Cos(float64(radians)))
	endY := float32(centerY) + needleLen*float32(math.Sin(float64(radians)))
	rl.DrawLineEx(
		rl.Vector2{X: float32(centerX), Y: float32(centerY)},
		rl.Vector2{X: endX, Y: endY},
		2,
		r.Theme.AngleNeedle,
	)

	degrees := radians * 180 / math.Pi
	rl.DrawText(fmt.Sprintf("%.0f deg", degrees), centerX+size/2+5, y+size/2-6, r.Theme.FontSize, r.Theme.ValueColor)

	return y + size + 4
}

// DrawBool renders an on/off indicator.
func (r *Renderer) DrawBool(x, y int32, label string, value bool) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)

	color, text := r.Theme.BoolOff, "OFF"
	if value {
		color, text = r.Theme.BoolOn, "ON"
	}
	indicatorX := x + r.Theme.LabelWidth
	rl.DrawRectangle(indicatorX, y+1, 10, 10, color)
	rl.DrawText(text, indicatorX+15, y, r.Theme.FontSize, color)

	return y + r.Theme.LineHeight
}

// DrawField renders an inspector field using its widget type.
func (r *Renderer) DrawField(x, y int32, field inspector.Field, width int32) int32 {
	switch field.Widget {
	case inspector.WidgetBar:
		return r.DrawBar(x, y, field.Name, field.Text, float32(field.Ratio()), width)
	case inspector.WidgetAngle:
		return r.DrawAngle(x, y, field.Name, float32(field.Value))
	case inspector.WidgetBool:
		return r.DrawBool(x, y, field.Name, field.Value != 0)
	}
	return r.DrawLabelValue(x, y, field.Name, field.Text)
}

// DrawSection renders a section with header and fields.
func (r *Renderer) DrawSection(x, y int32, s inspector.Section, width int32) int32 {
	if s.Title != "" {
		y = r.DrawSectionHeader(x, y, s.Title)
	}
	for _, f := range s.Fields {
		y = r.DrawField(x, y, f, width)
	}
	return y + 4 // Small gap after section
}
