package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evosim/inspector"
)

// InspectorPanel renders the component fields of the selected entity.
type InspectorPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewInspectorPanel creates a new inspector panel.
func NewInspectorPanel(x, y, width int32) *InspectorPanel {
	return &InspectorPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *InspectorPanel) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Width returns the panel width.
func (ins *InspectorPanel) Width() int32 {
	return ins.width
}

// Contains reports whether a screen point lies on the panel.
func (ins *InspectorPanel) Contains(sx, sy float32, height int32) bool {
	return sx >= float32(ins.x) && sx <= float32(ins.x+ins.width) &&
		sy >= float32(ins.y) && sy <= float32(ins.y+height)
}

// Height returns the panel height needed for sections.
func (ins *InspectorPanel) Height(sections []inspector.Section) int32 {
	t := ins.renderer.Theme
	h := t.Padding * 2
	for _, s := range sections {
		h += t.LineHeight + 4
		for _, f := range s.Fields {
			switch f.Widget {
			case inspector.WidgetAngle:
				h += 32
			case inspector.WidgetBar:
				h += t.LineHeight + 2
			default:
				h += t.LineHeight
			}
		}
	}
	return h
}

// Draw renders the panel and returns its height.
func (ins *InspectorPanel) Draw(sections []inspector.Section) int32 {
	r := ins.renderer
	padding := r.Theme.Padding
	height := ins.Height(sections)

	r.DrawPanel(ins.x, ins.y, ins.width, height)

	y := ins.y + padding
	for _, s := range sections {
		y = r.DrawSection(ins.x+padding, y, s, ins.width-padding*2)
	}

	rl.DrawText("[Esc] close", ins.x+ins.width-70, ins.y+padding, r.Theme.FontSize, rl.Gray)
	return height
}
