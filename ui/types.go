// Package ui draws the heads-up display, the inspector panel and the
// parameter controls on top of the arena.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	BarFillLow     rl.Color
	AngleBg        rl.Color
	AngleNeedle    rl.Color
	BoolOn         rl.Color
	BoolOff        rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:        rl.Color{R: 100, G: 180, B: 100, A: 255},
		BarFillLow:     rl.Color{R: 180, G: 80, B: 80, A: 255},
		AngleBg:        rl.Color{R: 50, G: 50, B: 60, A: 255},
		AngleNeedle:    rl.Color{R: 255, G: 200, B: 100, A: 255},
		BoolOn:         rl.Color{R: 100, G: 200, B: 100, A: 255},
		BoolOff:        rl.Color{R: 80, G: 80, B: 80, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     110,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
