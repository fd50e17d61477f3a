// Package inspector picks creatures and food sources in the arena and turns
// their components into labelled fields for the side panel.
package inspector

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/components"
	"github.com/pthm-cable/evosim/vmath"
)

// Widget selects how the panel draws a field.
type Widget int

const (
	WidgetLabel Widget = iota
	WidgetBar
	WidgetAngle
	WidgetBool
)

// Field is one component value, already formatted for display.
//
// Value carries the number behind bars, angles and flags: the fill amount
// of a bar, radians for an angle, 1 or 0 for a flag, and the length of a
// vector.
type Field struct {
	Name   string
	Text   string
	Value  float64
	Max    float64
	Widget Widget
}

// Ratio is Value/Max clamped to [0, 1]. Fields without a capacity report 0.
func (f Field) Ratio() float64 {
	if f.Max <= 0 {
		return 0
	}
	return vmath.Clamp(f.Value/f.Max, 0, 1)
}

// fieldTag is a parsed `inspect` struct tag:
//
//	`inspect:"-"`                  hidden
//	`inspect:"label,fmt:%.3f"`     text with a custom verb
//	`inspect:"bar,max:100"`        bar against a constant capacity
//	`inspect:"bar,of:MaxAmount"`   bar against a sibling field
//	`inspect:"angle"`              radians drawn as a needle
type fieldTag struct {
	hidden bool
	widget Widget
	format string
	max    float64
	of     string
}

func parseTag(tag string) fieldTag {
	if tag == "-" {
		return fieldTag{hidden: true}
	}
	var ft fieldTag
	kind, opts, _ := strings.Cut(tag, ",")
	switch strings.TrimSpace(kind) {
	case "bar":
		ft.widget = WidgetBar
	case "angle":
		ft.widget = WidgetAngle
	case "bool":
		ft.widget = WidgetBool
	}
	if opts == "" {
		return ft
	}
	for _, opt := range strings.Split(opts, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(opt), ":")
		if !ok {
			continue
		}
		switch key {
		case "fmt":
			ft.format = val
		case "of":
			ft.of = val
		case "max":
			if m, err := strconv.ParseFloat(val, 64); err == nil {
				ft.max = m
			}
		}
	}
	return ft
}

var (
	vecType    = reflect.TypeOf(r2.Vec{})
	targetType = reflect.TypeOf(components.Target{})
)

// Fields lists the exported fields of a component struct (or pointer to
// one). An embedded vector is shown under the component's own type name,
// so Position{Vec} reads as "Position".
func Fields(component any) []Field {
	v := reflect.Indirect(reflect.ValueOf(component))
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()

	var fields []Field
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := parseTag(sf.Tag.Get("inspect"))
		if tag.hidden {
			continue
		}
		name := sf.Name
		if sf.Anonymous {
			name = t.Name()
		}
		f := describe(name, v.Field(i), tag)
		if f.Widget == WidgetBar {
			f.Max = tag.max
			if tag.of != "" {
				f.Max = sibling(v, tag.of)
			}
		}
		fields = append(fields, f)
	}
	return fields
}

// sibling reads a numeric field of the same struct, or 0 when there is none.
func sibling(v reflect.Value, name string) float64 {
	fv := v.FieldByName(name)
	if !fv.IsValid() || !fv.CanFloat() {
		return 0
	}
	return fv.Float()
}

func describe(name string, v reflect.Value, tag fieldTag) Field {
	f := Field{Name: name, Widget: tag.widget}

	switch {
	case v.Type() == vecType:
		vec := v.Interface().(r2.Vec)
		f.Value = vmath.Length(vec)
		f.Text = FormatVec(vec, tag.format)
		f.Widget = WidgetLabel
		return f
	case v.Type() == targetType:
		f.Text = FormatTarget(v.Interface().(components.Target))
		f.Widget = WidgetLabel
		return f
	}

	switch {
	case v.Kind() == reflect.Bool:
		f.Widget = WidgetBool
		f.Text = "off"
		if v.Bool() {
			f.Value, f.Text = 1, "on"
		}
	case v.CanFloat():
		f.Value = v.Float()
		switch {
		case tag.format != "":
			f.Text = fmt.Sprintf(tag.format, f.Value)
		case f.Widget == WidgetAngle:
			f.Text = fmt.Sprintf("%.0f deg", f.Value*180/math.Pi)
		default:
			f.Text = strconv.FormatFloat(f.Value, 'f', 2, 64)
		}
	case v.CanInt():
		f.Value = float64(v.Int())
		f.Text = strconv.FormatInt(v.Int(), 10)
	case v.CanUint():
		f.Value = float64(v.Uint())
		f.Text = strconv.FormatUint(v.Uint(), 10)
	default:
		f.Widget = WidgetLabel
		if s, ok := v.Interface().(fmt.Stringer); ok {
			f.Text = s.String()
		} else {
			f.Text = fmt.Sprint(v.Interface())
		}
	}
	return f
}

// FormatVec formats a vector as "(x, y)" using verb for each coordinate,
// %.2f when verb is empty.
func FormatVec(v r2.Vec, verb string) string {
	if verb == "" {
		verb = "%.2f"
	}
	return "(" + fmt.Sprintf(verb, v.X) + ", " + fmt.Sprintf(verb, v.Y) + ")"
}

// FormatTarget describes where a creature is heading, e.g. "food #3" or
// "point (12.0, 40.5)".
func FormatTarget(t components.Target) string {
	switch t.Kind {
	case components.TargetFood, components.TargetCreature:
		return fmt.Sprintf("%s #%d", t.Kind, t.ID)
	case components.TargetPosition:
		return "point " + FormatVec(t.Point, "%.1f")
	default:
		return t.Kind.String()
	}
}
