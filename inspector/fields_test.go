package inspector

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/components"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag  string
		want fieldTag
	}{
		{"", fieldTag{}},
		{"-", fieldTag{hidden: true}},
		{"bar,max:100", fieldTag{widget: WidgetBar, max: 100}},
		{"bar,of:MaxAmount", fieldTag{widget: WidgetBar, of: "MaxAmount"}},
		{"bar,max:oops", fieldTag{widget: WidgetBar}},
		{"angle", fieldTag{widget: WidgetAngle}},
		{"label,fmt:%.1f", fieldTag{format: "%.1f"}},
		{"bogus,nocolon", fieldTag{}},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := parseTag(tt.tag); got != tt.want {
				t.Errorf("parseTag(%q) = %+v, want %+v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestFieldsMetabolism(t *testing.T) {
	fields := Fields(&components.Metabolism{Hunger: 80, HungerThreshold: 40, HungerRate: 0.05})
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(fields))
	}

	hunger := fields[0]
	if hunger.Name != "Hunger" || hunger.Widget != WidgetBar || hunger.Max != 100 {
		t.Errorf("hunger field = %+v", hunger)
	}
	if hunger.Value != 80 || math.Abs(hunger.Ratio()-0.8) > 1e-9 {
		t.Errorf("hunger value = %v, ratio %v", hunger.Value, hunger.Ratio())
	}
	if got := fields[2].Text; got != "0.050" {
		t.Errorf("hunger rate text = %q, want 0.050", got)
	}
}

func TestFieldsBarCapacityFromSibling(t *testing.T) {
	tests := []struct {
		name      string
		food      components.Food
		wantRatio float64
	}{
		{"full small source", components.Food{MaxAmount: 50, Amount: 50}, 1},
		{"half", components.Food{MaxAmount: 80, Amount: 40}, 0.5},
		{"no capacity", components.Food{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := Fields(tt.food)
			if len(fields) != 2 {
				t.Fatalf("got %d fields, want 2", len(fields))
			}
			amount := fields[1]
			if amount.Widget != WidgetBar || amount.Max != tt.food.MaxAmount {
				t.Errorf("amount field = %+v, want bar with max %v", amount, tt.food.MaxAmount)
			}
			if math.Abs(amount.Ratio()-tt.wantRatio) > 1e-9 {
				t.Errorf("Ratio = %v, want %v", amount.Ratio(), tt.wantRatio)
			}
		})
	}
}

func TestFieldsEmbeddedVector(t *testing.T) {
	fields := Fields(components.Velocity{Vec: r2.Vec{X: 3, Y: 4}})
	if len(fields) != 1 {
		t.Fatalf("got %d fields, want 1", len(fields))
	}
	f := fields[0]
	if f.Name != "Velocity" || f.Text != "(3.00, 4.00)" || f.Value != 5 {
		t.Errorf("velocity field = %+v", f)
	}
}

func TestFieldsHeadingAngle(t *testing.T) {
	fields := Fields(components.Heading{Facing: math.Pi / 2})
	if len(fields) != 1 || fields[0].Widget != WidgetAngle {
		t.Fatalf("heading fields = %+v", fields)
	}
	if fields[0].Text != "90 deg" {
		t.Errorf("facing text = %q, want 90 deg", fields[0].Text)
	}
}

func TestFieldsSkipsAndDetects(t *testing.T) {
	type sample struct {
		Visible bool
		Count   int
		ID      components.ID
		Hidden  float64 `inspect:"-"`
		private int
	}
	fields := Fields(sample{Visible: true, Count: -3, ID: 7, private: 1})
	if len(fields) != 3 {
		t.Fatalf("got %d fields, want 3: %+v", len(fields), fields)
	}
	if fields[0].Widget != WidgetBool || fields[0].Value != 1 || fields[0].Text != "on" {
		t.Errorf("bool field = %+v", fields[0])
	}
	if fields[1].Text != "-3" || fields[2].Text != "7" {
		t.Errorf("integer fields = %+v, %+v", fields[1], fields[2])
	}

	if Fields(42) != nil {
		t.Error("non-struct should yield no fields")
	}
}

func TestFormatTarget(t *testing.T) {
	tests := []struct {
		target components.Target
		want   string
	}{
		{components.NoTarget, "none"},
		{components.FoodTarget(3), "food #3"},
		{components.CreatureTarget(9), "creature #9"},
		{components.PointTarget(r2.Vec{X: 12, Y: 40.5}), "point (12.0, 40.5)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatTarget(tt.target); got != tt.want {
				t.Errorf("FormatTarget = %q, want %q", got, tt.want)
			}
		})
	}

	fields := Fields(components.Movement{Target: components.FoodTarget(3)})
	if len(fields) != 1 || fields[0].Text != "food #3" {
		t.Errorf("movement fields = %+v", fields)
	}
}
