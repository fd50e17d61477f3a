package vmath

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

const eps = 1e-9

func TestNormalizeOrZero(t *testing.T) {
	tests := []struct {
		name string
		in   Vec
		want Vec
	}{
		{"zero vector", Vec{}, Vec{}},
		{"x axis", Vec{X: 5}, Vec{X: 1}},
		{"negative y", Vec{Y: -0.25}, Vec{Y: -1}},
		{"3-4-5", Vec{X: 3, Y: 4}, Vec{X: 0.6, Y: 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeOrZero(tt.in)
			if math.Abs(got.X-tt.want.X) > eps || math.Abs(got.Y-tt.want.Y) > eps {
				t.Errorf("NormalizeOrZero(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampLength(t *testing.T) {
	v := Vec{X: 30, Y: 40}

	got := ClampLength(v, 10)
	if math.Abs(Length(got)-10) > eps {
		t.Errorf("clamped length = %v, want 10", Length(got))
	}
	if math.Abs(got.X/got.Y-0.75) > eps {
		t.Errorf("clamping changed direction: %v", got)
	}

	short := Vec{X: 1, Y: 1}
	if got := ClampLength(short, 10); got != short {
		t.Errorf("vector within limit should be unchanged, got %v", got)
	}

	if got := ClampLength(v, 0); got != Zero {
		t.Errorf("zero limit should give zero vector, got %v", got)
	}
}

func TestEaseOut(t *testing.T) {
	tests := []struct {
		t, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.5, 1},
		{0.75, 1.125},
		{1, 1},
		{4, 1},
	}
	for _, tt := range tests {
		if got := EaseOut(tt.t); math.Abs(got-tt.want) > eps {
			t.Errorf("EaseOut(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestRangeScale(t *testing.T) {
	got, err := RangeScale(5, 0, 10, 0, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-50) > eps {
		t.Errorf("RangeScale midpoint = %v, want 50", got)
	}

	got, err = RangeScale(20, 10, 30, -1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got) > eps {
		t.Errorf("RangeScale offset range = %v, want 0", got)
	}

	if _, err := RangeScale(1, 3, 3, 0, 1); !errors.Is(err, ErrDegenerateRange) {
		t.Errorf("expected ErrDegenerateRange, got %v", err)
	}
}

func TestRandomPointInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := Bounds{XMin: -10, XMax: 10, YMin: 100, YMax: 101}

	for i := 0; i < 1000; i++ {
		p := RandomPointInBounds(rng, b)
		if p.X < b.XMin || p.X >= b.XMax {
			t.Fatalf("x = %v outside [%v, %v)", p.X, b.XMin, b.XMax)
		}
		if p.Y < b.YMin || p.Y >= b.YMax {
			t.Fatalf("y = %v outside [%v, %v)", p.Y, b.YMin, b.YMax)
		}
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{XMin: 0, XMax: 600, YMin: 0, YMax: 400}
	if b.IsEmpty() {
		t.Error("600x400 bounds reported empty")
	}
	if c := b.Center(); c != (Vec{X: 300, Y: 200}) {
		t.Errorf("Center() = %v", c)
	}
	if !(Bounds{XMin: 5, XMax: 5, YMin: 0, YMax: 1}).IsEmpty() {
		t.Error("zero-width bounds should be empty")
	}
	if !(Bounds{XMin: 0, XMax: 1, YMin: 2, YMax: 1}).IsEmpty() {
		t.Error("inverted bounds should be empty")
	}
}
