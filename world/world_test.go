package world

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/components"
)

var testBounds = Bounds{XMin: 0, XMax: 600, YMin: 0, YMax: 400}

func testCreature(x, y float64) Creature {
	return Creature{
		Position:        r2.Vec{X: x, Y: y},
		Strength:        1,
		Dexterity:       1,
		Hunger:          100,
		HungerThreshold: 50,
		HungerRate:      0.05,
	}
}

func testFood(x, y float64) FoodSource {
	return FoodSource{Position: r2.Vec{X: x, Y: y}, MaxAmount: 80, Amount: 80}
}

func newTestWorld(t *testing.T, creatures []Creature, food []FoodSource) *World {
	t.Helper()
	w, err := New(creatures, food, DefaultParams(), testBounds)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return w
}

func TestNewAssignsIDsInListOrder(t *testing.T) {
	w := newTestWorld(t,
		[]Creature{testCreature(1, 1), testCreature(2, 2)},
		[]FoodSource{testFood(3, 3)},
	)

	wantCreatures := []components.ID{1, 2}
	got := w.CreatureIDs()
	if len(got) != len(wantCreatures) {
		t.Fatalf("CreatureIDs() = %v, want %v", got, wantCreatures)
	}
	for i := range got {
		if got[i] != wantCreatures[i] {
			t.Errorf("CreatureIDs()[%d] = %d, want %d", i, got[i], wantCreatures[i])
		}
	}

	if ids := w.FoodIDs(); len(ids) != 1 || ids[0] != 3 {
		t.Errorf("FoodIDs() = %v, want [3]", ids)
	}

	c, ok := w.Creature(2)
	if !ok {
		t.Fatal("creature 2 missing")
	}
	if c.Position != (r2.Vec{X: 2, Y: 2}) {
		t.Errorf("creature 2 position = %v, want (2, 2)", c.Position)
	}
}

func TestIDsSharedAndNeverReused(t *testing.T) {
	w := newTestWorld(t, nil, nil)

	a, err := w.InsertCreature(testCreature(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	f, err := w.InsertFood(testFood(20, 20))
	if err != nil {
		t.Fatal(err)
	}
	if f <= a {
		t.Errorf("food id %d should follow creature id %d", f, a)
	}

	if !w.Remove(a) {
		t.Fatal("Remove returned false for live creature")
	}
	b, err := w.InsertCreature(testCreature(30, 30))
	if err != nil {
		t.Fatal(err)
	}
	if b == a || b <= f {
		t.Errorf("id %d reused or out of order after removal of %d", b, a)
	}

	if next := w.AllocateID(); next <= b {
		t.Errorf("AllocateID() = %d, want > %d", next, b)
	}
}

func TestLookupKindsDoNotCross(t *testing.T) {
	w := newTestWorld(t, []Creature{testCreature(1, 1)}, []FoodSource{testFood(2, 2)})

	if _, ok := w.Food(1); ok {
		t.Error("creature id resolved as food")
	}
	if _, ok := w.Creature(2); ok {
		t.Error("food id resolved as creature")
	}
	if _, ok := w.Creature(99); ok {
		t.Error("unknown id resolved as creature")
	}
}

func TestNewRejectsMisconfiguration(t *testing.T) {
	tests := []struct {
		name      string
		creatures []Creature
		food      []FoodSource
		params    Params
		bounds    Bounds
		want      error
	}{
		{
			name:   "inverted bounds",
			params: DefaultParams(),
			bounds: Bounds{XMin: 10, XMax: 0, YMin: 0, YMax: 10},
			want:   ErrInvalidBounds,
		},
		{
			name:   "zero timestep",
			params: Params{Padding: 20, Damping: 0.9},
			bounds: testBounds,
			want:   ErrInvalidParams,
		},
		{
			name: "threshold above 100",
			creatures: []Creature{func() Creature {
				c := testCreature(1, 1)
				c.HungerThreshold = 150
				return c
			}()},
			params: DefaultParams(),
			bounds: testBounds,
			want:   ErrInvalidCreature,
		},
		{
			name: "zero dexterity",
			creatures: []Creature{func() Creature {
				c := testCreature(1, 1)
				c.Dexterity = 0
				return c
			}()},
			params: DefaultParams(),
			bounds: testBounds,
			want:   ErrInvalidCreature,
		},
		{
			name:   "food amount above max",
			food:   []FoodSource{{MaxAmount: 50, Amount: 60}},
			params: DefaultParams(),
			bounds: testBounds,
			want:   ErrInvalidFood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.creatures, tt.food, tt.params, tt.bounds)
			if !errors.Is(err, tt.want) {
				t.Errorf("New() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	w := newTestWorld(t, []Creature{testCreature(5, 6)}, []FoodSource{testFood(7, 8)})

	tests := []struct {
		name   string
		target components.Target
		want   r2.Vec
		ok     bool
	}{
		{"none", components.NoTarget, r2.Vec{}, false},
		{"point", components.PointTarget(r2.Vec{X: 42, Y: 24}), r2.Vec{X: 42, Y: 24}, true},
		{"creature", components.CreatureTarget(1), r2.Vec{X: 5, Y: 6}, true},
		{"food", components.FoodTarget(2), r2.Vec{X: 7, Y: 8}, true},
		{"food id of creature", components.FoodTarget(1), r2.Vec{}, false},
		{"missing food", components.FoodTarget(404), r2.Vec{}, false},
		{"missing creature", components.CreatureTarget(404), r2.Vec{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := w.Resolve(tt.target)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Resolve(%v) = %v, %v; want %v, %v", tt.target, got, ok, tt.want, tt.ok)
			}

			sgot, sok := w.Snapshot().Resolve(tt.target)
			if sok != tt.ok || sgot != tt.want {
				t.Errorf("Snapshot.Resolve(%v) = %v, %v; want %v, %v", tt.target, sgot, sok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveAfterRemove(t *testing.T) {
	w := newTestWorld(t, nil, []FoodSource{testFood(7, 8)})
	target := components.FoodTarget(1)

	if _, ok := w.Resolve(target); !ok {
		t.Fatal("food should resolve before removal")
	}
	w.Remove(1)
	if _, ok := w.Resolve(target); ok {
		t.Error("removed food should not resolve")
	}
	if _, ok := w.Snapshot().Resolve(target); ok {
		t.Error("removed food should not appear in snapshot")
	}
	if w.Remove(1) {
		t.Error("second Remove should report false")
	}
}

func TestSnapshotIsolatedFromLaterWrites(t *testing.T) {
	w := newTestWorld(t, []Creature{testCreature(5, 6)}, nil)
	snap := w.Snapshot()

	entity, _ := w.CreatureEntity(1)
	pos, _, _, _, _, _ := w.CreatureComponents(entity)
	pos.Vec = r2.Vec{X: 100, Y: 100}

	got, ok := snap.CreaturePosition(1)
	if !ok || got != (r2.Vec{X: 5, Y: 6}) {
		t.Errorf("snapshot position = %v, %v; want pre-write (5, 6)", got, ok)
	}
	live, _ := w.Resolve(components.CreatureTarget(1))
	if live != (r2.Vec{X: 100, Y: 100}) {
		t.Errorf("live position = %v, want (100, 100)", live)
	}
}

func TestSnapshotFoodsAscending(t *testing.T) {
	w := newTestWorld(t, nil, []FoodSource{testFood(1, 1), testFood(2, 2), testFood(3, 3)})
	w.Remove(2)
	if _, err := w.InsertFood(testFood(4, 4)); err != nil {
		t.Fatal(err)
	}

	foods := w.Snapshot().Foods()
	if len(foods) != 3 {
		t.Fatalf("len(Foods()) = %d, want 3", len(foods))
	}
	for i := 1; i < len(foods); i++ {
		if foods[i-1].ID >= foods[i].ID {
			t.Errorf("foods not ascending: %v", foods)
		}
	}
}

func TestIteratorsStopEarly(t *testing.T) {
	w := newTestWorld(t,
		[]Creature{testCreature(1, 1), testCreature(2, 2), testCreature(3, 3)},
		[]FoodSource{testFood(1, 1), testFood(2, 2)},
	)

	n := 0
	for range w.Creatures() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("visited %d creatures, want 2", n)
	}

	total := 0.0
	for _, f := range w.FoodSources() {
		total += f.Amount
	}
	if total != 160 {
		t.Errorf("total food = %v, want 160", total)
	}
}

func TestSetParamsValidates(t *testing.T) {
	w := newTestWorld(t, nil, nil)
	bad := DefaultParams()
	bad.Damping = -1
	if err := w.SetParams(bad); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("SetParams error = %v, want ErrInvalidParams", err)
	}
	good := DefaultParams()
	good.Padding = 35
	if err := w.SetParams(good); err != nil {
		t.Fatalf("SetParams: %v", err)
	}
	if w.Params().Padding != 35 {
		t.Errorf("Padding = %v, want 35", w.Params().Padding)
	}
}

func TestFoodSourceRadius(t *testing.T) {
	tests := []struct {
		name string
		food FoodSource
		want float64
	}{
		{"full small source", FoodSource{MaxAmount: 50, Amount: 50}, 8},
		{"full large source", FoodSource{MaxAmount: 99, Amount: 99}, 8},
		{"half", FoodSource{MaxAmount: 50, Amount: 25}, 4},
		{"empty", FoodSource{MaxAmount: 80, Amount: 0}, 0},
		{"no capacity", FoodSource{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.food.Radius(8); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Radius(8) = %v, want %v", got, tt.want)
			}
			if tt.food.MaxAmount > 0 {
				if got, want := tt.food.Radius(8), tt.food.Fraction()*8; math.Abs(got-want) > 1e-9 {
					t.Errorf("Radius(8) = %v, Fraction()*8 = %v", got, want)
				}
			}
		})
	}
}
