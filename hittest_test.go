package dropzone

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 25, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 40, 60, true},
		{"left edge", 10, 30, true},
		{"left of rect", 9.99, 30, false},
		{"right of rect", 40.01, 30, false},
		{"above", 25, 19, false},
		{"below", 25, 61, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
	if c := r.Center(); c != (Vec2{25, 40}) {
		t.Errorf("Center = %v", c)
	}
	if d := Distance(Vec2{0, 0}, Vec2{3, 4}); d != 5 {
		t.Errorf("Distance = %v, want 5", d)
	}
}

func newTestHitTester(t *testing.T, rects map[string]Rect, order ...string) *HitTester {
	t.Helper()
	h := NewHitTester(mapBounds(rects))
	for _, id := range order {
		if err := h.add(DropZone{ID: id}); err != nil {
			t.Fatal(err)
		}
	}
	return h
}

func TestHitTesterQuery(t *testing.T) {
	h := newTestHitTester(t, map[string]Rect{
		"a": {X: 0, Y: 0, Width: 100, Height: 100},
		"b": {X: 50, Y: 50, Width: 100, Height: 100},
		"c": {X: 300, Y: 0, Width: 50, Height: 50},
	}, "a", "b", "c")

	tests := []struct {
		name string
		p    Vec2
		want string
	}{
		{"only a", Vec2{10, 10}, "a"},
		{"overlap resolves to first registered", Vec2{75, 75}, "a"},
		{"only b", Vec2{120, 120}, "b"},
		{"c", Vec2{325, 25}, "c"},
		{"outside all", Vec2{250, 250}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, ok := h.Query(tt.p)
			if tt.want == "" {
				if ok {
					t.Errorf("expected no zone, got %q", z.ID)
				}
				return
			}
			if !ok || z.ID != tt.want {
				t.Errorf("Query(%v) = %q, %v; want %q", tt.p, z.ID, ok, tt.want)
			}
		})
	}
}

// The result must match a plain first-match scan over the rectangles.
func TestHitTesterMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rects := make(map[string]Rect)
	var order []string
	for i := 0; i < 12; i++ {
		id := string(rune('a' + i))
		rects[id] = Rect{
			X:      rng.Float64() * 400,
			Y:      rng.Float64() * 400,
			Width:  10 + rng.Float64()*150,
			Height: 10 + rng.Float64()*150,
		}
		order = append(order, id)
	}
	h := newTestHitTester(t, rects, order...)

	for i := 0; i < 2000; i++ {
		p := Vec2{rng.Float64() * 600, rng.Float64() * 600}
		want := ""
		for _, id := range order {
			r := rects[id]
			if p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height {
				want = id
				break
			}
		}
		z, _ := h.Query(p)
		if z.ID != want {
			t.Fatalf("Query(%v) = %q, want %q", p, z.ID, want)
		}
	}
}

func TestHitTesterLiveBounds(t *testing.T) {
	rects := map[string]Rect{"a": {X: 0, Y: 0, Width: 10, Height: 10}}
	h := newTestHitTester(t, rects, "a")

	if _, ok := h.Query(Vec2{5, 5}); !ok {
		t.Fatal("expected hit before layout change")
	}
	rects["a"] = Rect{X: 100, Y: 100, Width: 10, Height: 10}
	if _, ok := h.Query(Vec2{5, 5}); ok {
		t.Error("stale bounds used after layout change")
	}
	if _, ok := h.Query(Vec2{105, 105}); !ok {
		t.Error("expected hit at new position")
	}
}

func TestHitTesterSkips(t *testing.T) {
	rects := map[string]Rect{
		"a": {X: 0, Y: 0, Width: 100, Height: 100},
		"b": {X: 0, Y: 0, Width: 100, Height: 100},
	}
	h := newTestHitTester(t, rects, "ghost", "a", "b")

	// "ghost" has no bounds and is skipped.
	if z, _ := h.Query(Vec2{5, 5}); z.ID != "a" {
		t.Errorf("got %q, want a", z.ID)
	}
	if err := h.setOccupied("a", true); err != nil {
		t.Fatal(err)
	}
	if z, _ := h.target(Vec2{5, 5}); z.ID != "b" {
		t.Errorf("occupied zone not skipped: got %q", z.ID)
	}
	if err := h.setOccupied("a", false); err != nil {
		t.Fatal(err)
	}
	if z, _ := h.target(Vec2{5, 5}); z.ID != "a" {
		t.Errorf("zone not restored: got %q", z.ID)
	}
}

// Query is purely geometric: an occupied zone still wins the tie-break.
func TestHitTesterQueryIgnoresOccupancy(t *testing.T) {
	rects := map[string]Rect{
		"a": {X: 0, Y: 0, Width: 100, Height: 100},
		"b": {X: 0, Y: 0, Width: 100, Height: 100},
	}
	h := newTestHitTester(t, rects, "a", "b")
	if err := h.setOccupied("a", true); err != nil {
		t.Fatal(err)
	}
	z, ok := h.Query(Vec2{5, 5})
	if !ok || z.ID != "a" || !z.Occupied {
		t.Errorf("Query = %+v, %v; want occupied a", z, ok)
	}

	if err := h.setOccupied("b", true); err != nil {
		t.Fatal(err)
	}
	if z, ok := h.target(Vec2{5, 5}); ok {
		t.Errorf("target = %q, want none when all zones are occupied", z.ID)
	}
}

func TestHitTesterEmpty(t *testing.T) {
	if _, ok := NewHitTester(nil).Query(Vec2{0, 0}); ok {
		t.Error("empty hit tester should miss")
	}
	h := NewHitTester(nil)
	_ = h.add(DropZone{ID: "a"})
	if _, ok := h.Query(Vec2{0, 0}); ok {
		t.Error("nil bounds should miss")
	}
}

func TestHitTesterRemove(t *testing.T) {
	rects := map[string]Rect{
		"a": {X: 0, Y: 0, Width: 100, Height: 100},
		"b": {X: 0, Y: 0, Width: 100, Height: 100},
		"c": {X: 0, Y: 0, Width: 100, Height: 100},
	}
	h := newTestHitTester(t, rects, "a", "b", "c")

	if err := h.remove("a"); err != nil {
		t.Fatal(err)
	}
	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	if z, _ := h.Query(Vec2{5, 5}); z.ID != "b" {
		t.Errorf("got %q, want b", z.ID)
	}
	if err := h.setOccupied("c", true); err != nil {
		t.Fatalf("reindexed zone not found: %v", err)
	}
	if z, ok := h.Zone("c"); !ok || !z.Occupied {
		t.Errorf("Zone(c) = %+v, %v", z, ok)
	}
	if err := h.remove("a"); !errors.Is(err, ErrUnknownZone) {
		t.Errorf("second remove: got %v", err)
	}
}
