package physics

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// farBox is a catch volume nowhere near any test trajectory
var farBox = r3.Box{
	Min: r3.Vec{X: 100, Y: 100, Z: 100},
	Max: r3.Vec{X: 101, Y: 101, Z: 101},
}

func TestRaySphere(t *testing.T) {
	center := r3.Vec{Y: 3}
	up := r3.Vec{Y: 1}

	tests := []struct {
		name   string
		origin r3.Vec
		dir    r3.Vec
		length float64
		want   bool
	}{
		{"straight hit", r3.Vec{}, up, 5, true},
		{"too short", r3.Vec{}, up, 2, false},
		{"pointing away", r3.Vec{}, r3.Vec{Y: -1}, 5, false},
		{"offset within radius", r3.Vec{X: 0.4}, up, 5, true},
		{"offset outside radius", r3.Vec{X: 0.6}, up, 5, false},
		{"origin inside", r3.Vec{Y: 3.2}, up, 0, true},
		{"unnormalised direction", r3.Vec{}, r3.Vec{Y: 10}, 5, true},
		{"zero direction", r3.Vec{}, r3.Vec{}, 5, false},
	}

	for _, test := range tests {
		have := RaySphere(test.origin, test.dir, test.length, center, 0.5)
		if have != test.want {
			t.Errorf("%v: want(%v) have(%v)", test.name, test.want, have)
		}
	}
}

func TestSphereBox(t *testing.T) {
	box := r3.Box{Min: r3.Vec{X: -1, Y: 0, Z: -1}, Max: r3.Vec{X: 1, Y: 1, Z: 1}}

	if !SphereBox(r3.Vec{Y: 0.5}, 0.1, box) {
		t.Error("sphere at box center should overlap")
	}
	if !SphereBox(r3.Vec{X: 1, Y: 1, Z: 1}, 0, box) {
		t.Error("point exactly on the box corner should overlap")
	}
	if !SphereBox(r3.Vec{Y: 1.2}, 0.2, box) {
		t.Error("sphere touching the top face should overlap")
	}
	if SphereBox(r3.Vec{Y: 1.21}, 0.2, box) {
		t.Error("sphere above the top face should not overlap")
	}
}

func TestBallisticFreeFlight(t *testing.T) {
	c := DefaultConfig(0)
	b, err := NewBallistic(c)
	if err != nil {
		t.Fatal(err)
	}

	start := Body{
		Position: r3.Vec{X: 4, Y: 4},
		Velocity: r3.Vec{X: -5, Y: 5},
		Radius:   0.1,
	}
	b.Spawn(start)

	dt := 0.02
	events := b.Advance(dt, farBox)
	if len(events) != 0 {
		t.Errorf("no events expected in the first step, have %v", events)
	}

	body, ok := b.Projectile()
	if !ok {
		t.Fatal("projectile should exist after spawn")
	}

	// Horizontal motion is unaffected by gravity
	if math.Abs(body.Position.X-(4-5*dt)) > 1e-12 {
		t.Errorf("x: want(%v) have(%v)", 4-5*dt, body.Position.X)
	}
	if math.Abs(body.Velocity.Y-(5-c.Gravity*dt)) > 1e-12 {
		t.Errorf("vy: want(%v) have(%v)", 5-c.Gravity*dt, body.Velocity.Y)
	}
}

func TestBallisticGroundContact(t *testing.T) {
	b, err := NewBallistic(DefaultConfig(1))
	if err != nil {
		t.Fatal(err)
	}
	b.Spawn(Body{Position: r3.Vec{Y: 2}, Radius: 0.25})

	contacts := 0
	for i := 0; i < 200; i++ {
		for _, e := range b.Advance(0.02, farBox) {
			if e.Kind != GroundContact {
				t.Errorf("unexpected event %v", e.Kind)
			}
			contacts++
			if math.Abs(e.Position.Y-1.25) > 1e-12 {
				t.Errorf("contact height: want(1.25) have(%v)", e.Position.Y)
			}
		}
	}

	if contacts != 1 {
		t.Errorf("ground contact should be reported once, have %v", contacts)
	}

	body, _ := b.Projectile()
	if body.Velocity != (r3.Vec{}) {
		t.Errorf("grounded projectile should be at rest, have %v",
			body.Velocity)
	}
}

func TestBallisticCatchEntry(t *testing.T) {
	b, err := NewBallistic(DefaultConfig(0))
	if err != nil {
		t.Fatal(err)
	}
	b.Spawn(Body{Position: r3.Vec{Y: 3}, Radius: 0.1})

	catch := r3.Box{
		Min: r3.Vec{X: -0.5, Y: 1, Z: -0.5},
		Max: r3.Vec{X: 0.5, Y: 1.5, Z: 0.5},
	}

	var kinds []EventKind
	for i := 0; i < 200; i++ {
		for _, e := range b.Advance(0.02, catch) {
			kinds = append(kinds, e.Kind)
		}
	}

	if len(kinds) != 2 || kinds[0] != CatchZoneEntered ||
		kinds[1] != GroundContact {
		t.Errorf("want([CatchZoneEntered GroundContact]) have(%v)", kinds)
	}
}

func TestDestroy(t *testing.T) {
	b, _ := NewBallistic(DefaultConfig(0))
	b.Spawn(Body{Position: r3.Vec{Y: 3}, Radius: 0.1})
	b.Destroy()

	if _, ok := b.Projectile(); ok {
		t.Error("projectile should not exist after destroy")
	}
	if events := b.Advance(0.02, farBox); events != nil {
		t.Errorf("advance without projectile should be a no-op, have %v",
			events)
	}
	if b.Raycast(r3.Vec{}, r3.Vec{Y: 1}, 10) {
		t.Error("raycast should not hit a destroyed projectile")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := (Config{Gravity: 0, Substeps: 1}).Validate(); err == nil {
		t.Error("zero gravity should be rejected")
	}
	if err := (Config{Gravity: 9.81, Substeps: 0}).Validate(); err == nil {
		t.Error("zero substeps should be rejected")
	}
	if _, err := NewBallistic(Config{}); err == nil {
		t.Error("new ballistic should reject an invalid config")
	}
}
