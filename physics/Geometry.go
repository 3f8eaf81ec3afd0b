package physics

import (
	"math"

	"github.com/samuelfneumann/fallingtrash/utils/floatutils"
	"gonum.org/v1/gonum/spatial/r3"
)

// RaySphere reports whether the ray from origin in direction dir hits
// the sphere at center with the argument radius within length units.
// The direction need not be normalised. Origins inside the sphere hit
// at distance 0.
func RaySphere(origin, dir r3.Vec, length float64, center r3.Vec,
	radius float64) bool {
	norm := r3.Norm(dir)
	if norm == 0 || length < 0 {
		return false
	}
	d := r3.Scale(1/norm, dir)

	oc := r3.Sub(origin, center)
	if r3.Dot(oc, oc) <= radius*radius {
		return true
	}

	b := r3.Dot(oc, d)
	c := r3.Dot(oc, oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return false
	}

	// Nearest intersection in front of the origin
	t := -b - math.Sqrt(disc)
	return t >= 0 && t <= length
}

// SphereBox reports whether a sphere overlaps an axis-aligned box.
// Touching counts as overlapping.
func SphereBox(center r3.Vec, radius float64, box r3.Box) bool {
	closest := r3.Vec{
		X: floatutils.Clip(center.X, box.Min.X, box.Max.X),
		Y: floatutils.Clip(center.Y, box.Min.Y, box.Max.Y),
		Z: floatutils.Clip(center.Z, box.Min.Z, box.Max.Z),
	}
	diff := r3.Sub(center, closest)
	return r3.Dot(diff, diff) <= radius*radius
}

// Trigger tracks whether a body is inside a trigger volume so that
// only entries are reported
type Trigger struct {
	inside bool
}

// Update returns true if the body entered the volume since the last
// update
func (t *Trigger) Update(b Body, volume r3.Box) bool {
	inside := SphereBox(b.Position, b.Radius, volume)
	entered := inside && !t.inside
	t.inside = inside
	return entered
}

// Reset forgets whether the body was inside the volume
func (t *Trigger) Reset() {
	t.inside = false
}
