package physics

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Ballistic is an Integrator which moves the projectile under gravity
// alone using semi-implicit Euler integration. The ground is an
// infinite plane at the configured height; once the projectile touches
// it the projectile comes to rest on the plane.
//
// Ballistic is deterministic and has no dependencies beyond the
// configuration, which makes it the reference Integrator for tests.
type Ballistic struct {
	config Config

	body     Body
	exists   bool
	grounded bool
	catch    Trigger
}

// NewBallistic returns a new Ballistic integrator
func NewBallistic(c Config) (*Ballistic, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Ballistic{config: c}, nil
}

// Spawn creates the projectile with the argument initial state
func (b *Ballistic) Spawn(body Body) {
	b.body = body
	b.exists = true
	b.grounded = false
	b.catch.Reset()
}

// Destroy removes the projectile, if any
func (b *Ballistic) Destroy() {
	b.body = Body{}
	b.exists = false
	b.grounded = false
	b.catch.Reset()
}

// Projectile returns the current projectile state and whether a
// projectile exists
func (b *Ballistic) Projectile() (Body, bool) {
	return b.body, b.exists
}

// Advance integrates the projectile forward by dt seconds
func (b *Ballistic) Advance(dt float64, catch r3.Box) []Event {
	if !b.exists {
		return nil
	}

	var events []Event
	h := dt / float64(b.config.Substeps)
	for i := 0; i < b.config.Substeps; i++ {
		if !b.grounded {
			b.body.Velocity.Y -= b.config.Gravity * h
			b.body.Position = r3.Add(b.body.Position,
				r3.Scale(h, b.body.Velocity))
		}

		if b.catch.Update(b.body, catch) {
			events = append(events, Event{CatchZoneEntered, b.body.Position})
		}

		floor := b.config.GroundHeight + b.body.Radius
		if !b.grounded && b.body.Position.Y <= floor {
			b.body.Position.Y = floor
			b.body.Velocity = r3.Vec{}
			b.grounded = true
			events = append(events, Event{GroundContact, b.body.Position})
		}
	}
	return events
}

// Raycast reports whether a ray hits the projectile collider
func (b *Ballistic) Raycast(origin, dir r3.Vec, length float64) bool {
	if !b.exists {
		return false
	}
	return RaySphere(origin, dir, length, b.body.Position, b.body.Radius)
}
