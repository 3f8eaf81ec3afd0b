// Package physics defines the rigid-body capability that environments
// call into to advance thrown projectiles, along with the collision and
// trigger events the capability reports back.
//
// Environments never resolve collisions themselves. Each control step
// they call Integrator.Advance exactly once and read the returned
// Events to decide whether anything of interest happened.
package physics

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Gravity is the default magnitude of gravitational acceleration,
	// acting along -y
	Gravity float64 = 9.81

	// Substeps is the default number of integration substeps taken per
	// call to Advance. Trigger volumes are checked after every substep
	// so that fast projectiles cannot tunnel through thin volumes.
	Substeps int = 4
)

// EventKind names an event reported by an Integrator
type EventKind int

const (
	// CatchZoneEntered is reported when the projectile collider starts
	// overlapping the catch volume
	CatchZoneEntered EventKind = iota

	// GroundContact is reported when the projectile collider first
	// touches the ground plane
	GroundContact

	// Missed is a forced miss raised by the host rather than by the
	// integrator, for example by a wall-contact adapter
	Missed
)

func (e EventKind) String() string {
	switch e {
	case CatchZoneEntered:
		return "CatchZoneEntered"
	case GroundContact:
		return "GroundContact"
	case Missed:
		return "Missed"
	default:
		return fmt.Sprintf("EventKind(%d)", int(e))
	}
}

// Event is a named collision or trigger event, carrying the position of
// the projectile when the event occurred
type Event struct {
	Kind     EventKind
	Position r3.Vec
}

// Body is the kinematic state of a spherical projectile
type Body struct {
	Position r3.Vec
	Velocity r3.Vec
	Radius   float64
}

// Config holds the world parameters shared by all Integrators
type Config struct {
	Gravity      float64 `json:"gravity"`
	GroundHeight float64 `json:"groundHeight"`
	Substeps     int     `json:"substeps"`
}

// DefaultConfig returns the default world configuration with the
// ground plane at height groundHeight
func DefaultConfig(groundHeight float64) Config {
	return Config{
		Gravity:      Gravity,
		GroundHeight: groundHeight,
		Substeps:     Substeps,
	}
}

// Validate returns an error if the configuration cannot be simulated
func (c Config) Validate() error {
	if c.Gravity <= 0 {
		return fmt.Errorf("validate: gravity must be positive, have %v",
			c.Gravity)
	}
	if c.Substeps < 1 {
		return fmt.Errorf("validate: substeps must be at least 1, have %v",
			c.Substeps)
	}
	return nil
}

// Integrator advances a single projectile through the world. At most
// one projectile exists at a time; spawning a new projectile replaces
// the previous one.
type Integrator interface {
	// Spawn creates the projectile with the argument initial state
	Spawn(b Body)

	// Destroy removes the projectile, if any
	Destroy()

	// Projectile returns the current projectile state and whether a
	// projectile exists
	Projectile() (Body, bool)

	// Advance integrates the projectile forward by dt seconds and
	// returns the events which occurred, in the order they occurred.
	// The catch argument is the catch volume for this step.
	Advance(dt float64, catch r3.Box) []Event

	// Raycast reports whether a ray starting at origin travelling in
	// direction dir hits the projectile collider within length units
	Raycast(origin, dir r3.Vec, length float64) bool
}
