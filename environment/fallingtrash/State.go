package fallingtrash

import (
	"math"

	"github.com/samuelfneumann/fallingtrash/physics"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// AgentState is the kinematic state of the agent. Velocity is the
// horizontal (x, z) velocity resulting from the last action.
type AgentState struct {
	Position r3.Vec
	Velocity r2.Vec
	Heading  float64 // radians about the up axis
}

// ProjectileState is the kinematic state of the projectile. If Exists
// is false, all other fields are meaningless.
type ProjectileState struct {
	Position r3.Vec
	Velocity r3.Vec
	Radius   float64
	Exists   bool
}

// projectileFrom converts the state reported by an Integrator
func projectileFrom(b physics.Body, exists bool) ProjectileState {
	if !exists {
		return ProjectileState{}
	}
	return ProjectileState{
		Position: b.Position,
		Velocity: b.Velocity,
		Radius:   b.Radius,
		Exists:   true,
	}
}

// EpisodeMetrics tracks per-episode quantities. EpisodeMetrics are
// zeroed at the start of every episode.
type EpisodeMetrics struct {
	Steps            int
	CumulativeReward float64

	// PrevDistance is the horizontal agent-projectile distance at the
	// end of the previous step, or at spawn before the first step
	PrevDistance float64
}

// horizontalDistance returns the distance between a and b in the x-z
// plane
func horizontalDistance(a, b r3.Vec) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}

// world is the snapshot of the environment after physics integration
// on a single step. Tasks registered with the environment compute
// rewards and episode ends from the world.
type world struct {
	agent      AgentState
	projectile ProjectileState
	events     []physics.Event

	prevDistance float64
	distance     float64
	overhead     bool
	outOfBounds  bool
}

// event returns the first event of kind k in the world, if any
func (w *world) event(k physics.EventKind) (physics.Event, bool) {
	for _, e := range w.events {
		if e.Kind == k {
			return e, true
		}
	}
	return physics.Event{}, false
}
