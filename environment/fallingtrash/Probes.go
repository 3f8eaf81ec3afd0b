package fallingtrash

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/spatial/r3"
)

// RayLength is the default length of overhead sensing rays
const RayLength float64 = 5.0

// Raycaster casts rays against the projectile collider. Trigger volumes
// are never hit by rays.
type Raycaster interface {
	Raycast(origin, direction r3.Vec, length float64) bool
}

// SenseProbes are upward-pointing rays mounted on the agent, used to
// detect whether the projectile is directly overhead
type SenseProbes struct {
	eyes      []mgl64.Vec3 // offsets from the agent position, agent frame
	rayLength float64
}

// NewSenseProbes returns a new set of probes at the given offsets from
// the agent position. Offsets are given in the agent frame and rotate
// with the agent heading. If eyes is empty, the projectile is never
// sensed overhead.
func NewSenseProbes(eyes []r3.Vec, rayLength float64) SenseProbes {
	if rayLength <= 0 {
		rayLength = RayLength
	}

	offsets := make([]mgl64.Vec3, len(eyes))
	for i, e := range eyes {
		offsets[i] = mgl64.Vec3{e.X, e.Y, e.Z}
	}

	return SenseProbes{eyes: offsets, rayLength: rayLength}
}

// Overhead returns whether any probe ray hits the projectile
func (s SenseProbes) Overhead(agent AgentState, caster Raycaster) bool {
	if len(s.eyes) == 0 {
		return false
	}

	up := r3.Vec{Y: 1}
	for _, origin := range s.Origins(agent) {
		if caster.Raycast(origin, up, s.rayLength) {
			return true
		}
	}
	return false
}

// Origins returns the world positions of the probes for the given
// agent state
func (s SenseProbes) Origins(agent AgentState) []r3.Vec {
	rotation := mgl64.QuatRotate(agent.Heading, mgl64.Vec3{0, 1, 0})

	origins := make([]r3.Vec, len(s.eyes))
	for i, eye := range s.eyes {
		offset := rotation.Rotate(eye)
		origins[i] = r3.Add(agent.Position, r3.Vec{
			X: offset.X(),
			Y: offset.Y(),
			Z: offset.Z(),
		})
	}
	return origins
}
