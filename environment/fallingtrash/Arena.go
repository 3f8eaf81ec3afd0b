// Package fallingtrash implements the Falling Trash catch environment.
//
// A projectile (the trash) is thrown from a random edge of a square
// arena towards the arena center. The agent (a bin) moves on the
// ground plane and must position itself so that the projectile lands in
// the catch volume mounted on top of it.
package fallingtrash

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Default arena geometry
	HalfSize        float64 = 4.0
	SpawnHeight     float64 = 4.0
	HorizontalSpeed float64 = 5.0
	MinThrowAngle   float64 = 20.0 // degrees
	MaxThrowAngle   float64 = 60.0 // degrees
	Margin          float64 = 1.0  // out of bounds padding

	// Default agent parameters
	AgentHeight        float64 = 0.5 // above the ground
	AgentSpawnFraction float64 = 0.5 // of the half size, around center
	MoveSpeed          float64 = 5.0
	Dt                 float64 = 0.02 // seconds per control step
)

// ArenaConfig is the geometry of the arena along with the kinematic
// parameters of the agent. An ArenaConfig is set once when the
// environment is constructed and never changes afterwards.
type ArenaConfig struct {
	Center          r3.Vec      `json:"center"`
	HalfSize        float64     `json:"halfSize"`
	GroundHeight    float64     `json:"groundHeight"`
	SpawnHeight     float64     `json:"spawnHeight"`
	HorizontalSpeed float64     `json:"horizontalSpeed"`
	ThrowAngles     r1.Interval `json:"throwAngles"` // degrees above horizontal
	Margin          float64     `json:"margin"`

	AgentHeight        float64 `json:"agentHeight"`
	AgentSpawnFraction float64 `json:"agentSpawnFraction"`
	MoveSpeed          float64 `json:"moveSpeed"`
	Dt                 float64 `json:"dt"`

	// VelocityScale divides velocities in observations
	VelocityScale float64 `json:"velocityScale"`
}

// DefaultArena returns the default arena centered at the origin with
// the ground at height 0
func DefaultArena() ArenaConfig {
	return ArenaConfig{
		HalfSize:        HalfSize,
		SpawnHeight:     SpawnHeight,
		HorizontalSpeed: HorizontalSpeed,
		ThrowAngles:     r1.Interval{Min: MinThrowAngle, Max: MaxThrowAngle},
		Margin:          Margin,

		AgentHeight:        AgentHeight,
		AgentSpawnFraction: AgentSpawnFraction,
		MoveSpeed:          MoveSpeed,
		Dt:                 Dt,

		VelocityScale: VelocityScale,
	}
}

// Validate returns an error describing the first invalid field of the
// arena, or nil if the arena is valid
func (a ArenaConfig) Validate() error {
	switch {
	case a.HalfSize <= 0:
		return fmt.Errorf("validate: half size must be positive, have %v",
			a.HalfSize)

	case a.SpawnHeight <= 0:
		return fmt.Errorf("validate: spawn height must be positive, have %v",
			a.SpawnHeight)

	case a.HorizontalSpeed <= 0:
		return fmt.Errorf("validate: horizontal speed must be positive, "+
			"have %v", a.HorizontalSpeed)

	case a.ThrowAngles.Min > a.ThrowAngles.Max:
		return fmt.Errorf("validate: throw angle range [%v, %v] is empty",
			a.ThrowAngles.Min, a.ThrowAngles.Max)

	case a.ThrowAngles.Min <= 0 || a.ThrowAngles.Max >= 90:
		return fmt.Errorf("validate: throw angles must lie in (0°, 90°), "+
			"have [%v, %v]", a.ThrowAngles.Min, a.ThrowAngles.Max)

	case a.Margin < 0:
		return fmt.Errorf("validate: margin must be non-negative, have %v",
			a.Margin)

	case a.AgentSpawnFraction < 0 || a.AgentSpawnFraction > 1:
		return fmt.Errorf("validate: agent spawn fraction %v ∉ [0, 1]",
			a.AgentSpawnFraction)

	case a.MoveSpeed < 0:
		return fmt.Errorf("validate: move speed must be non-negative, have %v",
			a.MoveSpeed)

	case a.Dt <= 0:
		return fmt.Errorf("validate: dt must be positive, have %v", a.Dt)

	case a.VelocityScale <= 0:
		return fmt.Errorf("validate: velocity scale must be positive, "+
			"have %v", a.VelocityScale)
	}
	return nil
}

// StartBounds returns the intervals from which agent starting states
// (x offset from center, z offset from center, heading) are sampled
func (a ArenaConfig) StartBounds() []r1.Interval {
	extent := a.HalfSize * a.AgentSpawnFraction
	return []r1.Interval{
		{Min: -extent, Max: extent},
		{Min: -extent, Max: extent},
		{Min: 0, Max: 2 * math.Pi},
	}
}
