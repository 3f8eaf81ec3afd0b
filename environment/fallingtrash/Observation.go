package fallingtrash

import (
	"gonum.org/v1/gonum/mat"
)

const (
	// ObservationDims is the length of observation vectors
	ObservationDims int = 9

	// VelocityScale is the default divisor of velocities in observations
	VelocityScale float64 = 10.0
)

// ObservationEncoder encodes the state of the agent and projectile
// into a fixed-length observation vector. Observations are:
//
//	[0] projectile x relative to the agent / half size
//	[1] projectile y relative to the agent / spawn height
//	[2] projectile z relative to the agent / half size
//	[3] projectile x velocity / velocity scale
//	[4] projectile y velocity / velocity scale
//	[5] projectile z velocity / velocity scale
//	[6] agent x velocity / velocity scale
//	[7] agent z velocity / velocity scale
//	[8] 1 if the projectile is directly above the agent, otherwise 0
//
// If no projectile exists, the observation is all zeroes.
type ObservationEncoder struct {
	halfSize      float64
	spawnHeight   float64
	velocityScale float64
}

// NewObservationEncoder returns a new ObservationEncoder normalizing
// by the geometry of arena a
func NewObservationEncoder(a ArenaConfig) ObservationEncoder {
	return ObservationEncoder{
		halfSize:      a.HalfSize,
		spawnHeight:   a.SpawnHeight,
		velocityScale: a.VelocityScale,
	}
}

// Encode returns the observation of the agent and projectile states
func (o ObservationEncoder) Encode(agent AgentState, p ProjectileState,
	overhead bool) *mat.VecDense {
	obs := mat.NewVecDense(ObservationDims, nil)
	if !p.Exists {
		return obs
	}

	obs.SetVec(0, (p.Position.X-agent.Position.X)/o.halfSize)
	obs.SetVec(1, (p.Position.Y-agent.Position.Y)/o.spawnHeight)
	obs.SetVec(2, (p.Position.Z-agent.Position.Z)/o.halfSize)

	obs.SetVec(3, p.Velocity.X/o.velocityScale)
	obs.SetVec(4, p.Velocity.Y/o.velocityScale)
	obs.SetVec(5, p.Velocity.Z/o.velocityScale)

	obs.SetVec(6, agent.Velocity.X/o.velocityScale)
	obs.SetVec(7, agent.Velocity.Y/o.velocityScale)

	if overhead {
		obs.SetVec(8, 1.0)
	}

	return obs
}
