package fallingtrash

import "math"

// IsOutOfBounds returns whether the projectile has left the arena. The
// projectile is out of bounds when it is more than half size plus
// margin from the arena center along either horizontal axis, or more
// than margin below the ground. A projectile that does not exist is
// always out of bounds.
func IsOutOfBounds(p ProjectileState, a ArenaConfig) bool {
	if !p.Exists {
		return true
	}

	limit := a.HalfSize + a.Margin
	dx := math.Abs(p.Position.X - a.Center.X)
	dz := math.Abs(p.Position.Z - a.Center.Z)

	return dx > limit || dz > limit || p.Position.Y < a.GroundHeight-a.Margin
}
