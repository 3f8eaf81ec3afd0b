package fallingtrash

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat/distuv"
)

// Edge is an edge of the square arena
type Edge int

const (
	PosX Edge = iota
	NegX
	PosZ
	NegZ
)

// Edges is the number of arena edges
const Edges int = 4

func (e Edge) String() string {
	switch e {
	case PosX:
		return "+X"
	case NegX:
		return "-X"
	case PosZ:
		return "+Z"
	case NegZ:
		return "-Z"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// Generate samples a spawn position and initial velocity for a
// projectile thrown from a uniformly random edge of the arena towards
// the arena center. The position along the edge and the throw angle are
// sampled uniformly. Given the same source state, Generate always
// returns the same trajectory.
func Generate(a ArenaConfig, src rand.Source) (spawn, velocity r3.Vec) {
	weights := make([]float64, Edges)
	for i := range weights {
		weights[i] = 1.0 / float64(Edges)
	}
	edge := Edge(distuv.NewCategorical(weights, src).Rand())

	offset := distuv.Uniform{Min: -a.HalfSize, Max: a.HalfSize, Src: src}
	angle := distuv.Uniform{
		Min: a.ThrowAngles.Min,
		Max: a.ThrowAngles.Max,
		Src: src,
	}

	return Launch(a, edge, offset.Rand(), angle.Rand())
}

// Launch returns the spawn position and initial velocity of a
// projectile thrown from edge e, displaced by offset along the edge,
// at angleDeg degrees above the horizontal. The horizontal component of
// the velocity points at the arena center and has magnitude equal to
// the arena's horizontal speed.
func Launch(a ArenaConfig, e Edge, offset, angleDeg float64) (spawn,
	velocity r3.Vec) {
	c := a.Center
	spawn = r3.Vec{X: c.X, Y: a.GroundHeight + a.SpawnHeight, Z: c.Z}

	switch e {
	case PosX:
		spawn.X = c.X + a.HalfSize
		spawn.Z = c.Z + offset
	case NegX:
		spawn.X = c.X - a.HalfSize
		spawn.Z = c.Z + offset
	case PosZ:
		spawn.Z = c.Z + a.HalfSize
		spawn.X = c.X + offset
	case NegZ:
		spawn.Z = c.Z - a.HalfSize
		spawn.X = c.X + offset
	default:
		panic(fmt.Sprintf("launch: illegal edge %v", e))
	}

	// The spawn is always half size away from center along the edge
	// axis, so the direction is never degenerate
	direction := r3.Unit(r3.Vec{X: c.X - spawn.X, Z: c.Z - spawn.Z})

	vertical := a.HorizontalSpeed * math.Tan(angleDeg*math.Pi/180)
	velocity = r3.Add(
		r3.Scale(a.HorizontalSpeed, direction),
		r3.Vec{Y: vertical},
	)

	return spawn, velocity
}
