package fallingtrash

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// ProjectileRadius is the default radius of the projectile collider
const ProjectileRadius float64 = 0.15

// Ground is the static ground plane of the scene
type Ground struct {
	Height float64
}

// Template describes the projectile spawned at the start of each
// episode
type Template struct {
	Radius float64
}

// CatchVolume is the axis-aligned trigger volume mounted on the agent.
// The volume is centered at the agent position plus Offset.
type CatchVolume struct {
	Offset      r3.Vec
	HalfExtents r3.Vec
}

// Box returns the volume in world coordinates for an agent at position
// p
func (c *CatchVolume) Box(p r3.Vec) r3.Box {
	center := r3.Add(p, c.Offset)
	return r3.Box{
		Min: r3.Sub(center, c.HalfExtents),
		Max: r3.Add(center, c.HalfExtents),
	}
}

// Scene holds the external references the environment needs. Ground,
// Template, and CatchVolume are required. Eyes are the offsets of the
// overhead sensing probes in the agent frame and may be empty.
type Scene struct {
	Ground      *Ground
	Template    *Template
	CatchVolume *CatchVolume
	Eyes        []r3.Vec
	RayLength   float64 // 0 uses the default length
}

// DefaultScene returns the default scene with the ground plane at
// height groundHeight. The catch volume is the open top of the bin and
// a single probe sits at its center.
func DefaultScene(groundHeight float64) Scene {
	return Scene{
		Ground:   &Ground{Height: groundHeight},
		Template: &Template{Radius: ProjectileRadius},
		CatchVolume: &CatchVolume{
			Offset:      r3.Vec{Y: 0.5},
			HalfExtents: r3.Vec{X: 0.5, Y: 0.25, Z: 0.5},
		},
		Eyes:      []r3.Vec{{Y: 0.5}},
		RayLength: RayLength,
	}
}

// Validate returns an error naming every missing or invalid reference
// in the scene
func (s Scene) Validate() error {
	var missing []string
	if s.Ground == nil {
		missing = append(missing, "ground")
	}
	if s.Template == nil {
		missing = append(missing, "projectile template")
	}
	if s.CatchVolume == nil {
		missing = append(missing, "catch volume")
	}
	if len(missing) > 0 {
		return fmt.Errorf("validate: missing scene references: %v",
			strings.Join(missing, ", "))
	}

	if s.Template.Radius <= 0 {
		return fmt.Errorf("validate: projectile radius must be positive, "+
			"have %v", s.Template.Radius)
	}
	h := s.CatchVolume.HalfExtents
	if h.X <= 0 || h.Y <= 0 || h.Z <= 0 {
		return fmt.Errorf("validate: catch volume half extents must be "+
			"positive, have %v", h)
	}
	return nil
}
