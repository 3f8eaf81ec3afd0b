// Package planar implements a physics.Integrator backed by Box2D.
//
// A projectile thrown with no lateral spin moves in the vertical plane
// containing its spawn point and its horizontal launch direction. The
// Planar integrator simulates the projectile in that plane with a 2D
// Box2D world, in which the ground is a static edge, and maps positions
// and velocities back into 3D after every world step.
package planar

import (
	"math"

	"github.com/ByteArena/box2d"
	"github.com/samuelfneumann/fallingtrash/physics"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// GroundExtent is the half-length of the ground edge in the plane
	GroundExtent float64 = 1000.0

	// Box2D solver iterations per world step
	VelocityIterations int = 8
	PositionIterations int = 3

	Density  float64 = 1.0
	Friction float64 = 0.4
)

type bodyKind int

const (
	groundBody bodyKind = iota
	projectileBody
)

// contactDetector records contact between the projectile and the ground
type contactDetector struct {
	p *Planar
}

func (c *contactDetector) BeginContact(contact box2d.B2ContactInterface) {
	a := contact.GetFixtureA().GetBody().GetUserData()
	b := contact.GetFixtureB().GetBody().GetUserData()

	if (a == groundBody && b == projectileBody) ||
		(a == projectileBody && b == groundBody) {
		c.p.groundContact = true
	}
}

func (c *contactDetector) EndContact(contact box2d.B2ContactInterface) {}

func (c *contactDetector) PreSolve(contact box2d.B2ContactInterface,
	oldManifold box2d.B2Manifold) {
}

func (c *contactDetector) PostSolve(contact box2d.B2ContactInterface,
	impulse *box2d.B2ContactImpulse) {
}

// Planar implements the physics.Integrator interface using Box2D
type Planar struct {
	config physics.Config

	world      box2d.B2World
	ground     *box2d.B2Body
	projectile *box2d.B2Body
	radius     float64

	// The simulation plane passes through origin and is spanned by the
	// horizontal unit vector axis and the world up vector
	origin r3.Vec
	axis   r3.Vec

	groundContact bool // Set by the contact listener
	grounded      bool // Whether GroundContact has been reported
	catch         physics.Trigger
}

// New returns a new Planar integrator
func New(c physics.Config) (*Planar, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	p := &Planar{config: c}
	p.world = box2d.MakeB2World(box2d.MakeB2Vec2(0, -c.Gravity))
	p.world.SetContactListener(&contactDetector{p})

	groundDef := box2d.MakeB2BodyDef()
	groundDef.Type = box2d.B2BodyType.B2_staticBody
	p.ground = p.world.CreateBody(&groundDef)
	p.ground.SetUserData(groundBody)

	groundShape := box2d.NewB2EdgeShape()
	groundShape.Set(
		box2d.MakeB2Vec2(-GroundExtent, c.GroundHeight),
		box2d.MakeB2Vec2(GroundExtent, c.GroundHeight),
	)
	groundFix := box2d.MakeB2FixtureDef()
	groundFix.Shape = groundShape
	groundFix.Friction = Friction
	p.ground.CreateFixtureFromDef(&groundFix)

	return p, nil
}

// Spawn creates the projectile with the argument initial state,
// replacing any existing projectile
func (p *Planar) Spawn(b physics.Body) {
	p.Destroy()

	horizontal := r3.Vec{X: b.Velocity.X, Z: b.Velocity.Z}
	speed := r3.Norm(horizontal)
	if speed > 0 {
		p.axis = r3.Scale(1/speed, horizontal)
	} else {
		p.axis = r3.Vec{X: 1}
	}
	p.origin = r3.Vec{X: b.Position.X, Z: b.Position.Z}
	p.radius = b.Radius

	def := box2d.MakeB2BodyDef()
	def.Type = box2d.B2BodyType.B2_dynamicBody
	def.Position = box2d.MakeB2Vec2(0, b.Position.Y)
	def.LinearVelocity = box2d.MakeB2Vec2(speed, b.Velocity.Y)
	def.AllowSleep = false
	def.FixedRotation = true
	def.Bullet = true

	p.projectile = p.world.CreateBody(&def)
	p.projectile.SetUserData(projectileBody)

	shape := box2d.MakeB2CircleShape()
	shape.SetRadius(b.Radius)

	fixture := box2d.MakeB2FixtureDef()
	fixture.Shape = &shape
	fixture.Density = Density
	fixture.Friction = Friction
	fixture.Restitution = 0.0
	p.projectile.CreateFixtureFromDef(&fixture)

	p.groundContact = false
	p.grounded = false
	p.catch.Reset()
}

// Destroy removes the projectile, if any
func (p *Planar) Destroy() {
	if p.projectile == nil {
		return
	}
	p.world.DestroyBody(p.projectile)
	p.projectile = nil
	p.groundContact = false
	p.grounded = false
	p.catch.Reset()
}

// Projectile returns the current projectile state in 3D and whether a
// projectile exists
func (p *Planar) Projectile() (physics.Body, bool) {
	if p.projectile == nil {
		return physics.Body{}, false
	}

	pos := p.projectile.GetPosition()
	vel := p.projectile.GetLinearVelocity()

	return physics.Body{
		Position: p.to3D(pos.X, pos.Y),
		Velocity: r3.Add(r3.Scale(vel.X, p.axis), r3.Vec{Y: vel.Y}),
		Radius:   p.radius,
	}, true
}

// Advance steps the Box2D world forward by dt seconds
func (p *Planar) Advance(dt float64, catch r3.Box) []physics.Event {
	if p.projectile == nil {
		return nil
	}

	var events []physics.Event
	h := dt / float64(p.config.Substeps)
	for i := 0; i < p.config.Substeps; i++ {
		p.world.Step(h, VelocityIterations, PositionIterations)
		body, _ := p.Projectile()

		if p.catch.Update(body, catch) {
			events = append(events, physics.Event{
				Kind:     physics.CatchZoneEntered,
				Position: body.Position,
			})
		}

		if p.groundContact && !p.grounded {
			p.grounded = true
			events = append(events, physics.Event{
				Kind:     physics.GroundContact,
				Position: body.Position,
			})
		}
	}
	return events
}

// Raycast reports whether a ray hits the projectile collider
func (p *Planar) Raycast(origin, dir r3.Vec, length float64) bool {
	body, ok := p.Projectile()
	if !ok {
		return false
	}
	return physics.RaySphere(origin, dir, length, body.Position, body.Radius)
}

// to3D maps plane coordinates (s, y) into world coordinates
func (p *Planar) to3D(s, y float64) r3.Vec {
	pos := r3.Add(p.origin, r3.Scale(s, p.axis))
	pos.Y = y
	return pos
}

// PlaneAngle returns the heading of the simulation plane in radians,
// measured from +X towards +Z
func (p *Planar) PlaneAngle() float64 {
	return math.Atan2(p.axis.Z, p.axis.X)
}
