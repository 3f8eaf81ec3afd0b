package heuristic

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/fallingtrash/agent"
	"github.com/samuelfneumann/fallingtrash/environment"
	"github.com/samuelfneumann/fallingtrash/environment/fallingtrash"
	"github.com/samuelfneumann/fallingtrash/physics"
	"github.com/samuelfneumann/fallingtrash/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/stat/distuv"
)

// NoOp is the action a Chaser selects when it is already under the
// predicted landing point. The environment treats it as illegal and
// leaves the agent in place.
const NoOp float64 = float64(fallingtrash.MaxDiscreteAction + 1)

// ChaserConfig configures a Chaser agent. The arena fields must match
// the environment the Chaser acts in, since they are used to undo the
// normalization of observations.
type ChaserConfig struct {
	HalfSize      float64
	SpawnHeight   float64
	VelocityScale float64
	Gravity       float64

	// CatchHeight is the height of the catch volume above the agent
	// position
	CatchHeight float64

	// Tolerance is the horizontal distance to the predicted landing point
	// below which the Chaser stays in place
	Tolerance float64

	// Epsilon is the probability of selecting a random action
	Epsilon float64
}

// DefaultChaser returns the ChaserConfig for the default arena and
// scene
func DefaultChaser() ChaserConfig {
	return ChaserConfig{
		HalfSize:      fallingtrash.HalfSize,
		SpawnHeight:   fallingtrash.SpawnHeight,
		VelocityScale: fallingtrash.VelocityScale,
		Gravity:       physics.Gravity,
		CatchHeight:   0.5,
		Tolerance:     0.1,
	}
}

// CreateAgent creates a Chaser agent
func (c ChaserConfig) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	return NewChaser(c, env, seed)
}

// Validate returns an error if the config is invalid
func (c ChaserConfig) Validate() error {
	switch {
	case c.HalfSize <= 0 || c.SpawnHeight <= 0 || c.VelocityScale <= 0:
		return fmt.Errorf("validate: arena scales must be positive")
	case c.Gravity <= 0:
		return fmt.Errorf("validate: gravity must be positive, have %v",
			c.Gravity)
	case c.Tolerance < 0:
		return fmt.Errorf("validate: tolerance must be non-negative, have %v",
			c.Tolerance)
	case c.Epsilon < 0 || c.Epsilon > 1:
		return fmt.Errorf("validate: epsilon %v ∉ [0, 1]", c.Epsilon)
	}
	return nil
}

// Type returns the type of agent the config creates
func (c ChaserConfig) Type() agent.Type { return ChaserType }

// Chaser moves towards the point at which the projectile is predicted
// to pass through the height of the catch volume, assuming ballistic
// flight. With probability ε, a random action is selected instead.
type Chaser struct {
	nonLearning
	config  ChaserConfig
	actions int

	explore distuv.Bernoulli
	rng     *rand.Rand
}

// NewChaser returns a new Chaser agent
func NewChaser(c ChaserConfig, env environment.Environment,
	seed uint64) (*Chaser, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("newChaser: %v", err)
	}

	actions, err := discreteActions(env)
	if err != nil {
		return nil, fmt.Errorf("newChaser: %v", err)
	}
	if actions != fallingtrash.MaxDiscreteAction+1 {
		return nil, fmt.Errorf("newChaser: expected %d actions, have %d",
			fallingtrash.MaxDiscreteAction+1, actions)
	}

	src := rand.NewSource(seed)
	return &Chaser{
		config:  c,
		actions: actions,
		explore: distuv.Bernoulli{P: c.Epsilon, Src: src},
		rng:     rand.New(src),
	}, nil
}

// Predict returns the predicted landing point of the projectile
// relative to the agent, given an observation
func (c *Chaser) Predict(obs mat.Vector) r2.Vec {
	rel := r2.Vec{
		X: obs.AtVec(0) * c.config.HalfSize,
		Y: obs.AtVec(2) * c.config.HalfSize,
	}
	height := obs.AtVec(1)*c.config.SpawnHeight - c.config.CatchHeight
	vx := obs.AtVec(3) * c.config.VelocityScale
	vy := obs.AtVec(4) * c.config.VelocityScale
	vz := obs.AtVec(5) * c.config.VelocityScale

	// Time until the projectile falls to the catch height. Projectiles
	// already below the catch height are chased where they are.
	discriminant := vy*vy + 2*c.config.Gravity*height
	if height <= 0 || discriminant < 0 {
		return rel
	}
	t := (vy + math.Sqrt(discriminant)) / c.config.Gravity

	return r2.Add(rel, r2.Scale(t, r2.Vec{X: vx, Y: vz}))
}

// SelectAction selects the action which moves the agent closest to the
// predicted landing point
func (c *Chaser) SelectAction(t timestep.TimeStep) *mat.VecDense {
	if c.explore.Rand() == 1 {
		a := float64(c.rng.Intn(c.actions))
		return mat.NewVecDense(1, []float64{a})
	}

	target := c.Predict(t.Observation)

	// Target is (x, z) relative to the agent
	var a float64
	switch {
	case r2.Norm(target) <= c.config.Tolerance:
		a = NoOp
	case math.Abs(target.X) >= math.Abs(target.Y):
		a = float64(fallingtrash.Left)
		if target.X > 0 {
			a = float64(fallingtrash.Right)
		}
	default:
		a = float64(fallingtrash.Backward)
		if target.Y > 0 {
			a = float64(fallingtrash.Forward)
		}
	}
	return mat.NewVecDense(1, []float64{a})
}
