package heuristic

import (
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/fallingtrash/agent"
	"github.com/samuelfneumann/fallingtrash/environment"
	"github.com/samuelfneumann/fallingtrash/timestep"
	"gonum.org/v1/gonum/mat"
)

// RandomConfig configures a Random agent
type RandomConfig struct{}

// CreateAgent creates a Random agent
func (r RandomConfig) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	return NewRandom(env, seed)
}

// Validate returns nil, since a RandomConfig is always valid
func (r RandomConfig) Validate() error { return nil }

// Type returns the type of agent the config creates
func (r RandomConfig) Type() agent.Type { return RandomType }

// Random selects actions uniformly at random
type Random struct {
	nonLearning
	actions int
	rng     *rand.Rand
}

// NewRandom returns a new Random agent for env, which must have
// 1-dimensional discrete actions
func NewRandom(env environment.Environment, seed uint64) (*Random, error) {
	actions, err := discreteActions(env)
	if err != nil {
		return nil, err
	}
	return &Random{
		actions: actions,
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// SelectAction selects an action uniformly at random
func (r *Random) SelectAction(t timestep.TimeStep) *mat.VecDense {
	a := float64(r.rng.Intn(r.actions))
	return mat.NewVecDense(1, []float64{a})
}
