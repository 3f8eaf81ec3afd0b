package fallingtrash

import (
	"fmt"

	"github.com/samuelfneumann/fallingtrash/environment"
	"github.com/samuelfneumann/fallingtrash/physics"
	ts "github.com/samuelfneumann/fallingtrash/timestep"
	"gonum.org/v1/gonum/mat"
)

// fallingTrashTask is a Task that reads the world of a FallingTrash
// environment to compute rewards and episode ends
type fallingTrashTask interface {
	environment.Task
	registerEnv(*FallingTrash)
	reset()
	Outcome() Outcome
}

// outcomeEnder ends an episode with a specific outcome
type outcomeEnder struct {
	outcome Outcome
	environment.Ender
}

// Catch implements the task of catching the falling projectile. An
// episode ends the first time any of the following occurs on a step,
// checked in priority order:
//
//  1. The projectile enters the catch volume
//  2. The projectile touches the ground
//  3. The projectile leaves the arena
//  4. The host forces a miss
//
// Each step is rewarded with a dense tracking reward plus, on the last
// step, the terminal reward of the outcome. Optionally, episodes are
// cut off after a fixed number of steps with no terminal reward.
type Catch struct {
	environment.Starter
	shaper    *RewardShaper
	enders    []outcomeEnder
	stepLimit *environment.StepLimit

	outcome Outcome
	env     *FallingTrash
}

// NewCatch returns a new Catch task. If cutoff is 0, episodes only end
// through terminal events.
func NewCatch(s environment.Starter, r RewardConfig, cutoff int) (*Catch,
	error) {
	if s == nil {
		return nil, fmt.Errorf("newCatch: nil starter")
	}
	if cutoff < 0 {
		return nil, fmt.Errorf("newCatch: cutoff must be non-negative, "+
			"have %v", cutoff)
	}

	shaper, err := NewRewardShaper(r)
	if err != nil {
		return nil, fmt.Errorf("newCatch: %v", err)
	}

	c := &Catch{
		Starter:   s,
		shaper:    shaper,
		stepLimit: environment.NewStepLimit(cutoff),
	}

	for _, o := range []Outcome{Caught, Landed, OutOfBounds, Missed} {
		o := o
		end := func(ts.TimeStep) bool { return c.occurred(o) }
		c.enders = append(c.enders, outcomeEnder{
			outcome: o,
			Ender: environment.NewFunctionEnder(end,
				ts.TerminalStateReached),
		})
	}

	return c, nil
}

func (c *Catch) registerEnv(env *FallingTrash) {
	c.env = env
}

func (c *Catch) reset() {
	c.outcome = NoOutcome
}

// occurred returns whether outcome o occurred on the last step
func (c *Catch) occurred(o Outcome) bool {
	if c.env == nil {
		return false
	}

	w := &c.env.world
	switch o {
	case Caught:
		_, ok := w.event(physics.CatchZoneEntered)
		return ok
	case Landed:
		_, ok := w.event(physics.GroundContact)
		return ok
	case OutOfBounds:
		return w.outOfBounds
	case Missed:
		_, ok := w.event(physics.Missed)
		return ok
	default:
		return false
	}
}

// resolve returns the highest priority outcome which occurred on the
// last step
func (c *Catch) resolve() Outcome {
	for _, e := range c.enders {
		if c.occurred(e.outcome) {
			return e.outcome
		}
	}
	return NoOutcome
}

// GetReward returns the reward for the last step of the registered
// environment
func (c *Catch) GetReward(state, action, nextState mat.Vector) float64 {
	if c.env == nil {
		return 0
	}
	w := &c.env.world

	reward := c.shaper.Dense(w.prevDistance, w.distance, w.overhead)

	o := c.resolve()
	landing := 0.0
	if o == Landed {
		e, _ := w.event(physics.GroundContact)
		landing = horizontalDistance(e.Position, w.agent.Position)
	}

	return reward + c.shaper.Terminal(o, landing)
}

// End determines whether the episode should end, adjusting t to be the
// last step of the episode if so. Terminal outcomes take precedence
// over the step limit.
func (c *Catch) End(t *ts.TimeStep) bool {
	for _, e := range c.enders {
		if e.End(t) {
			c.outcome = e.outcome
			return true
		}
	}
	return c.stepLimit.End(t)
}

// Outcome returns the outcome of the current episode, or NoOutcome if
// the episode has not ended or was cut off
func (c *Catch) Outcome() Outcome {
	return c.outcome
}

// AtGoal returns whether the projectile was caught on the last step
func (c *Catch) AtGoal(state mat.Matrix) bool {
	return c.occurred(Caught)
}

// Min returns the minimum attainable reward on a single step
func (c *Catch) Min() float64 {
	return c.shaper.Min()
}

// Max returns the maximum attainable reward on a single step
func (c *Catch) Max() float64 {
	return c.shaper.Max()
}

// RewardSpec returns the reward specification
func (c *Catch) RewardSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	min := mat.NewVecDense(1, []float64{c.Min()})
	max := mat.NewVecDense(1, []float64{c.Max()})

	return environment.NewSpec(shape, environment.Reward, min, max,
		environment.Continuous)
}

// Cutoff returns the episode step limit, or 0 if there is none
func (c *Catch) Cutoff() int {
	return c.stepLimit.Limit()
}
