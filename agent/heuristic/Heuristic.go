// Package heuristic implements non-learning agents for the Falling Trash
// environment. Heuristic agents drive the environment from the command
// line and serve as baselines for learning agents.
package heuristic

import (
	"fmt"

	"github.com/samuelfneumann/fallingtrash/agent"
	"github.com/samuelfneumann/fallingtrash/environment"
	"github.com/samuelfneumann/fallingtrash/timestep"
	"gonum.org/v1/gonum/mat"
)

const (
	RandomType agent.Type = "Random"
	ChaserType agent.Type = "Chaser"
)

func init() {
	agent.Register(RandomType, RandomConfig{})
	agent.Register(ChaserType, ChaserConfig{})
}

// nonLearning implements the agent.Learner interface with no-ops
type nonLearning struct{}

func (nonLearning) Step() error { return nil }

func (nonLearning) Observe(mat.Vector, timestep.TimeStep) error { return nil }

func (nonLearning) ObserveFirst(timestep.TimeStep) error { return nil }

func (nonLearning) EndEpisode() {}

// discreteActions returns the number of actions of an environment with
// 1-dimensional discrete actions starting at 0
func discreteActions(env environment.Environment) (int, error) {
	n, err := env.ActionSpec().Values()
	if err != nil {
		return 0, fmt.Errorf("discreteActions: %v", err)
	}
	return n, nil
}
