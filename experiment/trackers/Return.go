// Package trackers implements Trackers for Falling Trash experiments
package trackers

import (
	"fmt"

	"github.com/samuelfneumann/fallingtrash/experiment/tracker"
	ts "github.com/samuelfneumann/fallingtrash/timestep"
	"gonum.org/v1/gonum/floats"
)

// Return tracks and saves the episodic return in an experiment. When
// an environment returns a TimeStep, this Tracker will extract the
// reward and accumulate the return for each episode in the experiment.
//
// Note: An episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// return will not be saved.
type Return struct {
	lastTimeStep   int
	currentReturn  float64
	episodeReturns []float64
	store          tracker.Store
	key            string
}

// NewReturn creates and returns a new *Return Tracker which saves its
// data to s under key
func NewReturn(s tracker.Store, key string) *Return {
	return &Return{lastTimeStep: -1, store: s, key: key}
}

// Track tracks the rewards seen on a timestep. When a new episode
// starts, Track detects this and starts accumulating the rewards for
// the new episode separately.
//
// Track panics if it is called for non-sequential timesteps
func (r *Return) Track(step ts.TimeStep) {
	if step.First() {
		r.lastTimeStep = step.Number
		r.currentReturn = 0
		return
	}

	if r.lastTimeStep+1 != step.Number {
		panic(fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number))
	}
	r.lastTimeStep = step.Number
	r.currentReturn += step.Reward

	if step.Last() {
		r.episodeReturns = append(r.episodeReturns, r.currentReturn)
		r.currentReturn = 0
		r.lastTimeStep = 0
	}
}

// Returns returns the returns of all finished episodes
func (r *Return) Returns() []float64 {
	return r.episodeReturns
}

// Save saves the episodic returns
func (r *Return) Save() error {
	return tracker.Encode(r.store, r.key, r.episodeReturns)
}

// Summary returns the mean, minimum, and maximum return over all
// finished episodes. If no episode has finished, all are 0.
func (r *Return) Summary() (mean, min, max float64) {
	n := len(r.episodeReturns)
	if n == 0 {
		return 0, 0, 0
	}
	mean = floats.Sum(r.episodeReturns) / float64(n)
	return mean, floats.Min(r.episodeReturns), floats.Max(r.episodeReturns)
}
