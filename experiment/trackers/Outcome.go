package trackers

import (
	"github.com/samuelfneumann/fallingtrash/environment/fallingtrash"
	"github.com/samuelfneumann/fallingtrash/experiment/tracker"
	"github.com/samuelfneumann/fallingtrash/timestep"
	"gonum.org/v1/gonum/floats"
)

// Telemeter is an environment reporting episode telemetry
type Telemeter interface {
	Telemetry() fallingtrash.Telemetry
}

// Outcome tracks how each episode of a Falling Trash environment ended
type Outcome struct {
	env      Telemeter
	outcomes []fallingtrash.Outcome
	store    tracker.Store
	key      string
}

// NewOutcome returns a new Outcome tracker reading outcomes from env
// and saving them to s under key
func NewOutcome(env Telemeter, s tracker.Store, key string) *Outcome {
	return &Outcome{env: env, store: s, key: key}
}

// Track records the outcome of the episode if t is its last timestep
func (o *Outcome) Track(t timestep.TimeStep) {
	if t.Last() {
		o.outcomes = append(o.outcomes, o.env.Telemetry().LastOutcome)
	}
}

// Outcomes returns the outcomes of all finished episodes
func (o *Outcome) Outcomes() []fallingtrash.Outcome {
	return o.outcomes
}

// CatchRate returns the fraction of finished episodes in which the
// projectile was caught
func (o *Outcome) CatchRate() float64 {
	if len(o.outcomes) == 0 {
		return 0
	}

	caught := make([]float64, len(o.outcomes))
	for i, outcome := range o.outcomes {
		if outcome.Success() {
			caught[i] = 1
		}
	}
	return floats.Sum(caught) / float64(len(caught))
}

// Save saves the episode outcomes
func (o *Outcome) Save() error {
	return tracker.Encode(o.store, o.key, o.outcomes)
}
