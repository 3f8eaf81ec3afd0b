// Package experiment implements functionality for running an experiment
package experiment

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/samuelfneumann/fallingtrash/agent"
	"github.com/samuelfneumann/fallingtrash/environment/envconfig"
	"github.com/samuelfneumann/fallingtrash/experiment/tracker"
	ts "github.com/samuelfneumann/fallingtrash/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// Experiments send each TimeStep to Trackers, which cache the data they
// need until Save is called. The Run() method will run all episodes
// until the maximum timestep limit is reached. The RunEpisode() method
// will run a single episode.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error) // Returns whether the step limit was reached

	// Tracks current timestep by sending it to Trackers
	track(ts.TimeStep)

	// Save all tracked data
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment
	Register(t tracker.Tracker)
}

type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// Config represents a configuration of an experiment
type Config struct {
	Type
	MaxSteps  uint
	EnvConf   envconfig.Config
	AgentConf agent.TypedConfig
}

// Load reads an experiment configuration from a JSON file. Environment
// fields missing from the file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not read config %v", path)
	}

	c := Config{Type: OnlineExp, EnvConf: envconfig.Default()}
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrapf(err, "could not parse config %v", path)
	}
	return c, errors.Wrapf(c.Validate(), "invalid config %v", path)
}

// Validate returns an error if the configuration is invalid
func (c Config) Validate() error {
	if c.Type != OnlineExp {
		return errors.Errorf("no such experiment type %v", c.Type)
	}
	if c.AgentConf.Config == nil {
		return errors.New("no agent configured")
	}
	if err := c.AgentConf.Validate(); err != nil {
		return errors.Wrap(err, "agent")
	}
	return errors.Wrap(c.EnvConf.Validate(), "environment")
}

// CreateExp creates the experiment described by the Config. The
// environment and agent are both seeded with seed.
func (c Config) CreateExp(seed uint64, t ...tracker.Tracker) (*Online,
	error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "createExp")
	}

	env, _, err := c.EnvConf.Create(seed)
	if err != nil {
		return nil, errors.Wrap(err, "createExp: could not create "+
			"environment")
	}

	a, err := c.AgentConf.CreateAgent(env, seed)
	if err != nil {
		return nil, errors.Wrap(err, "createExp: could not create agent")
	}

	return NewOnline(env, a, c.MaxSteps, t...), nil
}
