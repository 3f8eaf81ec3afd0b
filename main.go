package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/ttacon/chalk"

	"github.com/samuelfneumann/fallingtrash/agent"
	"github.com/samuelfneumann/fallingtrash/agent/heuristic"
	"github.com/samuelfneumann/fallingtrash/effects"
	"github.com/samuelfneumann/fallingtrash/environment/envconfig"
	"github.com/samuelfneumann/fallingtrash/environment/fallingtrash"
	"github.com/samuelfneumann/fallingtrash/experiment"
	"github.com/samuelfneumann/fallingtrash/experiment/tracker"
	"github.com/samuelfneumann/fallingtrash/experiment/trackers"
	ts "github.com/samuelfneumann/fallingtrash/timestep"
)

const appName = "fallingtrash"

// telemetry prints the telemetry of each finished episode. Lines are
// coloured by the flash the environment raised for the episode outcome,
// or by the sign of the episode's return if no flash was raised.
type telemetry struct {
	env *fallingtrash.FallingTrash
}

func (t *telemetry) Track(step ts.TimeStep) {
	if !step.Last() {
		return
	}

	tel := t.env.Telemetry()
	colour := chalk.Green
	if tel.CumulativeReward < 0 {
		colour = chalk.Red
	}

	for _, flash := range t.env.Effects().Drain() {
		colour = chalk.Red
		if flash.Colour == effects.Success {
			colour = chalk.Green
		}
	}
	fmt.Println(colour.Color(tel.String()))
}

func (t *telemetry) Save() error { return nil }

func main() {
	configPath := flag.String("config", "", "experiment configuration "+
		"JSON file; defaults are used if empty")
	policy := flag.String("agent", "chaser", "agent to run if no "+
		"configuration file is given: random or chaser")
	steps := flag.Uint("steps", 10_000, "number of steps to run if no "+
		"configuration file is given")
	seed := flag.Uint64("seed", 1, "random seed")
	storeType := flag.String("store", "file", "where to save tracked "+
		"data: file or gdata")
	out := flag.String("out", "./data", "directory to save data to when "+
		"using the file store")
	quiet := flag.Bool("quiet", false, "do not print episode telemetry")
	flag.Parse()

	config, err := loadConfig(*configPath, *policy, *steps)
	if err != nil {
		log.Fatalf("could not load configuration: %v", err)
	}

	store, err := openStore(*storeType, *out)
	if err != nil {
		log.Fatalf("could not open store: %v", err)
	}

	returns := trackers.NewReturn(store, "return")
	lengths := trackers.NewEpisodeLength(store, "length")
	exp, err := config.CreateExp(*seed, returns, lengths)
	if err != nil {
		log.Fatalf("could not create experiment: %v", err)
	}

	env := exp.Environment.(*fallingtrash.FallingTrash)
	outcomes := trackers.NewOutcome(env, store, "outcome")
	exp.Register(outcomes)
	if !*quiet {
		exp.Register(&telemetry{env})
		exp.SetProgress(nil)
	}

	fmt.Println(chalk.Yellow.Color(fmt.Sprintf("Running %v agent for %d "+
		"steps with the %v integrator", config.AgentConf.Type,
		config.MaxSteps, config.EnvConf.Integrator)))

	if err := exp.Run(); err != nil {
		log.Fatalf("experiment failed: %v", err)
	}
	if err := exp.Save(); err != nil {
		log.Fatalf("could not save data: %v", err)
	}

	mean, min, max := returns.Summary()
	log.Printf("episodes: %d | mean return: %.3f | min: %.3f | max: %.3f",
		len(returns.Returns()), mean, min, max)
	log.Printf("catch rate: %.3f", outcomes.CatchRate())
}

// loadConfig loads the experiment configuration at path, or constructs
// the default configuration for the named agent if path is empty
func loadConfig(path, policy string, steps uint) (experiment.Config,
	error) {
	if path != "" {
		return experiment.Load(path)
	}

	var agentConf agent.Config
	switch policy {
	case "random":
		agentConf = heuristic.RandomConfig{}
	case "chaser":
		agentConf = heuristic.DefaultChaser()
	default:
		return experiment.Config{}, fmt.Errorf("no such agent %q", policy)
	}

	return experiment.Config{
		Type:      experiment.OnlineExp,
		MaxSteps:  steps,
		EnvConf:   envconfig.Default(),
		AgentConf: agent.NewTypedConfig(agentConf),
	}, nil
}

// openStore opens the named tracker store
func openStore(storeType, dir string) (tracker.Store, error) {
	switch storeType {
	case "file":
		return tracker.NewFileStore(dir)
	case "gdata":
		return tracker.NewGDataStore(appName)
	}
	return nil, fmt.Errorf("no such store %q", storeType)
}
