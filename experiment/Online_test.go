package experiment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/fallingtrash/agent"
	"github.com/samuelfneumann/fallingtrash/agent/heuristic"
	"github.com/samuelfneumann/fallingtrash/environment/envconfig"
	"github.com/samuelfneumann/fallingtrash/environment/fallingtrash"
	"github.com/samuelfneumann/fallingtrash/experiment/tracker"
	"github.com/samuelfneumann/fallingtrash/experiment/trackers"
)

func TestOnline(t *testing.T) {
	store, err := tracker.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("newFileStore: %v", err)
	}

	c := Config{
		Type:      OnlineExp,
		MaxSteps:  1000,
		EnvConf:   envconfig.Default(),
		AgentConf: agent.NewTypedConfig(heuristic.DefaultChaser()),
	}

	returns := trackers.NewReturn(store, "return")
	lengths := trackers.NewEpisodeLength(store, "length")

	exp, err := c.CreateExp(3, returns, lengths)
	if err != nil {
		t.Fatalf("createExp: %v", err)
	}
	exp.SetProgress(nil)

	env := exp.Environment.(*fallingtrash.FallingTrash)
	outcomes := trackers.NewOutcome(env, store, "outcome")
	exp.Register(outcomes)

	if err := exp.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if exp.Steps() != c.MaxSteps {
		t.Errorf("steps: want(%v) have(%v)", c.MaxSteps, exp.Steps())
	}

	if err := exp.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	var savedReturns []float64
	if err := tracker.Decode(store, "return", &savedReturns); err != nil {
		t.Fatalf("decode returns: %v", err)
	}
	var savedLengths []int
	if err := tracker.Decode(store, "length", &savedLengths); err != nil {
		t.Fatalf("decode lengths: %v", err)
	}
	var savedOutcomes []fallingtrash.Outcome
	if err := tracker.Decode(store, "outcome", &savedOutcomes); err != nil {
		t.Fatalf("decode outcomes: %v", err)
	}

	n := len(savedReturns)
	if n == 0 || len(savedLengths) != n || len(savedOutcomes) != n {
		t.Fatalf("episode counts differ: returns(%v) lengths(%v) "+
			"outcomes(%v)", n, len(savedLengths), len(savedOutcomes))
	}

	total := 0
	for _, l := range savedLengths {
		total += l
	}
	if total > int(c.MaxSteps) {
		t.Errorf("total episode length %v exceeds max steps %v", total,
			c.MaxSteps)
	}

	if rate := outcomes.CatchRate(); rate < 0 || rate > 1 {
		t.Errorf("catch rate %v ∉ [0, 1]", rate)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.json")
	data := []byte(`{
		"Type": "OnlineExperiment",
		"MaxSteps": 50,
		"EnvConf": {"integrator": "box2d"},
		"AgentConf": {"Type": "Random", "Config": {}}
	}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("could not write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.MaxSteps != 50 || c.EnvConf.Integrator != envconfig.Box2D ||
		c.AgentConf.Type != heuristic.RandomType {
		t.Errorf("loaded config: have(%+v)", c)
	}
	if c.EnvConf.Arena != envconfig.Default().Arena {
		t.Error("environment defaults not kept")
	}

	exp, err := c.CreateExp(0)
	if err != nil {
		t.Fatalf("createExp: %v", err)
	}
	exp.SetProgress(nil)
	if err := exp.Run(); err != nil {
		t.Errorf("run: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := map[string]string{
		"type":  `{"Type": "Offline", "AgentConf": {"Type": "Random"}}`,
		"agent": `{"Type": "OnlineExperiment"}`,
		"env": `{"Type": "OnlineExperiment", "EnvConf": {"discount": 2},
			"AgentConf": {"Type": "Random"}}`,
	}

	for name, data := range bad {
		path := filepath.Join(dir, name+".json")
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatalf("could not write config: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%v: expected error", name)
		}
	}
}
