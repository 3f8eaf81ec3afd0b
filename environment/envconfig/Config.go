// Package envconfig provides configuration structs for configuring the
// Falling Trash environment with default physical parameters and tasks.
// Environment configurations in this package are JSON serializable.
package envconfig

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/samuelfneumann/fallingtrash/environment/fallingtrash"
	"github.com/samuelfneumann/fallingtrash/physics"
	"github.com/samuelfneumann/fallingtrash/physics/planar"
	ts "github.com/samuelfneumann/fallingtrash/timestep"
	"gonum.org/v1/gonum/spatial/r3"
)

// TaskName stores the tasks that can be configured with this package
type TaskName string

const (
	Catch TaskName = "Catch"
)

// IntegratorName stores the physics integrators that can be configured
// with this package
type IntegratorName string

const (
	// Ballistic integrates projectiles under gravity in closed form
	Ballistic IntegratorName = "ballistic"

	// Box2D simulates projectiles with Box2D in their launch plane
	Box2D IntegratorName = "box2d"
)

// SceneConfig configures the scene references of the environment
type SceneConfig struct {
	ProjectileRadius float64  `json:"projectileRadius"`
	CatchOffset      r3.Vec   `json:"catchOffset"`
	CatchHalfExtents r3.Vec   `json:"catchHalfExtents"`
	Eyes             []r3.Vec `json:"eyes"`
	RayLength        float64  `json:"rayLength"`
}

// Config implements a specific configuration of the Falling Trash
// environment and its task
type Config struct {
	Task          TaskName       `json:"task"`
	Integrator    IntegratorName `json:"integrator"`
	EpisodeCutoff uint           `json:"episodeCutoff"`
	Discount      float64        `json:"discount"`

	Arena   fallingtrash.ArenaConfig  `json:"arena"`
	Reward  fallingtrash.RewardConfig `json:"reward"`
	Physics physics.Config            `json:"physics"`
	Scene   SceneConfig               `json:"scene"`
}

// Default returns the default configuration
func Default() Config {
	arena := fallingtrash.DefaultArena()
	scene := fallingtrash.DefaultScene(arena.GroundHeight)

	return Config{
		Task:          Catch,
		Integrator:    Ballistic,
		EpisodeCutoff: 0,
		Discount:      0.99,

		Arena:   arena,
		Reward:  fallingtrash.DefaultReward(),
		Physics: physics.DefaultConfig(arena.GroundHeight),
		Scene: SceneConfig{
			ProjectileRadius: scene.Template.Radius,
			CatchOffset:      scene.CatchVolume.Offset,
			CatchHalfExtents: scene.CatchVolume.HalfExtents,
			Eyes:             scene.Eyes,
			RayLength:        scene.RayLength,
		},
	}
}

// Load reads a JSON configuration from path. Fields missing from the
// file keep their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "could not read config %v", path)
	}

	c := Default()
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrapf(err, "could not parse config %v", path)
	}

	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %v", path)
	}
	return c, nil
}

// Save writes the configuration to path as indented JSON
func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not serialize config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644),
		"could not write config %v", path)
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	if c.Task != Catch {
		return errors.Errorf("no such task %q", c.Task)
	}
	if c.Integrator != Ballistic && c.Integrator != Box2D {
		return errors.Errorf("no such integrator %q", c.Integrator)
	}
	if c.Discount < 0 || c.Discount > 1 {
		return errors.Errorf("discount %v ∉ [0, 1]", c.Discount)
	}

	if err := c.Arena.Validate(); err != nil {
		return errors.Wrap(err, "arena")
	}
	if err := c.Reward.Validate(); err != nil {
		return errors.Wrap(err, "reward")
	}
	if err := c.Physics.Validate(); err != nil {
		return errors.Wrap(err, "physics")
	}
	if c.Physics.GroundHeight != c.Arena.GroundHeight {
		return errors.Errorf("physics ground height %v does not match "+
			"arena ground height %v", c.Physics.GroundHeight,
			c.Arena.GroundHeight)
	}

	return errors.Wrap(c.scene().Validate(), "scene")
}

// scene returns the scene described by the configuration
func (c Config) scene() fallingtrash.Scene {
	return fallingtrash.Scene{
		Ground:   &fallingtrash.Ground{Height: c.Arena.GroundHeight},
		Template: &fallingtrash.Template{Radius: c.Scene.ProjectileRadius},
		CatchVolume: &fallingtrash.CatchVolume{
			Offset:      c.Scene.CatchOffset,
			HalfExtents: c.Scene.CatchHalfExtents,
		},
		Eyes:      c.Scene.Eyes,
		RayLength: c.Scene.RayLength,
	}
}

// CreateIntegrator returns the physics integrator described by the
// configuration
func (c Config) CreateIntegrator() (physics.Integrator, error) {
	var integrator physics.Integrator
	var err error

	switch c.Integrator {
	case Ballistic:
		integrator, err = physics.NewBallistic(c.Physics)
	case Box2D:
		integrator, err = planar.New(c.Physics)
	default:
		return nil, errors.Errorf("no such integrator %q", c.Integrator)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "could not create %v integrator",
			c.Integrator)
	}
	return integrator, nil
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create(seed uint64) (*fallingtrash.FallingTrash,
	ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, errors.Wrap(err, "create")
	}

	starter := fallingtrash.NewStarter(c.Arena, seed)
	task, err := fallingtrash.NewCatch(starter, c.Reward,
		int(c.EpisodeCutoff))
	if err != nil {
		return nil, ts.TimeStep{}, errors.Wrap(err, "create")
	}

	integrator, err := c.CreateIntegrator()
	if err != nil {
		return nil, ts.TimeStep{}, errors.Wrap(err, "create")
	}

	env, step, err := fallingtrash.New(task, c.Arena, c.scene(), integrator,
		c.Discount, seed)
	return env, step, errors.Wrap(err, "create")
}
