package fallingtrash

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/fallingtrash/effects"
	"github.com/samuelfneumann/fallingtrash/environment"
	"github.com/samuelfneumann/fallingtrash/physics"
	ts "github.com/samuelfneumann/fallingtrash/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// Discrete actions
	Forward  int = iota // +z
	Backward            // -z
	Left                // -x
	Right               // +x

	MinDiscreteAction = Forward
	MaxDiscreteAction = Right
	ActionDims        = 1

	// StartDims is the length of starting state vectors, which hold the
	// x and z offsets of the agent from the arena center and the agent
	// heading
	StartDims = 3
)

// FallingTrash implements the Falling Trash catch environment. At the
// start of each episode, a projectile is thrown from a random edge of
// the arena towards its center. The agent moves on the ground plane and
// must catch the projectile in the catch volume mounted on top of it.
//
// Observations are 9-dimensional; see ObservationEncoder for their
// layout. Actions are 1-dimensional and discrete in (0, 1, 2, 3):
//
//	Action	Meaning
//	  0		Move forward (+z)
//	  1		Move backward (-z)
//	  2		Move left (-x)
//	  3		Move right (+x)
//
// Any other action leaves the agent in place. Each action moves the
// agent at the configured move speed for a single control step of
// duration Dt, after which the physics Integrator is advanced exactly
// once.
//
// After an episode ends, the next call to Step or Reset starts a new
// episode. A Step called on an ended episode is applied to the new
// episode.
//
// FallingTrash is not safe for concurrent use.
//
// FallingTrash implements the environment.Environment interface
type FallingTrash struct {
	environment.Task
	arena      ArenaConfig
	scene      Scene
	integrator physics.Integrator
	encoder    ObservationEncoder
	probes     SenseProbes
	discount   float64
	seed       uint64
	rng        *rand.Rand
	actions    environment.Spec

	state       State
	agent       AgentState
	metrics     EpisodeMetrics
	world       world
	currentStep ts.TimeStep
	missPending bool

	episode     int
	completed   int
	lastOutcome Outcome
	effects     *effects.Queue
}

// New returns a new FallingTrash environment, the first step of the
// first episode, and an error if the scene or arena are invalid.
func New(task environment.Task, arena ArenaConfig, scene Scene,
	integrator physics.Integrator, discount float64,
	seed uint64) (*FallingTrash, ts.TimeStep, error) {
	if err := arena.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: invalid arena: %v", err)
	}
	if err := scene.Validate(); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: invalid scene: %v", err)
	}
	if scene.Ground.Height != arena.GroundHeight {
		return nil, ts.TimeStep{}, fmt.Errorf("new: ground height %v does "+
			"not match arena ground height %v", scene.Ground.Height,
			arena.GroundHeight)
	}
	if integrator == nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: nil integrator")
	}
	if task == nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: nil task")
	}

	f := &FallingTrash{
		arena:      arena,
		scene:      scene,
		integrator: integrator,
		encoder:    NewObservationEncoder(arena),
		probes:     NewSenseProbes(scene.Eyes, scene.RayLength),
		discount:   discount,
		seed:       seed,
		rng:        rand.New(rand.NewSource(seed)),
		state:      NotStarted,
		effects:    effects.NewQueue(effects.MaxPending),
	}
	f.actions = f.ActionSpec()

	t, ok := task.(fallingTrashTask)
	if ok {
		t.registerEnv(f)
	}
	f.Task = task

	step, err := f.Reset()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("new: %v", err)
	}
	return f, step, nil
}

// Reset starts a new episode and returns its first step
func (f *FallingTrash) Reset() (ts.TimeStep, error) {
	start := f.Start()
	if start.Len() != StartDims {
		return ts.TimeStep{}, fmt.Errorf("reset: starting states must be "+
			"%d-dimensional, have %d", StartDims, start.Len())
	}

	if t, ok := f.Task.(fallingTrashTask); ok {
		t.reset()
	}

	c := f.arena.Center
	f.agent = AgentState{
		Position: r3.Vec{
			X: c.X + start.AtVec(0),
			Y: f.arena.GroundHeight + f.arena.AgentHeight,
			Z: c.Z + start.AtVec(1),
		},
		Heading: start.AtVec(2),
	}

	f.integrator.Destroy()
	spawn, velocity := Generate(f.arena, f.rng)
	f.integrator.Spawn(physics.Body{
		Position: spawn,
		Velocity: velocity,
		Radius:   f.scene.Template.Radius,
	})

	projectile := f.projectile()
	overhead := f.probes.Overhead(f.agent, f.integrator)
	distance := horizontalDistance(f.agent.Position, projectile.Position)

	f.metrics = EpisodeMetrics{PrevDistance: distance}
	f.world = world{
		agent:        f.agent,
		projectile:   projectile,
		prevDistance: distance,
		distance:     distance,
		overhead:     overhead,
	}
	f.missPending = false
	f.episode++
	f.state = Active

	obs := f.encoder.Encode(f.agent, projectile, overhead)
	f.currentStep = ts.New(ts.First, 0, f.discount, obs, 0)

	return f.currentStep, nil
}

// Step takes one environmental step given action a and returns the next
// timestep, whether the episode has ended, and an error if the action
// is malformed
func (f *FallingTrash) Step(a *mat.VecDense) (ts.TimeStep, bool, error) {
	if a.Len() != ActionDims {
		return ts.TimeStep{}, false, fmt.Errorf("step: actions must be "+
			"%d-dimensional, have %d", ActionDims, a.Len())
	}

	if f.state != Active {
		if _, err := f.Reset(); err != nil {
			return ts.TimeStep{}, false, fmt.Errorf("step: %v", err)
		}
	}

	f.move(a)

	catch := f.scene.CatchVolume.Box(f.agent.Position)
	events := f.integrator.Advance(f.arena.Dt, catch)
	projectile := f.projectile()

	if f.missPending {
		events = append(events, physics.Event{
			Kind:     physics.Missed,
			Position: projectile.Position,
		})
		f.missPending = false
	}

	overhead := f.probes.Overhead(f.agent, f.integrator)
	distance := f.metrics.PrevDistance
	if projectile.Exists {
		distance = horizontalDistance(f.agent.Position, projectile.Position)
	}

	f.world = world{
		agent:        f.agent,
		projectile:   projectile,
		events:       events,
		prevDistance: f.metrics.PrevDistance,
		distance:     distance,
		overhead:     overhead,
		outOfBounds:  IsOutOfBounds(projectile, f.arena),
	}

	obs := f.encoder.Encode(f.agent, projectile, overhead)
	reward := f.GetReward(f.currentStep.Observation, a, obs)

	step := ts.New(ts.Mid, reward, f.discount, obs, f.currentStep.Number+1)
	f.End(&step)

	f.metrics.PrevDistance = distance
	f.metrics.Steps = step.Number
	f.metrics.CumulativeReward += reward
	f.currentStep = step

	if step.Last() {
		f.finish()
	}

	return step, step.Last(), nil
}

// move applies an action to the agent. Actions outside the legal range
// leave the agent in place.
func (f *FallingTrash) move(a *mat.VecDense) {
	var direction r2.Vec
	if f.actions.Contains(a) {
		switch int(a.AtVec(0)) {
		case Forward:
			direction = r2.Vec{Y: 1}
		case Backward:
			direction = r2.Vec{Y: -1}
		case Left:
			direction = r2.Vec{X: -1}
		case Right:
			direction = r2.Vec{X: 1}
		}
	}

	// Agent velocities are (x, z)
	f.agent.Velocity = r2.Scale(f.arena.MoveSpeed, direction)
	f.agent.Position.X += f.agent.Velocity.X * f.arena.Dt
	f.agent.Position.Z += f.agent.Velocity.Y * f.arena.Dt
}

// finish ends the current episode, destroying the projectile and
// raising the presentation effect of the outcome
func (f *FallingTrash) finish() {
	f.state = Ended
	f.completed++
	f.integrator.Destroy()

	f.lastOutcome = NoOutcome
	if t, ok := f.Task.(fallingTrashTask); ok {
		f.lastOutcome = t.Outcome()
	}

	if f.lastOutcome == NoOutcome {
		return
	}
	colour := effects.Failure
	if f.lastOutcome == Caught ||
		(f.lastOutcome == Landed && f.currentStep.Reward >= 0) {
		colour = effects.Success
	}
	f.effects.Push(effects.NewFlash(colour, effects.FlashDuration))
}

// Miss forces the current episode to end with a missed catch on the
// next step. Hosts use Miss to report events the Integrator does not
// model, such as the projectile striking a wall.
func (f *FallingTrash) Miss() {
	if f.state == Active {
		f.missPending = true
	}
}

// projectile returns the current state of the projectile
func (f *FallingTrash) projectile() ProjectileState {
	return projectileFrom(f.integrator.Projectile())
}

// CurrentTimeStep returns the last timestep returned by Step or Reset
func (f *FallingTrash) CurrentTimeStep() ts.TimeStep {
	return f.currentStep
}

// Agent returns the current agent state
func (f *FallingTrash) Agent() AgentState {
	return f.agent
}

// Projectile returns the current projectile state
func (f *FallingTrash) Projectile() ProjectileState {
	return f.projectile()
}

// Arena returns the arena configuration
func (f *FallingTrash) Arena() ArenaConfig {
	return f.arena
}

// Seed returns the seed used to generate trajectories
func (f *FallingTrash) Seed() uint64 {
	return f.seed
}

// Effects returns the queue of pending presentation effects
func (f *FallingTrash) Effects() *effects.Queue {
	return f.effects
}

// Telemetry returns a snapshot of the current episode statistics
func (f *FallingTrash) Telemetry() Telemetry {
	return Telemetry{
		Episode:           f.episode,
		CompletedEpisodes: f.completed,
		Step:              f.metrics.Steps,
		CumulativeReward:  f.metrics.CumulativeReward,
		LastOutcome:       f.lastOutcome,
		State:             f.state,
	}
}

// ObservationSpec returns the observation specification of the
// environment. Bounds are nominal: positions are normalized by the
// arena geometry and may exceed [-1, 1] near the arena edges.
func (f *FallingTrash) ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(ObservationDims, nil)

	lower := make([]float64, ObservationDims)
	upper := make([]float64, ObservationDims)
	for i := range lower {
		lower[i] = -1
		upper[i] = 1
	}
	lower[ObservationDims-1] = 0

	return environment.NewSpec(shape, environment.Observation,
		mat.NewVecDense(ObservationDims, lower),
		mat.NewVecDense(ObservationDims, upper), environment.Continuous)
}

// ActionSpec returns the action specification of the environment
func (f *FallingTrash) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(ActionDims, nil)
	lowerBound := mat.NewVecDense(ActionDims,
		[]float64{float64(MinDiscreteAction)})
	upperBound := mat.NewVecDense(ActionDims,
		[]float64{float64(MaxDiscreteAction)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// DiscountSpec returns the discount specification of the environment
func (f *FallingTrash) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{f.discount})
	upperBound := mat.NewVecDense(1, []float64{f.discount})

	return environment.NewSpec(shape, environment.Discount, lowerBound,
		upperBound, environment.Continuous)
}

// NewStarter returns a Starter which samples agent starting states
// uniformly from the central region of arena a with a uniform heading
func NewStarter(a ArenaConfig, seed uint64) *environment.UniformStarter {
	return environment.NewUniformStarter(a.StartBounds(), seed)
}
