package trackers

import (
	"testing"

	"github.com/samuelfneumann/fallingtrash/environment/fallingtrash"
	"github.com/samuelfneumann/fallingtrash/experiment/tracker"
	ts "github.com/samuelfneumann/fallingtrash/timestep"
)

// episode returns the timesteps of an episode with the given rewards
func episode(rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 1, nil, 0)}
	for i, r := range rewards {
		t := ts.Mid
		if i == len(rewards)-1 {
			t = ts.Last
		}
		steps = append(steps, ts.New(t, r, 1, nil, i+1))
	}
	return steps
}

type fakeTelemeter struct {
	outcome fallingtrash.Outcome
}

func (f *fakeTelemeter) Telemetry() fallingtrash.Telemetry {
	return fallingtrash.Telemetry{LastOutcome: f.outcome}
}

func TestReturn(t *testing.T) {
	store, err := tracker.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("newFileStore: %v", err)
	}
	r := NewReturn(store, "return")

	for _, s := range episode(1, 2, 3) {
		r.Track(s)
	}
	for _, s := range episode(-1, -1) {
		r.Track(s)
	}

	want := []float64{6, -2}
	have := r.Returns()
	if len(have) != len(want) || have[0] != want[0] || have[1] != want[1] {
		t.Errorf("returns: want(%v) have(%v)", want, have)
	}

	mean, min, max := r.Summary()
	if mean != 2 || min != -2 || max != 6 {
		t.Errorf("summary: want(2, -2, 6) have(%v, %v, %v)", mean, min, max)
	}

	if err := r.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	var saved []float64
	if err := tracker.Decode(store, "return", &saved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(saved) != 2 || saved[0] != 6 {
		t.Errorf("saved returns: want(%v) have(%v)", want, saved)
	}
}

func TestReturnNonSequential(t *testing.T) {
	r := NewReturn(nil, "return")
	r.Track(ts.New(ts.First, 0, 1, nil, 0))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on non-sequential timesteps")
		}
	}()
	r.Track(ts.New(ts.Mid, 0, 1, nil, 3))
}

func TestEpisodeLengthAndOutcome(t *testing.T) {
	telemeter := &fakeTelemeter{}
	e := NewEpisodeLength(nil, "length")
	o := NewOutcome(telemeter, nil, "outcome")

	for i, outcome := range []fallingtrash.Outcome{fallingtrash.Caught,
		fallingtrash.Landed, fallingtrash.Caught, fallingtrash.OutOfBounds} {
		telemeter.outcome = outcome
		rewards := make([]float64, i+1)
		for _, s := range episode(rewards...) {
			e.Track(s)
			o.Track(s)
		}
	}

	lengths := e.Lengths()
	for i, l := range lengths {
		if l != i+1 {
			t.Errorf("length %d: want(%v) have(%v)", i, i+1, l)
		}
	}
	if len(o.Outcomes()) != 4 || o.Outcomes()[1] != fallingtrash.Landed {
		t.Errorf("outcomes: have(%v)", o.Outcomes())
	}
	if rate := o.CatchRate(); rate != 0.5 {
		t.Errorf("catch rate: want(0.5) have(%v)", rate)
	}
}
