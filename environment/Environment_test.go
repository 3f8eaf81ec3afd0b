package environment

import (
	"math"
	"testing"

	ts "github.com/samuelfneumann/fallingtrash/timestep"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestUniformStarterBounds(t *testing.T) {
	bounds := []r1.Interval{
		{Min: -2, Max: 2},
		{Min: 0.5, Max: 0.5},
		{Min: 0, Max: 6.28},
	}
	s := NewUniformStarter(bounds, 42)

	for i := 0; i < 1000; i++ {
		start := s.Start()
		if start.Len() != len(bounds) {
			t.Fatalf("start: want(%v) have(%v) features", len(bounds),
				start.Len())
		}
		for j, b := range bounds {
			if v := start.AtVec(j); v < b.Min || v > b.Max {
				t.Errorf("feature %v: %v ∉ [%v, %v]", j, v, b.Min, b.Max)
			}
		}
	}
}

func TestUniformStarterDeterministic(t *testing.T) {
	bounds := []r1.Interval{{Min: -1, Max: 1}, {Min: -1, Max: 1}}
	a, b := NewUniformStarter(bounds, 7), NewUniformStarter(bounds, 7)

	for i := 0; i < 10; i++ {
		if !mat.Equal(a.Start(), b.Start()) {
			t.Fatal("starters with the same seed should agree")
		}
	}
}

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(5)
	step := ts.New(ts.Mid, 0, 1, mat.NewVecDense(1, nil), 4)
	if limit.End(&step) {
		t.Error("step 4 should not reach a limit of 5")
	}

	step.Number = 5
	if !limit.End(&step) {
		t.Error("step 5 should reach a limit of 5")
	}
	if !step.Last() || step.EndType() != ts.Timeout {
		t.Errorf("want(Last, Timeout) have(%v, %v)", step.StepType,
			step.EndType())
	}

	disabled := NewStepLimit(0)
	step = ts.New(ts.Mid, 0, 1, mat.NewVecDense(1, nil), 1_000_000)
	if disabled.End(&step) {
		t.Error("a zero step limit should never end an episode")
	}
}

func TestFunctionEnder(t *testing.T) {
	ender := NewFunctionEnder(func(s ts.TimeStep) bool {
		return s.Observation.AtVec(0) > 1
	}, ts.TerminalStateReached)

	step := ts.New(ts.Mid, 0, 1, mat.NewVecDense(1, []float64{0.5}), 1)
	if ender.End(&step) || step.Last() {
		t.Error("function ender should not end when the condition is false")
	}

	step.Observation.SetVec(0, 2)
	if !ender.End(&step) || step.EndType() != ts.TerminalStateReached {
		t.Errorf("want(TerminalStateReached) have(%v)", step.EndType())
	}
	if !step.Last() {
		t.Error("ended step should be last")
	}
}

func TestSpecContains(t *testing.T) {
	shape := mat.NewVecDense(1, nil)
	discrete := NewSpec(shape, Action, mat.NewVecDense(1, []float64{0}),
		mat.NewVecDense(1, []float64{3}), Discrete)
	continuous := NewSpec(shape, Observation,
		mat.NewVecDense(1, []float64{-1}), mat.NewVecDense(1, []float64{1}),
		Continuous)

	tests := []struct {
		spec Spec
		v    []float64
		want bool
	}{
		{discrete, []float64{0}, true},
		{discrete, []float64{3}, true},
		{discrete, []float64{4}, false},
		{discrete, []float64{-1}, false},
		{discrete, []float64{1.5}, false},
		{discrete, []float64{math.NaN()}, false},
		{discrete, []float64{math.Inf(1)}, false},
		{discrete, []float64{1, 2}, false},
		{continuous, []float64{0.25}, true},
		{continuous, []float64{-1}, true},
		{continuous, []float64{1.01}, false},
	}

	for _, test := range tests {
		v := mat.NewVecDense(len(test.v), test.v)
		if have := test.spec.Contains(v); have != test.want {
			t.Errorf("%v spec contains %v: want(%v) have(%v)",
				test.spec.Cardinality, test.v, test.want, have)
		}
	}
}

func TestSpecValues(t *testing.T) {
	shape := mat.NewVecDense(1, nil)
	discrete := NewSpec(shape, Action, mat.NewVecDense(1, []float64{0}),
		mat.NewVecDense(1, []float64{3}), Discrete)
	if n, err := discrete.Values(); err != nil || n != 4 {
		t.Errorf("values: want(4, nil) have(%v, %v)", n, err)
	}

	continuous := NewSpec(shape, Action, mat.NewVecDense(1, []float64{0}),
		mat.NewVecDense(1, []float64{3}), Continuous)
	if _, err := continuous.Values(); err == nil {
		t.Error("continuous spec: expected error")
	}

	offset := NewSpec(shape, Action, mat.NewVecDense(1, []float64{1}),
		mat.NewVecDense(1, []float64{3}), Discrete)
	if _, err := offset.Values(); err == nil {
		t.Error("spec not starting at 0: expected error")
	}
}

func TestNewSpecPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("inverted bounds: expected panic")
		}
	}()
	NewSpec(mat.NewVecDense(1, nil), Reward, mat.NewVecDense(1, []float64{1}),
		mat.NewVecDense(1, []float64{0}), Continuous)
}
