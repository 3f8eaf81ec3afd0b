package timestep

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStepTypePredicates(t *testing.T) {
	obs := mat.NewVecDense(1, nil)
	for _, st := range []StepType{First, Mid, Last} {
		step := New(st, 0, 1, obs, 0)

		if step.First() != (st == First) {
			t.Errorf("first: want(%v) have(%v)", st == First, step.First())
		}
		if step.Mid() != (st == Mid) {
			t.Errorf("mid: want(%v) have(%v)", st == Mid, step.Mid())
		}
		if step.Last() != (st == Last) {
			t.Errorf("last: want(%v) have(%v)", st == Last, step.Last())
		}
	}
}

func TestSetEnd(t *testing.T) {
	step := New(Mid, 0.5, 0.99, mat.NewVecDense(2, nil), 3)
	if step.EndType() != Unknown {
		t.Errorf("new timestep should have end type Unknown, have %v",
			step.EndType())
	}

	step.StepType = Last
	step.SetEnd(Timeout)
	if step.EndType() != Timeout {
		t.Errorf("want(%v) have(%v)", Timeout, step.EndType())
	}

	if !strings.Contains(step.String(), "Timeout") {
		t.Errorf("string should report end type: %v", step)
	}
}
