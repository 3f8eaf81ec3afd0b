package environment

import (
	ts "github.com/samuelfneumann/fallingtrash/timestep"
)

// Condition reports whether the episode containing t has reached some
// end state. Conditions may inspect any part of the step or read state
// held elsewhere, such as the events of the last physics update.
type Condition func(t ts.TimeStep) bool

// FunctionEnder ends an episode with a fixed EndType the first time its
// Condition holds
type FunctionEnder struct {
	cond    Condition
	endType ts.EndType
}

// NewFunctionEnder returns a FunctionEnder which ends episodes with
// endType when cond holds
func NewFunctionEnder(cond Condition, endType ts.EndType) *FunctionEnder {
	return &FunctionEnder{cond: cond, endType: endType}
}

// End marks t as the last step of its episode and returns true if the
// condition holds for t
func (f *FunctionEnder) End(t *ts.TimeStep) bool {
	if !f.cond(*t) {
		return false
	}
	t.StepType = ts.Last
	t.SetEnd(f.endType)
	return true
}
