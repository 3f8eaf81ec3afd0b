package environment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SpecType names the quantity a Spec describes
type SpecType int

const (
	Action SpecType = iota
	Observation
	Discount
	Reward
)

func (s SpecType) String() string {
	switch s {
	case Action:
		return "Action"
	case Observation:
		return "Observation"
	case Discount:
		return "Discount"
	case Reward:
		return "Reward"
	}
	return fmt.Sprintf("SpecType(%d)", int(s))
}

// Cardinality tells whether the values a Spec describes are discrete or
// continuous
type Cardinality string

const (
	Continuous Cardinality = "Continuous"
	Discrete   Cardinality = "Discrete"
)

// Spec gives the shape, bounds, and cardinality of the actions,
// observations, discounts, or rewards of an environment. Bounds are
// inclusive. Discrete specs describe integer values only.
type Spec struct {
	Shape      mat.Vector
	Type       SpecType
	LowerBound mat.Vector
	UpperBound mat.Vector
	Cardinality
}

// NewSpec returns a new Spec of type t. The bounds must have the same
// length as shape, and lowerBound must not exceed upperBound in any
// dimension; NewSpec panics otherwise.
func NewSpec(shape mat.Vector, t SpecType, lowerBound,
	upperBound mat.Vector, cardinality Cardinality) Spec {
	n := shape.Len()
	if lowerBound.Len() != n || upperBound.Len() != n {
		panic(fmt.Sprintf("newSpec: %v bounds must have length %v, have "+
			"(%v, %v)", t, n, lowerBound.Len(), upperBound.Len()))
	}
	for i := 0; i < n; i++ {
		if lowerBound.AtVec(i) > upperBound.AtVec(i) {
			panic(fmt.Sprintf("newSpec: %v lower bound %v exceeds upper "+
				"bound %v in dimension %v", t, lowerBound.AtVec(i),
				upperBound.AtVec(i), i))
		}
	}
	return Spec{shape, t, lowerBound, upperBound, cardinality}
}

// Contains returns whether v lies inside the spec: v must have the
// spec's length, every element must be finite and within its bounds,
// and discrete specs require integer elements.
func (s Spec) Contains(v mat.Vector) bool {
	if v.Len() != s.Shape.Len() {
		return false
	}
	for i := 0; i < v.Len(); i++ {
		x := v.AtVec(i)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
		if x < s.LowerBound.AtVec(i) || x > s.UpperBound.AtVec(i) {
			return false
		}
		if s.Cardinality == Discrete && x != math.Trunc(x) {
			return false
		}
	}
	return true
}

// Values returns the number of values of a 1-dimensional discrete spec
// whose values start at 0
func (s Spec) Values() (int, error) {
	if s.Shape.Len() != 1 {
		return 0, fmt.Errorf("values: %v must be 1-dimensional, have %v",
			s.Type, s.Shape.Len())
	}
	if s.Cardinality != Discrete {
		return 0, fmt.Errorf("values: %v must be discrete", s.Type)
	}
	if s.LowerBound.AtVec(0) != 0 {
		return 0, fmt.Errorf("values: %v must start at 0, have %v", s.Type,
			s.LowerBound.AtVec(0))
	}
	return int(s.UpperBound.AtVec(0)) + 1, nil
}
