// Package plane lifts the scalar linear solver over 2-vectors: PlaneVector
// is a fixed length-2 value with pointwise arithmetic, and the planar
// engine splits each planar equation component-wise before delegating to
// solve.SolveEquationSet (spec 4.G, 4.H).
//
// Grounded on pivot.ontology.plane.PlaneVector from original_source and on
// the teacher's small immutable value-type style (core/types.go's
// Vertex/Edge).
package plane

import (
	"github.com/silvanis/pivot/expr"
	"github.com/silvanis/pivot/field"
)

// Vector is a fixed 2-element vector with pointwise +, - and scalar *, /.
// Field access x -> X, y -> Y (spec 4.G).
type Vector struct {
	X, Y field.Coefficient
}

// Add returns the pointwise sum of a and b.
func (a Vector) Add(b Vector) Vector {
	return Vector{X: a.X.Add(b.X), Y: a.Y.Add(b.Y)}
}

// Sub returns the pointwise difference a - b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{X: a.X.Sub(b.X), Y: a.Y.Sub(b.Y)}
}

// Scale returns a multiplied elementwise by scalar.
func (a Vector) Scale(scalar field.Coefficient) Vector {
	return Vector{X: a.X.Mul(scalar), Y: a.Y.Mul(scalar)}
}

// Div returns a divided elementwise by scalar.
func (a Vector) Div(scalar field.Coefficient) (Vector, error) {
	x, err := a.X.Div(scalar)
	if err != nil {
		return Vector{}, err
	}
	y, err := a.Y.Div(scalar)
	if err != nil {
		return Vector{}, err
	}
	return Vector{X: x, Y: y}, nil
}

// Equal reports whether a and b have equal components, comparing their
// String forms: exact for Rational; Float values must format identically
// (FloatEpsilon is not applied).
func (a Vector) Equal(b Vector) bool {
	return a.X.String() == b.X.String() && a.Y.String() == b.Y.String()
}

// V builds an expr.VectorLiteral from two items, each an Expression or
// numeric primitive - the literal-vector expression constructor named in
// spec section 6.
func V(a, b interface{}) expr.VectorLiteral {
	return expr.Vec(a, b)
}
