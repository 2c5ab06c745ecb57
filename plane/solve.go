// SolveEquationSet: lifts solve.SolveEquationSet over planar equations by
// splitting each equation component-wise and reassembling the scalar
// solution into PlaneVectors (spec 4.H).
package plane

import (
	"github.com/silvanis/pivot/expr"
	"github.com/silvanis/pivot/pivoterr"
	"github.com/silvanis/pivot/solve"
)

// SolveEquationSet splits every equation in es into scalar component
// equations, delegates to solve.SolveEquationSet, and reassembles every
// VariableAttribute v.x/v.y appearing in the scalar solution into
// {v: Vector(x, y)}.
func SolveEquationSet(es *expr.EquationSet, opts ...solve.Option) (map[expr.Variable]Vector, error) {
	var scalarEquations []expr.Equation

	for _, eq := range es.Equations() {
		lhs, err := splitExpression(eq.Subj)
		if err != nil {
			return nil, pivoterr.Wrap("plane.SolveEquationSet", err)
		}
		rhs, err := splitExpression(eq.Obj)
		if err != nil {
			return nil, pivoterr.Wrap("plane.SolveEquationSet", err)
		}
		if len(lhs) != len(rhs) {
			return nil, pivoterr.Wrap("plane.SolveEquationSet", pivoterr.ErrDimensionMismatch)
		}
		for i := range lhs {
			scalarEquations = append(scalarEquations, expr.NewEquation(lhs[i], rhs[i]))
		}
	}

	scalarSet := expr.NewEquationSet(scalarEquations...)
	scalarSolution, err := solve.SolveEquationSet(scalarSet, opts...)
	if err != nil {
		return nil, pivoterr.Wrap("plane.SolveEquationSet", err)
	}

	result := make(map[expr.Variable]Vector)
	for v, val := range scalarSolution {
		if !v.IsAttribute() {
			continue
		}
		attr, _ := v.Attr()
		if attr != "x" && attr != "y" {
			continue
		}
		root := expr.Var(v.Root())
		vec := result[root]
		if attr == "x" {
			vec.X = val
		} else {
			vec.Y = val
		}
		result[root] = vec
	}
	return result, nil
}
