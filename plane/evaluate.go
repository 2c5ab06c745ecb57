// Evaluate: substitutes values for variables and evaluates an expression,
// used in tests and for consistency checking (spec 4.H).
package plane

import (
	"github.com/silvanis/pivot/expr"
	"github.com/silvanis/pivot/field"
	"github.com/silvanis/pivot/pivoterr"
)

// Evaluate substitutes values into e and returns its value as a Vector.
// Scalar sub-expressions (x.x, x.y, numeric literals, and arithmetic over
// them) are evaluated via evalScalar; e itself is first split into its
// scalar components the same way the planar solver splits equations, so
// a pure scalar expression yields a Vector with both components equal to
// its single evaluated value.
func Evaluate(e expr.Expression, values map[expr.Variable]Vector, f field.Field) (Vector, error) {
	comps, err := splitExpression(e)
	if err != nil {
		return Vector{}, pivoterr.Wrap("plane.Evaluate", err)
	}

	evaluated := make([]field.Coefficient, len(comps))
	for i, c := range comps {
		v, err := evalScalar(c, values, f)
		if err != nil {
			return Vector{}, pivoterr.Wrap("plane.Evaluate", err)
		}
		evaluated[i] = v
	}

	if len(evaluated) == 1 {
		return Vector{X: evaluated[0], Y: evaluated[0]}, nil
	}
	return Vector{X: evaluated[0], Y: evaluated[1]}, nil
}

// evalScalar evaluates a scalar expression (as produced by splitExpression)
// against a binding of root variables to Vectors.
func evalScalar(e expr.Expression, values map[expr.Variable]Vector, f field.Field) (field.Coefficient, error) {
	switch node := e.(type) {
	case expr.Primitive:
		return f.FromPrimitive(node.Value)

	case expr.Variable:
		attr, ok := node.Attr()
		if !ok {
			return nil, pivoterr.Wrap("plane.evalScalar", pivoterr.ErrTypeMismatch)
		}
		vec, ok := values[expr.Var(node.Root())]
		if !ok {
			return nil, pivoterr.Wrap("plane.evalScalar", pivoterr.ErrUnknownVariable)
		}
		switch attr {
		case "x":
			return vec.X, nil
		case "y":
			return vec.Y, nil
		default:
			return nil, pivoterr.Wrap("plane.evalScalar", pivoterr.ErrTypeMismatch)
		}

	case expr.Operation:
		acc, err := evalScalar(node.Args[0], values, f)
		if err != nil {
			return nil, err
		}
		for _, arg := range node.Args[1:] {
			next, err := evalScalar(arg, values, f)
			if err != nil {
				return nil, err
			}
			switch node.Op {
			case expr.OpAdd:
				acc = acc.Add(next)
			case expr.OpSub:
				acc = acc.Sub(next)
			case expr.OpMul:
				acc = acc.Mul(next)
			case expr.OpDiv:
				acc, err = acc.Div(next)
				if err != nil {
					return nil, pivoterr.Wrap("plane.evalScalar", err)
				}
			default:
				return nil, pivoterr.Wrap("plane.evalScalar", pivoterr.ErrUnsupportedOperator)
			}
		}
		return acc, nil

	default:
		return nil, pivoterr.Wrap("plane.evalScalar", pivoterr.ErrTypeMismatch)
	}
}
