// split_expression: decomposes a planar expression into its scalar
// components (spec 4.H). Every expression splits to either a 1-element
// list (scalar) or a 2-element list (vector).
package plane

import (
	"github.com/silvanis/pivot/expr"
	"github.com/silvanis/pivot/pivoterr"
)

// splitExpression implements spec 4.H's rules:
//
//   - a numeric primitive splits to [n];
//   - a VectorLiteral splits to its two items;
//   - a Variable not typed as a vector component splits to [v.x, v.y]
//     (every unqualified variable is treated as 2-vector-valued);
//   - a VariableAttribute whose attr is x or y splits to [self] (scalar,
//     not re-split);
//   - an Operation splits recursively per operator (see splitOperation).
func splitExpression(e expr.Expression) ([]expr.Expression, error) {
	switch node := e.(type) {
	case expr.Primitive:
		return []expr.Expression{node}, nil

	case expr.VectorLiteral:
		return []expr.Expression{node.Items[0], node.Items[1]}, nil

	case expr.Variable:
		if node.IsAttribute() {
			attr, _ := node.Attr()
			if attr != "x" && attr != "y" {
				return nil, pivoterr.Wrap("plane.splitExpression", pivoterr.ErrTypeMismatch)
			}
			return []expr.Expression{node}, nil
		}
		return []expr.Expression{expr.AttrOf(node, "x"), expr.AttrOf(node, "y")}, nil

	case expr.Operation:
		return splitOperation(node)

	default:
		return nil, pivoterr.Wrap("plane.splitExpression", pivoterr.ErrTypeMismatch)
	}
}

func combine(op byte, a, b expr.Expression) expr.Expression {
	if op == expr.OpAdd {
		return expr.Add(a, b)
	}
	return expr.Sub(a, b)
}

// splitOperation splits an Operation node, left-folding over its args:
//
//   - '/': the divisor must split to length 1 (scalar); every component
//     of the running dividend is divided by it.
//   - '*': the running left accumulator must split to length 1 (scalar);
//     every component of the next operand is multiplied by it. Dot/cross
//     products are out of scope.
//   - '+'/'-': every operand must split to the same length as the
//     accumulator; the operator is applied component-wise.
func splitOperation(op expr.Operation) ([]expr.Expression, error) {
	acc, err := splitExpression(op.Args[0])
	if err != nil {
		return nil, err
	}

	for _, arg := range op.Args[1:] {
		switch op.Op {
		case expr.OpDiv:
			divisor, err := splitExpression(arg)
			if err != nil {
				return nil, err
			}
			if len(divisor) != 1 {
				return nil, pivoterr.Wrap("plane.splitOperation", pivoterr.ErrDimensionMismatch)
			}
			next := make([]expr.Expression, len(acc))
			for i, comp := range acc {
				next[i] = expr.Div(comp, divisor[0])
			}
			acc = next

		case expr.OpMul:
			if len(acc) != 1 {
				return nil, pivoterr.Wrap("plane.splitOperation", pivoterr.ErrDimensionMismatch)
			}
			scalar := acc[0]
			right, err := splitExpression(arg)
			if err != nil {
				return nil, err
			}
			next := make([]expr.Expression, len(right))
			for i, comp := range right {
				next[i] = expr.Mul(scalar, comp)
			}
			acc = next

		case expr.OpAdd, expr.OpSub:
			next, err := splitExpression(arg)
			if err != nil {
				return nil, err
			}
			if len(next) != len(acc) {
				return nil, pivoterr.Wrap("plane.splitOperation", pivoterr.ErrDimensionMismatch)
			}
			combined := make([]expr.Expression, len(acc))
			for i := range acc {
				combined[i] = combine(op.Op, acc[i], next[i])
			}
			acc = combined

		default:
			return nil, pivoterr.Wrap("plane.splitOperation", pivoterr.ErrUnsupportedOperator)
		}
	}

	return acc, nil
}
