// Package canon folds an expr.Expression into a SumOfProducts - a flat
// mapping from basis key (the constant sentinel or a Variable) to a
// field.Coefficient - rejecting any non-linear structure it encounters.
//
// Grounded on pivot.deduction.linear.SumOfProducts from original_source,
// ported term-for-term (from_expression, __add__/__neg__/__sub__/__mul__/
// __truediv__) onto field.Coefficient instead of Python's native numeric
// tower, and on the teacher's ops_elementwise.go dimension-checked
// accumulation style for the error-wrapping conventions.
package canon

import (
	"github.com/silvanis/pivot/expr"
	"github.com/silvanis/pivot/field"
	"github.com/silvanis/pivot/pivoterr"
	"github.com/silvanis/pivot/pivotlog"
)

// BasisKey is either the distinguished multiplicative-identity sentinel
// ("1" in spec 3) or a Variable. It is a plain comparable struct so it
// can key a Go map directly.
type BasisKey struct {
	constant bool
	v        expr.Variable
}

// ConstKey is the multiplicative-identity basis key.
var ConstKey = BasisKey{constant: true}

// VarKey wraps a Variable as a basis key.
func VarKey(v expr.Variable) BasisKey {
	return BasisKey{v: v}
}

// IsConst reports whether k is the constant sentinel.
func (k BasisKey) IsConst() bool { return k.constant }

// Variable returns the wrapped Variable and true, or the zero Variable
// and false if k is the constant sentinel.
func (k BasisKey) Variable() (expr.Variable, bool) {
	if k.constant {
		return expr.Variable{}, false
	}
	return k.v, true
}

// SumOfProducts models an expression that is the sum of products of
// primitives: coefficients maps a BasisKey to a field.Coefficient. A
// missing key is interpreted as the field's additive identity (spec 3).
type SumOfProducts struct {
	F            field.Field
	Coefficients map[BasisKey]field.Coefficient
}

func newSOP(f field.Field) *SumOfProducts {
	return &SumOfProducts{F: f, Coefficients: make(map[BasisKey]field.Coefficient)}
}

// Get returns the coefficient at key, or the field's additive identity if
// key is absent.
func (s *SumOfProducts) Get(key BasisKey) field.Coefficient {
	if c, ok := s.Coefficients[key]; ok {
		return c
	}
	return s.F.Zero()
}

// FromExpression folds e into a SumOfProducts over field f, recursively
// (spec 4.D):
//
//   - a numeric primitive n becomes {1: n};
//   - a Variable v becomes {v: 1};
//   - Operation(op, a1, a2, ...) left-folds op pairwise over the
//     canonicalized args, using SumOfProducts' own arithmetic.
//
// VectorLiteral is never linear over scalars and is rejected with
// ErrTypeMismatch; the planar engine splits vector expressions into
// scalar components before ever calling FromExpression (spec 4.H).
func FromExpression(e expr.Expression, f field.Field) (*SumOfProducts, error) {
	switch node := e.(type) {
	case expr.Primitive:
		c, err := f.FromPrimitive(node.Value)
		if err != nil {
			return nil, pivoterr.Wrap("canon.FromExpression", err)
		}
		sop := newSOP(f)
		sop.Coefficients[ConstKey] = c
		return sop, nil

	case expr.Variable:
		sop := newSOP(f)
		sop.Coefficients[VarKey(node)] = f.One()
		return sop, nil

	case expr.Operation:
		return foldOperation(node, f)

	default:
		pivotlog.Tracef("canon: rejecting non-expression node %T", e)
		return nil, pivoterr.Wrap("canon.FromExpression", pivoterr.ErrTypeMismatch)
	}
}

func foldOperation(op expr.Operation, f field.Field) (*SumOfProducts, error) {
	if len(op.Args) < 2 {
		return nil, pivoterr.Wrap("canon.FromExpression", pivoterr.ErrTypeMismatch)
	}

	acc, err := FromExpression(op.Args[0], f)
	if err != nil {
		return nil, err
	}

	for _, arg := range op.Args[1:] {
		next, err := FromExpression(arg, f)
		if err != nil {
			return nil, err
		}

		switch op.Op {
		case expr.OpAdd:
			acc = acc.Add(next)
		case expr.OpSub:
			acc = acc.Sub(next)
		case expr.OpMul:
			acc, err = acc.Mul(next)
			if err != nil {
				return nil, err
			}
		case expr.OpDiv:
			acc, err = acc.Div(next)
			if err != nil {
				return nil, err
			}
		default:
			return nil, pivoterr.Wrap("canon.FromExpression", pivoterr.ErrUnsupportedOperator)
		}
	}

	return acc, nil
}

// Add returns the union of a and b's keys, summing coefficients for
// shared keys.
func (a *SumOfProducts) Add(b *SumOfProducts) *SumOfProducts {
	out := newSOP(a.F)
	for k, c := range a.Coefficients {
		out.Coefficients[k] = c
	}
	for k, c := range b.Coefficients {
		if existing, ok := out.Coefficients[k]; ok {
			out.Coefficients[k] = existing.Add(c)
		} else {
			out.Coefficients[k] = c
		}
	}
	return out
}

// Neg negates every coefficient.
func (a *SumOfProducts) Neg() *SumOfProducts {
	out := newSOP(a.F)
	for k, c := range a.Coefficients {
		out.Coefficients[k] = c.Neg()
	}
	return out
}

// Sub is a + (-b).
func (a *SumOfProducts) Sub(b *SumOfProducts) *SumOfProducts {
	return a.Add(b.Neg())
}

// mergeKeys collapses the constant key with anything (returning the
// other operand); any other pairing is a non-linear cross term.
func mergeKeys(k1, k2 BasisKey) (BasisKey, error) {
	if k1.IsConst() {
		return k2, nil
	}
	if k2.IsConst() {
		return k1, nil
	}
	v1, _ := k1.Variable()
	v2, _ := k2.Variable()
	pivotlog.Tracef("canon: rejecting non-linear cross term %s * %s", v1, v2)
	return BasisKey{}, pivoterr.Wrap("canon.Mul", pivoterr.ErrNonLinear)
}

// Mul distributes: for each (k1, c1) in a and (k2, c2) in b, contributes
// (merge(k1,k2), c1*c2). A cross term of two non-constant bases fails
// with ErrNonLinear.
func (a *SumOfProducts) Mul(b *SumOfProducts) (*SumOfProducts, error) {
	out := newSOP(a.F)
	for k1, c1 := range a.Coefficients {
		for k2, c2 := range b.Coefficients {
			merged, err := mergeKeys(k1, k2)
			if err != nil {
				return nil, err
			}
			product := c1.Mul(c2)
			if existing, ok := out.Coefficients[merged]; ok {
				out.Coefficients[merged] = existing.Add(product)
			} else {
				out.Coefficients[merged] = product
			}
		}
	}
	return out, nil
}

// Div requires b to be a pure constant (keys(b) == {1}); every
// coefficient in a is then divided by that constant. Division by a
// non-constant fails with ErrNonLinear.
func (a *SumOfProducts) Div(b *SumOfProducts) (*SumOfProducts, error) {
	if !isPureConstant(b) {
		pivotlog.Tracef("canon: rejecting division by non-constant divisor")
		return nil, pivoterr.Wrap("canon.Div", pivoterr.ErrNonLinear)
	}
	divisor := b.Get(ConstKey)

	out := newSOP(a.F)
	for k, c := range a.Coefficients {
		quotient, err := c.Div(divisor)
		if err != nil {
			return nil, pivoterr.Wrap("canon.Div", err)
		}
		out.Coefficients[k] = quotient
	}
	return out, nil
}

func isPureConstant(s *SumOfProducts) bool {
	for k := range s.Coefficients {
		if !k.IsConst() {
			return false
		}
	}
	return true
}
