package field

import (
	"math"
	"math/big"
	"strconv"
)

// FloatEpsilon is the tolerance used by Float.IsZero to absorb the
// rounding FLOAT reduction inevitably accumulates (spec 8, property 5:
// "eps <= 1e-9 for floating").
const FloatEpsilon = 1e-9

// Float is a double-precision Coefficient backed by float64. Used by the
// FLOAT reduction method, compatible with common numeric back-ends.
type Float float64

func NewFloat(f float64) Float { return Float(f) }

func (a Float) Add(bC Coefficient) Coefficient { return a + bC.(Float) }

func (a Float) Sub(bC Coefficient) Coefficient { return a - bC.(Float) }

func (a Float) Mul(bC Coefficient) Coefficient { return a * bC.(Float) }

func (a Float) Div(bC Coefficient) (Coefficient, error) {
	b := bC.(Float)
	if b.IsZero() {
		return nil, coefficientErrorf("Float.Div", ErrDivideByZero)
	}
	return a / b, nil
}

func (a Float) Neg() Coefficient { return -a }

func (a Float) IsZero() bool { return math.Abs(float64(a)) <= FloatEpsilon }

func (a Float) Float64() float64 { return float64(a) }

func (a Float) String() string { return strconv.FormatFloat(float64(a), 'g', -1, 64) }

// FloatFieldT is the Field implementation used by solve.FLOAT.
type FloatFieldT struct{}

func (FloatFieldT) Name() string { return "FLOAT" }

func (FloatFieldT) Zero() Coefficient { return Float(0) }

func (FloatFieldT) One() Coefficient { return Float(1) }

func (FloatFieldT) FromPrimitive(v interface{}) (Coefficient, error) {
	switch n := v.(type) {
	case int:
		return Float(n), nil
	case int64:
		return Float(n), nil
	case float64:
		return Float(n), nil
	case *big.Rat:
		f, _ := n.Float64()
		return Float(f), nil
	case Float:
		return n, nil
	default:
		return nil, coefficientErrorf("FloatFieldT.FromPrimitive", ErrUnsupportedPrimitive)
	}
}

// FloatField is the exported singleton Field value, paralleling Exact
// below and the teacher's habit of exposing zero-value functional
// options/singletons directly (e.g. core.WithWeighted()).
var FloatField FloatFieldT

// Exact is the exported singleton Field value for exact rational
// arithmetic.
var Exact ExactField
