package field

import (
	"math/big"
)

// Rational is an exact-arithmetic Coefficient backed by math/big.Rat.
// Used by the EXACT reduction method so integer-input systems reduce
// without precision loss (spec 4.F).
type Rational struct {
	r *big.Rat
}

// NewRationalInt builds an exact Rational equal to n.
func NewRationalInt(n int64) Rational {
	return Rational{r: new(big.Rat).SetInt64(n)}
}

// NewRationalFrac builds an exact Rational equal to num/den.
// Complexity: O(1); den == 0 produces the same +Inf-free panic big.Rat
// itself would, since a zero-denominator fraction is a programmer error,
// not a runtime condition this library recovers from.
func NewRationalFrac(num, den int64) Rational {
	return Rational{r: big.NewRat(num, den)}
}

// NewRationalFromRat builds a Rational equal to r. The value is copied,
// so later changes to r do not affect the returned Rational.
func NewRationalFromRat(r *big.Rat) Rational {
	return Rational{r: new(big.Rat).Set(r)}
}

// NewRationalFromFloat converts a float64 to its nearest exact Rational.
func NewRationalFromFloat(f float64) Rational {
	r := new(big.Rat)
	r.SetFloat64(f)
	return Rational{r: r}
}

func (a Rational) Add(bC Coefficient) Coefficient {
	b := bC.(Rational)
	return Rational{r: new(big.Rat).Add(a.r, b.r)}
}

func (a Rational) Sub(bC Coefficient) Coefficient {
	b := bC.(Rational)
	return Rational{r: new(big.Rat).Sub(a.r, b.r)}
}

func (a Rational) Mul(bC Coefficient) Coefficient {
	b := bC.(Rational)
	return Rational{r: new(big.Rat).Mul(a.r, b.r)}
}

// Div divides a by b, matching pivot.ontology.matrix.divide: an evenly
// dividing pair of integers reduces to an exact integer Rational, an
// unevenly dividing pair to a fraction - both cases collapse naturally
// since big.Rat always stores the reduced fraction internally.
func (a Rational) Div(bC Coefficient) (Coefficient, error) {
	b := bC.(Rational)
	if b.IsZero() {
		return nil, coefficientErrorf("Rational.Div", ErrDivideByZero)
	}
	return Rational{r: new(big.Rat).Quo(a.r, b.r)}, nil
}

func (a Rational) Neg() Coefficient {
	return Rational{r: new(big.Rat).Neg(a.r)}
}

func (a Rational) IsZero() bool {
	return a.r.Sign() == 0
}

func (a Rational) Float64() float64 {
	f, _ := a.r.Float64()
	return f
}

func (a Rational) String() string {
	return a.r.RatString()
}

// Rat exposes the underlying *big.Rat for callers that need exact-value
// introspection (tests, round-trip checks).
func (a Rational) Rat() *big.Rat {
	return new(big.Rat).Set(a.r)
}

// ExactField is the Field implementation used by solve.EXACT.
type ExactField struct{}

func (ExactField) Name() string { return "EXACT" }

func (ExactField) Zero() Coefficient { return NewRationalInt(0) }

func (ExactField) One() Coefficient { return NewRationalInt(1) }

func (ExactField) FromPrimitive(v interface{}) (Coefficient, error) {
	switch n := v.(type) {
	case int:
		return NewRationalInt(int64(n)), nil
	case int64:
		return NewRationalInt(n), nil
	case float64:
		return NewRationalFromFloat(n), nil
	case *big.Rat:
		return NewRationalFromRat(n), nil
	case Rational:
		return n, nil
	default:
		return nil, coefficientErrorf("ExactField.FromPrimitive", ErrUnsupportedPrimitive)
	}
}
