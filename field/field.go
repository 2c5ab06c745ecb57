// Package field provides the numeric abstraction the rest of pivot builds
// on: a Coefficient supports +, -, *, /, negation and an additive-identity
// test, and a Field knows how to lift a raw numeric primitive (int64,
// float64, *big.Rat) into a Coefficient of its own kind. Two concrete
// fields ship here: Exact (backed by math/big.Rat, used by canon/rref/solve
// in EXACT mode) and FloatField (backed by float64, used in FLOAT mode).
//
// Grounded on the teacher's matrix/impl_linear_algebra.go kernel-file-per-
// concern layout and its matrixErrorf wrapping convention, and on
// pivot.ontology.matrix.divide from original_source - divide promotes an
// evenly-dividing integer pair to an exact integer, falling back to a
// fraction otherwise.
package field

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is returned by Div when the divisor is the additive
// identity. Not part of pivoterr because it is a field-local concern:
// callers needing the cross-package taxonomy (NonLinear, etc.) wrap this
// at the canon/rref boundary instead of matching it directly.
var ErrDivideByZero = errors.New("field: division by zero")

// ErrUnsupportedPrimitive is returned when FromPrimitive is given a value
// of a type no Field implementation knows how to lift.
var ErrUnsupportedPrimitive = errors.New("field: unsupported primitive type")

// Coefficient is a value supporting the four field operations and an
// additive-identity test. Implementations are immutable: every method
// returns a new Coefficient rather than mutating the receiver.
type Coefficient interface {
	Add(Coefficient) Coefficient
	Sub(Coefficient) Coefficient
	Mul(Coefficient) Coefficient
	Div(Coefficient) (Coefficient, error)
	Neg() Coefficient
	// IsZero implements the additive-identity predicate z == -z (spec 4.A),
	// with a small epsilon for FLOAT to absorb rounding.
	IsZero() bool
	Float64() float64
	String() string
}

// Field lifts raw numeric primitives into this field's Coefficient kind
// and supplies the field's additive and multiplicative identities.
type Field interface {
	// FromPrimitive accepts int, int64, float64 or *big.Rat.
	FromPrimitive(v interface{}) (Coefficient, error)
	Zero() Coefficient
	One() Coefficient
	Name() string
}

// coefficientErrorf wraps an underlying error with operation context,
// mirroring the teacher's denseErrorf/matrixErrorf helpers.
func coefficientErrorf(op string, err error) error {
	return fmt.Errorf("field.%s: %w", op, err)
}
