package field_test

import (
	"testing"

	"github.com/silvanis/pivot/field"
	"github.com/stretchr/testify/require"
)

func TestRationalArithmetic(t *testing.T) {
	a := field.NewRationalInt(6)
	b := field.NewRationalInt(4)

	require.Equal(t, "10", a.Add(b).String())
	require.Equal(t, "2", a.Sub(b).String())
	require.Equal(t, "24", a.Mul(b).String())

	quotient, err := a.Div(b)
	require.NoError(t, err)
	require.Equal(t, "3/2", quotient.String())
}

func TestRationalDivideByZero(t *testing.T) {
	a := field.NewRationalInt(1)
	zero := field.NewRationalInt(0)
	_, err := a.Div(zero)
	require.ErrorIs(t, err, field.ErrDivideByZero)
}

func TestRationalEvenDivisionStaysInteger(t *testing.T) {
	a := field.NewRationalInt(6)
	b := field.NewRationalInt(3)
	quotient, err := a.Div(b)
	require.NoError(t, err)
	require.Equal(t, "2", quotient.String())
}

func TestRationalIsZero(t *testing.T) {
	require.True(t, field.NewRationalInt(0).IsZero())
	require.False(t, field.NewRationalInt(1).IsZero())
	require.True(t, field.NewRationalInt(5).Sub(field.NewRationalInt(5)).IsZero())
}

func TestFloatArithmetic(t *testing.T) {
	a := field.NewFloat(1.5)
	b := field.NewFloat(0.5)
	require.InDelta(t, 2.0, a.Add(b).Float64(), 1e-12)
	require.InDelta(t, 1.0, a.Sub(b).Float64(), 1e-12)
	require.InDelta(t, 0.75, a.Mul(b).Float64(), 1e-12)

	q, err := a.Div(b)
	require.NoError(t, err)
	require.InDelta(t, 3.0, q.Float64(), 1e-12)
}

func TestFloatIsZeroWithinEpsilon(t *testing.T) {
	require.True(t, field.NewFloat(1e-10).IsZero())
	require.False(t, field.NewFloat(1e-6).IsZero())
}

func TestExactFieldFromPrimitive(t *testing.T) {
	c, err := field.Exact.FromPrimitive(int64(7))
	require.NoError(t, err)
	require.Equal(t, "7", c.String())

	_, err = field.Exact.FromPrimitive("nope")
	require.ErrorIs(t, err, field.ErrUnsupportedPrimitive)
}

func TestFloatFieldFromPrimitive(t *testing.T) {
	c, err := field.FloatField.FromPrimitive(7.5)
	require.NoError(t, err)
	require.InDelta(t, 7.5, c.Float64(), 1e-12)
}
