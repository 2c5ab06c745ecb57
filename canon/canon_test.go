package canon_test

import (
	"testing"

	"github.com/silvanis/pivot/canon"
	"github.com/silvanis/pivot/expr"
	"github.com/silvanis/pivot/field"
	"github.com/silvanis/pivot/pivoterr"
	"github.com/stretchr/testify/require"
)

func coeffAt(t *testing.T, sop *canon.SumOfProducts, v expr.Variable) string {
	t.Helper()
	return sop.Get(canon.VarKey(v)).String()
}

func TestSimpleExpression(t *testing.T) {
	x := expr.Var("x")
	sop, err := canon.FromExpression(x, field.Exact)
	require.NoError(t, err)
	require.Equal(t, "1", coeffAt(t, sop, x))
}

func TestAddSameVariable(t *testing.T) {
	x := expr.Var("x")
	sop, err := canon.FromExpression(expr.Add(x, x), field.Exact)
	require.NoError(t, err)
	require.Equal(t, "2", coeffAt(t, sop, x))
}

func TestAddDifferentVariables(t *testing.T) {
	x, y := expr.Var("x"), expr.Var("y")
	sop, err := canon.FromExpression(expr.Add(x, y), field.Exact)
	require.NoError(t, err)
	require.Equal(t, "1", coeffAt(t, sop, x))
	require.Equal(t, "1", coeffAt(t, sop, y))
}

func TestAddMixedWithCoefficients(t *testing.T) {
	x, y := expr.Var("x"), expr.Var("y")
	// 2*x + 3*y + x
	e := expr.Add(expr.Mul(2, x), expr.Mul(3, y), x)
	sop, err := canon.FromExpression(e, field.Exact)
	require.NoError(t, err)
	require.Equal(t, "3", coeffAt(t, sop, x))
	require.Equal(t, "3", coeffAt(t, sop, y))
}

// S4: (2x + 3y + x) / 3 -> {x: 1, y: 1}
func TestCanonicalizationDivision(t *testing.T) {
	x, y := expr.Var("x"), expr.Var("y")
	e := expr.Div(expr.Add(expr.Mul(2, x), expr.Mul(3, y), x), 3)
	sop, err := canon.FromExpression(e, field.Exact)
	require.NoError(t, err)
	require.Equal(t, "1", coeffAt(t, sop, x))
	require.Equal(t, "1", coeffAt(t, sop, y))
}

// S7: x*y must fail with NonLinear.
func TestNonLinearMultiplicationRejected(t *testing.T) {
	x, y := expr.Var("x"), expr.Var("y")
	_, err := canon.FromExpression(expr.Mul(x, y), field.Exact)
	require.ErrorIs(t, err, pivoterr.ErrNonLinear)
}

func TestNonLinearDivisionByVariableRejected(t *testing.T) {
	x, y := expr.Var("x"), expr.Var("y")
	_, err := canon.FromExpression(expr.Div(x, y), field.Exact)
	require.ErrorIs(t, err, pivoterr.ErrNonLinear)
}

// Property 1: distributivity, from_expression(k*e) == k * from_expression(e).
func TestCanonicalizationDistributivity(t *testing.T) {
	x, y := expr.Var("x"), expr.Var("y")
	e := expr.Add(x, y)
	scaled, err := canon.FromExpression(expr.Mul(3, e), field.Exact)
	require.NoError(t, err)

	base, err := canon.FromExpression(e, field.Exact)
	require.NoError(t, err)

	three, err := field.Exact.FromPrimitive(int64(3))
	require.NoError(t, err)

	for key, c := range base.Coefficients {
		require.Equal(t, three.Mul(c).String(), scaled.Get(key).String())
	}
}

func TestVectorLiteralIsNotLinear(t *testing.T) {
	_, err := canon.FromExpression(expr.Vec(1, 2), field.Exact)
	require.ErrorIs(t, err, pivoterr.ErrTypeMismatch)
}

func TestUnsupportedOperatorRejected(t *testing.T) {
	bogus := expr.Operation{Op: '^', Args: []expr.Expression{expr.Num(int64(1)), expr.Num(int64(2))}}
	_, err := canon.FromExpression(bogus, field.Exact)
	require.ErrorIs(t, err, pivoterr.ErrUnsupportedOperator)
}
