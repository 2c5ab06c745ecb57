package expr_test

import (
	"testing"

	"github.com/silvanis/pivot/expr"
	"github.com/stretchr/testify/require"
)

func TestVariableEquality(t *testing.T) {
	x1 := expr.Var("x")
	x2 := expr.Var("x")
	y := expr.Var("y")

	require.True(t, expr.StructurallyEqual(x1, x2))
	require.False(t, expr.StructurallyEqual(x1, y))
}

func TestVariableAttributeIsAVariable(t *testing.T) {
	v1 := expr.Var("v1")
	vx := expr.AttrOf(v1, "x")

	require.True(t, vx.IsAttribute())
	require.Equal(t, "v1", vx.Root())
	attr, ok := vx.Attr()
	require.True(t, ok)
	require.Equal(t, "x", attr)

	require.False(t, v1.IsAttribute())
}

func TestOperationNodeShapeIsOrderStable(t *testing.T) {
	x := expr.Var("x")

	twoPlusX := expr.Add(2, x)
	xPlusTwo := expr.Add(x, 2)

	require.Equal(t, byte(expr.OpAdd), twoPlusX.Op)
	require.Len(t, twoPlusX.Args, 2)
	require.Equal(t, expr.Num(int64(2)).Key(), twoPlusX.Args[0].Key())
	require.Equal(t, x.Key(), twoPlusX.Args[1].Key())

	// Reverse-operand construction preserves order; the two nodes are not
	// structurally identical even though they are linearly equivalent.
	require.False(t, expr.StructurallyEqual(twoPlusX, xPlusTwo))
}

func TestSecondLevelComposition(t *testing.T) {
	v1, v2 := expr.Var("v1"), expr.Var("v2")
	got := expr.Div(expr.Add(v1, v2), expr.Sub(v1, v2))
	want := expr.Operation{Op: expr.OpDiv, Args: []expr.Expression{
		expr.Operation{Op: expr.OpAdd, Args: []expr.Expression{v1, v2}},
		expr.Operation{Op: expr.OpSub, Args: []expr.Expression{v1, v2}},
	}}
	require.True(t, expr.StructurallyEqual(got, want))
}

func TestEqReflexivity(t *testing.T) {
	x := expr.Var("x")
	eq := x.Eq(x)
	require.True(t, eq.Reflexive)

	y := expr.Var("y")
	nonReflexive := x.Eq(y)
	require.False(t, nonReflexive.Reflexive)
}

func TestHashEqualityConsistency(t *testing.T) {
	a := expr.NewEquation(expr.Var("x"), expr.Num(int64(1)))
	b := expr.NewEquation(expr.Var("x"), expr.Num(int64(1)))
	require.Equal(t, a.Key(), b.Key())
}

func TestVectorLiteralWithAttributes(t *testing.T) {
	v1, v2 := expr.Var("v1"), expr.Var("v2")
	got := expr.Add(1, expr.Vec(expr.AttrOf(v1, "x"), expr.AttrOf(v2, "y")))
	want := expr.Operation{Op: expr.OpAdd, Args: []expr.Expression{
		expr.Num(int64(1)),
		expr.Vec(expr.AttrOf(v1, "x"), expr.AttrOf(v2, "y")),
	}}
	require.True(t, expr.StructurallyEqual(got, want))
}

func TestEquationSetDeduplicates(t *testing.T) {
	x := expr.Var("x")
	es := expr.NewEquationSet(
		expr.NewEquation(x, expr.Num(int64(1))),
		expr.NewEquation(x, expr.Num(int64(1))),
	)
	require.Equal(t, 1, es.Len())
}

func TestEquationSetBindAndOrder(t *testing.T) {
	es := expr.NewEquationSet()
	es.Bind("x", expr.Num(int64(1)))
	es.Bind("y", expr.Var("x"))

	eqs := es.Equations()
	require.Len(t, eqs, 2)
	require.Equal(t, "var:x", eqs[0].Subj.Key())
	require.Equal(t, "var:y", eqs[1].Subj.Key())
}

func TestFromFuncDictDefForm(t *testing.T) {
	es := expr.FromFunc([]string{"x"}, func(vars map[string]expr.Variable) map[string]expr.Expression {
		return map[string]expr.Expression{"x": vars["x"]}
	})
	require.Equal(t, 1, es.Len())
	got := es.Equations()[0]
	require.True(t, got.Reflexive)
}
