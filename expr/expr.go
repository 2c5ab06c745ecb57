// Package expr implements the symbolic-expression algebra: an immutable
// recursive tree of variables, variable attributes, arithmetic
// compositions and 2-item vector literals. Structural equality and
// hashing are derived from a canonical string Key so two nodes built from
// equal constructor arguments compare and hash identically, regardless of
// identity (spec 3, "Invariants on Expression").
//
// Grounded on the teacher's core/types.go (sentinel-error header block,
// small immutable value types) and on pivot.lexicon.expression /
// pivot.lexicon.equation from original_source, whose operator-overload
// construction this package exposes as named functions instead (Go has
// no operator overloading on non-numeric types).
package expr

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Expression is any node of the symbolic-expression tree: Variable,
// Primitive, Operation or VectorLiteral. Key returns a string that is
// equal for two Expressions iff every constructor argument compared
// equal in order - the structural-equality/hash substrate spec 3 asks
// for, since Operation.Args is a slice and therefore not natively
// comparable as a Go map key.
type Expression interface {
	Key() string
}

// Variable is a free unknown, optionally naming an attribute chain on a
// root variable (e.g. "v1.x"). A VariableAttribute is IS-A Variable in
// this model: both are represented by the same type, distinguished only
// by whether Path contains a ".", matching spec 3's "A VariableAttribute
// IS-A Variable for purposes of canonicalization and solving." This
// collapses two spec variants into one Go type; see DESIGN.md.
type Variable struct {
	Path string
}

// Var constructs a plain (non-attribute) Variable.
func Var(name string) Variable {
	return Variable{Path: name}
}

// AttrOf names an attribute on parent, e.g. AttrOf(Var("v1"), "x") == v1.x.
// The source guards this with "parent's name must not begin with an
// underscore" because it intercepts Python's dynamic attribute lookup and
// must not shadow dunder/private attribute access; that guard has no
// analogue here since AttrOf is an explicit constructor, not attribute
// interception (DESIGN.md Open Question).
func AttrOf(parent Variable, attr string) Variable {
	return Variable{Path: parent.Path + "." + attr}
}

// Root returns the first element of the attribute chain (the root
// variable's name), e.g. Root() of "v1.x" is "v1".
func (v Variable) Root() string {
	if idx := strings.Index(v.Path, "."); idx >= 0 {
		return v.Path[:idx]
	}
	return v.Path
}

// Attr returns the attribute name and true if v is a VariableAttribute,
// or ("", false) for a plain Variable.
func (v Variable) Attr() (string, bool) {
	idx := strings.Index(v.Path, ".")
	if idx < 0 {
		return "", false
	}
	return v.Path[idx+1:], true
}

// IsAttribute reports whether v names an attribute of another variable.
func (v Variable) IsAttribute() bool {
	_, ok := v.Attr()
	return ok
}

func (v Variable) Key() string { return "var:" + v.Path }

func (v Variable) String() string { return v.Path }

// Primitive wraps a numeric literal (int64, float64 or *big.Rat) so it
// satisfies Expression and may appear as an Operation/VectorLiteral
// child. Spec 3 notes a numeric primitive is "not strictly an Expression
// node" in the source; Go's static typing makes it simpler to give it one.
type Primitive struct {
	Value interface{}
}

// Num wraps a numeric literal as a Primitive. Accepts int, int64, float64
// and *big.Rat; panics on any other type since that is a programmer error
// at construction time, not a runtime input-validation concern.
func Num(n interface{}) Primitive {
	switch n.(type) {
	case int, int64, float64, *big.Rat:
		return Primitive{Value: normalizeInt(n)}
	default:
		panic(fmt.Sprintf("expr: Num: unsupported primitive type %T", n))
	}
}

func normalizeInt(n interface{}) interface{} {
	if i, ok := n.(int); ok {
		return int64(i)
	}
	return n
}

func (p Primitive) Key() string {
	switch v := p.Value.(type) {
	case int64:
		return "num:" + strconv.FormatInt(v, 10)
	case float64:
		return "num:" + strconv.FormatFloat(v, 'g', -1, 64)
	case *big.Rat:
		return "num:" + v.RatString()
	default:
		return fmt.Sprintf("num:%v", v)
	}
}

// Operation is an operational composition of two or more expressions
// under one of +, -, *, /. The conventional binary interpretation
// left-folds the args (spec 3).
type Operation struct {
	Op   byte
	Args []Expression
}

const (
	OpAdd = '+'
	OpSub = '-'
	OpMul = '*'
	OpDiv = '/'
)

func toExpr(v interface{}) Expression {
	if e, ok := v.(Expression); ok {
		return e
	}
	return Num(v)
}

func newOperation(op byte, args ...interface{}) Operation {
	if len(args) < 2 {
		panic("expr: operation requires at least 2 arguments")
	}
	exprArgs := make([]Expression, len(args))
	for i, a := range args {
		exprArgs[i] = toExpr(a)
	}
	return Operation{Op: op, Args: exprArgs}
}

// Add builds Operation('+', args...). args may mix Expression values and
// numeric primitives; order is preserved exactly as given, so Add(2, x)
// and Add(x, 2) build distinct (though canonicalization-equivalent) nodes,
// matching spec 4.B.
func Add(args ...interface{}) Operation { return newOperation(OpAdd, args...) }

// Sub builds Operation('-', args...).
func Sub(args ...interface{}) Operation { return newOperation(OpSub, args...) }

// Mul builds Operation('*', args...).
func Mul(args ...interface{}) Operation { return newOperation(OpMul, args...) }

// Div builds Operation('/', args...).
func Div(args ...interface{}) Operation { return newOperation(OpDiv, args...) }

func (o Operation) Key() string {
	parts := make([]string, len(o.Args))
	for i, a := range o.Args {
		parts[i] = a.Key()
	}
	return "(" + string(o.Op) + " " + strings.Join(parts, ",") + ")"
}

// VectorLiteral is a fixed length-2 ordered pair of expressions (spec 3).
// Each item may itself be an Expression or numeric primitive.
type VectorLiteral struct {
	Items [2]Expression
}

// Vec builds a VectorLiteral from two items, each an Expression or
// numeric primitive. Exposed to callers as plane.V (spec 6).
func Vec(a, b interface{}) VectorLiteral {
	return VectorLiteral{Items: [2]Expression{toExpr(a), toExpr(b)}}
}

func (v VectorLiteral) Key() string {
	return "V(" + v.Items[0].Key() + "," + v.Items[1].Key() + ")"
}

// CollectVariables walks e depth-first, left to right, and returns every
// distinct Variable it names, in first-seen order. Used by solve to
// derive a deterministic variable ordering independent of Go's
// randomized map iteration (spec 4.F, "first-seen order").
func CollectVariables(e Expression) []Variable {
	var out []Variable
	seen := make(map[string]bool)
	var walk func(Expression)
	walk = func(node Expression) {
		switch n := node.(type) {
		case Variable:
			if !seen[n.Path] {
				seen[n.Path] = true
				out = append(out, n)
			}
		case Operation:
			for _, a := range n.Args {
				walk(a)
			}
		case VectorLiteral:
			walk(n.Items[0])
			walk(n.Items[1])
		case Primitive:
			// no variables to record
		}
	}
	walk(e)
	return out
}

// StructurallyEqual reports whether a and b are equal by construction,
// i.e. have the same Key(). This is the explicit predicate the DESIGN
// NOTES ask for so a typed "==" can stay reserved for Eq (equation.go), which
// returns an Equation rather than a bool.
func StructurallyEqual(a, b Expression) bool {
	return a.Key() == b.Key()
}
