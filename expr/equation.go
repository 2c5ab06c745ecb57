// Equation and EquationSet: binding two expressions under the "=" relation
// and a deduplicated collection of such bindings.
//
// Grounded on pivot.lexicon.equation.Equation/EquationSet from
// original_source, and on the teacher's RWMutex-guarded mutable
// collection idiom (core.Graph's muVert/muEdgeAdj split) - EquationSet is
// read-shared across goroutines even though a solve itself is
// single-threaded (spec 5).
package expr

import "sync"

// Equation records a proposed equality between two Expressions. Reflexive
// is true iff subj and obj are structurally identical (spec 3) - this is
// what the DESIGN NOTES' non-boolean "==" trick becomes in a typed
// language: construction, not comparison, decides truth.
type Equation struct {
	Subj, Obj Expression
	Reflexive bool
}

// NewEquation builds an Equation, computing Reflexive from structural
// equality of subj and obj.
func NewEquation(subj, obj Expression) Equation {
	return Equation{Subj: subj, Obj: obj, Reflexive: StructurallyEqual(subj, obj)}
}

// Key identifies an Equation by its (subj, obj) pair (spec 3: "Equality
// and hashing of Equations derive from (subj, obj)").
func (e Equation) Key() string {
	return e.Subj.Key() + "=" + e.Obj.Key()
}

// Eq is the typed stand-in for the source's equality-operator-returns-an-
// Equation trick: v.Eq(expr) reads like "v == expr" at the call site
// without overloading a boolean-returning operator (DESIGN NOTES).
func (v Variable) Eq(other interface{}) Equation {
	return NewEquation(v, toExpr(other))
}

// Eq builds an Equation between any two Expressions (or numeric
// primitives), for the general case where the left side isn't a bare
// Variable.
func Eq(left, right interface{}) Equation {
	return NewEquation(toExpr(left), toExpr(right))
}

// EquationSet is an unordered, deduplicated collection of Equations.
// Ownership: an EquationSet owns its Equations; Equations share ownership
// of sub-Expressions, which are immutable and safe to alias freely.
//
// Internally backed by a map keyed on Equation.Key for dedup plus an
// order slice for deterministic, first-seen iteration (spec: "two
// semantically identical inputs presented with different equation
// orderings may yield differently-ordered matrices but the same solution
// map" - the order itself must still be well-defined for a single set).
type EquationSet struct {
	mu    sync.RWMutex
	byKey map[string]Equation
	order []string
}

// NewEquationSet builds an EquationSet from zero or more Equations,
// silently deduplicating by (subj, obj).
func NewEquationSet(equations ...Equation) *EquationSet {
	es := &EquationSet{byKey: make(map[string]Equation, len(equations))}
	for _, eq := range equations {
		es.Add(eq)
	}
	return es
}

// Add inserts eq, a no-op if an equal (subj, obj) pair is already present.
func (es *EquationSet) Add(eq Equation) {
	es.mu.Lock()
	defer es.mu.Unlock()
	k := eq.Key()
	if _, exists := es.byKey[k]; exists {
		return
	}
	es.byKey[k] = eq
	es.order = append(es.order, k)
}

// Bind appends Equation{Var(name), e} - the Go shape of the source's
// EquationSet.from_equations(**name=expr) kwargs form.
func (es *EquationSet) Bind(name string, e interface{}) {
	es.Add(NewEquation(Var(name), toExpr(e)))
}

// Equations returns the set's Equations in first-seen insertion order.
func (es *EquationSet) Equations() []Equation {
	es.mu.RLock()
	defer es.mu.RUnlock()
	out := make([]Equation, len(es.order))
	for i, k := range es.order {
		out[i] = es.byKey[k]
	}
	return out
}

// Len returns the number of distinct equations in the set.
func (es *EquationSet) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()
	return len(es.order)
}

// FromFunc is the Go shape of the *dict-def* construction form (spec 4.C,
// DESIGN NOTES): since Go cannot reflect on a closure's parameter names,
// the caller supplies them explicitly; f receives a map of fresh
// Variables keyed by those names and returns a map of {name: expr}
// bindings, each becoming Equation(Variable(name), expr).
func FromFunc(names []string, f func(vars map[string]Variable) map[string]Expression) *EquationSet {
	vars := make(map[string]Variable, len(names))
	for _, name := range names {
		vars[name] = Var(name)
	}
	bindings := f(vars)
	es := &EquationSet{byKey: make(map[string]Equation, len(bindings))}
	for name, e := range bindings {
		es.Add(NewEquation(Var(name), e))
	}
	return es
}
