// Package pivot is an automated mathematical-deduction library: build
// symbolic expressions out of named variables, literals and the four
// arithmetic operators, bundle them into equations, and solve.
//
// What is pivot?
//
//	A small, dependency-light library that brings together:
//
//	  - Expression algebra: variables, variable attributes, operator
//	    composition, vector literals - all immutable and hashable.
//	  - A linear canonicalizer that folds any expression tree into a
//	    flat sum-of-products, rejecting non-linear structure.
//	  - A field-parametric row reducer (exact rational or floating
//	    point) driving a scalar linear solver.
//	  - A planar extension that lifts the same solver over 2-vectors.
//
// Everything is organized under single-concern subpackages:
//
//	field/   - exact and floating-point coefficient arithmetic
//	expr/    - expression tree, equations, equation sets
//	canon/   - expression -> sum-of-products canonicalization
//	rref/    - augmented matrix and Gauss-Jordan reduction
//	solve/   - the scalar linear engine
//	plane/   - planar vectors and the planar engine
//	pivoterr/ - shared error taxonomy
//	pivotlog/ - opt-in solve tracing
//
// Quick example:
//
//	x, y := expr.Var("x"), expr.Var("y")
//	es := expr.NewEquationSet(
//	        expr.NewEquation(x, expr.Num(1)),
//	        expr.NewEquation(y, x),
//	)
//	sol, err := solve.SolveEquationSet(es)
//	// sol == {x: 1, y: 1}
package pivot
