// Package solve implements the scalar linear engine: given an
// expr.EquationSet whose sub-expressions are linear over scalar
// variables, it rewrites each equation as subj-obj=0, canonicalizes that
// difference via canon, assembles an augmented matrix via rref, reduces it,
// and zips pivots back to the original variables.
//
// Grounded on pivot.deduction.linear.LinearEngine.solve_equation_set from
// original_source (the row-layout algorithm is ported step for step) and
// on the teacher's dijkstra package's functional-options Engine shape.
package solve

import (
	"github.com/silvanis/pivot/canon"
	"github.com/silvanis/pivot/expr"
	"github.com/silvanis/pivot/field"
	"github.com/silvanis/pivot/pivoterr"
	"github.com/silvanis/pivot/pivotlog"
	"github.com/silvanis/pivot/rref"
)

// SolveEquationSet returns the solutions of a linear system as a map from
// Variable to value. Implements spec 4.F steps 1-7:
//
//  1. canonicalize subj-obj for each equation;
//  2. maintain an ordered list V of variables in first-seen order;
//  3. extract the constant term and append its negation to the
//     augmentation column;
//  4. extend V with any variables new to this equation;
//  5. build the row by looking up each variable in V, defaulting to the
//     additive identity, padding earlier rows as V grows;
//  6. reduce the assembled augmented matrix;
//  7. zip RREF pivots back to V.
//
// A system with fewer equations than variables fails with ErrIrreducible.
func SolveEquationSet(es *expr.EquationSet, opts ...Option) (map[expr.Variable]field.Coefficient, error) {
	cfg := newConfig(opts...)
	f := cfg.field()

	var variables []expr.Variable
	seen := make(map[string]bool)
	var entries [][]field.Coefficient
	var augmentations []field.Coefficient

	for _, eq := range es.Equations() {
		diff := expr.Sub(eq.Subj, eq.Obj)

		sop, err := canon.FromExpression(diff, f)
		if err != nil {
			return nil, pivoterr.Wrap("solve.SolveEquationSet", err)
		}

		constant := sop.Get(canon.ConstKey)
		augmentations = append(augmentations, constant.Neg())

		for _, v := range expr.CollectVariables(diff) {
			if !seen[v.Path] {
				seen[v.Path] = true
				variables = append(variables, v)
			}
		}

		row := make([]field.Coefficient, len(variables))
		for i, v := range variables {
			row[i] = sop.Get(canon.VarKey(v))
		}
		entries = append(entries, row)
	}

	nVars := len(variables)
	rows := make([][]field.Coefficient, len(entries))
	for i, entry := range entries {
		row := make([]field.Coefficient, nVars+1)
		for j := 0; j < nVars; j++ {
			if j < len(entry) {
				row[j] = entry[j]
			} else {
				row[j] = f.Zero()
			}
		}
		row[nVars] = augmentations[i]
		rows[i] = row
	}

	mat, err := rref.NewAugmented(rows, f)
	if err != nil {
		return nil, pivoterr.Wrap("solve.SolveEquationSet", err)
	}

	pivotlog.Tracef("solve: reducing %d equations over %d variables in %s mode", len(rows), nVars, f.Name())
	reduced, err := mat.Reduce()
	if err != nil {
		return nil, pivoterr.Wrap("solve.SolveEquationSet", err)
	}

	constants := reduced.Constants()
	if len(constants) < nVars {
		return nil, pivoterr.Wrap("solve.SolveEquationSet", pivoterr.ErrIrreducible)
	}
	solution := make(map[expr.Variable]field.Coefficient, nVars)
	for i, v := range variables {
		solution[v] = constants[i]
	}
	return solution, nil
}
