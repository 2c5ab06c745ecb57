// Package rref implements the augmented matrix and its Gauss-Jordan
// reduction to row-reduced echelon form, parametric over any
// field.Coefficient so the same algorithm serves both the EXACT
// (math/big.Rat) and FLOAT (float64) solve methods (spec 4.E).
//
// Grounded on the teacher's matrix/impl_linear_algebra.go kernel layout
// (operation-tag constants, matrixErrorf wrapping, fixed loop order for
// determinism) and on pivot.ontology.matrix's ensure_good_pivot/
// reduced_rows recursion from original_source, reworked here as an
// iterative reduction so large systems don't grow the call stack.
package rref

import (
	"github.com/silvanis/pivot/field"
	"github.com/silvanis/pivot/pivoterr"
	"github.com/silvanis/pivot/pivotlog"
)

// AugmentedMatrix is an ordered sequence of equal-length rows over a
// single field.Field; the last column of every row is the constants
// column (spec 3).
type AugmentedMatrix struct {
	F    field.Field
	rows [][]field.Coefficient
}

// NewAugmented validates that every row has the same length and builds
// an AugmentedMatrix. An empty matrix (no rows) is valid and reduces to
// itself.
func NewAugmented(rows [][]field.Coefficient, f field.Field) (*AugmentedMatrix, error) {
	if len(rows) == 0 {
		return &AugmentedMatrix{F: f, rows: nil}, nil
	}
	width := len(rows[0])
	for _, row := range rows {
		if len(row) != width {
			return nil, pivoterr.Wrap("rref.NewAugmented", pivoterr.ErrDimensionMismatch)
		}
	}
	copied := make([][]field.Coefficient, len(rows))
	for i, row := range rows {
		copied[i] = append([]field.Coefficient(nil), row...)
	}
	return &AugmentedMatrix{F: f, rows: copied}, nil
}

// Rows returns a defensive copy of the matrix's rows.
func (m *AugmentedMatrix) Rows() [][]field.Coefficient {
	out := make([][]field.Coefficient, len(m.rows))
	for i, row := range m.rows {
		out[i] = append([]field.Coefficient(nil), row...)
	}
	return out
}

// Constants returns the right-most column of the matrix.
func (m *AugmentedMatrix) Constants() []field.Coefficient {
	out := make([]field.Coefficient, len(m.rows))
	for i, row := range m.rows {
		out[i] = row[len(row)-1]
	}
	return out
}

// swap exchanges two rows in place.
func swap(rows [][]field.Coefficient, i, j int) {
	rows[i], rows[j] = rows[j], rows[i]
}

// ensureGoodPivot swaps rowIndex with the next row below it whose
// pivot-column entry is not the additive identity, returning
// ErrIrreducible if no such row exists (spec 4.E).
func ensureGoodPivot(rows [][]field.Coefficient, rowIndex, pivotCol int) error {
	if !rows[rowIndex][pivotCol].IsZero() {
		return nil
	}
	for j := rowIndex + 1; j < len(rows); j++ {
		if !rows[j][pivotCol].IsZero() {
			pivotlog.Tracef("rref: swap row %d <-> %d on column %d", rowIndex, j, pivotCol)
			swap(rows, rowIndex, j)
			return nil
		}
	}
	pivotlog.Tracef("rref: no usable pivot in column %d at or below row %d", pivotCol, rowIndex)
	return pivoterr.Wrap("rref.Reduce", pivoterr.ErrIrreducible)
}

// Reduce returns the row-reduced echelon form of m, leaving m itself
// unmodified. Gauss-Jordan with partial pivoting by additive-identity
// avoidance: at step i, if row i's pivot-column entry is zero, swap with
// the next row below whose entry isn't; normalize the pivot row by
// dividing by the pivot, then eliminate that column from every other row.
func (m *AugmentedMatrix) Reduce() (*AugmentedMatrix, error) {
	rows := m.Rows()
	if len(rows) == 0 {
		return &AugmentedMatrix{F: m.F, rows: rows}, nil
	}

	nRows := len(rows)
	nCols := len(rows[0])
	pivotCols := nCols - 1

	steps := pivotCols
	if nRows < steps {
		steps = nRows
	}

	for i := 0; i < steps; i++ {
		if err := ensureGoodPivot(rows, i, i); err != nil {
			return nil, err
		}

		pivotVal := rows[i][i]
		pivotlog.Tracef("rref: pivoting on row %d, column %d, value %s", i, i, pivotVal)
		normalized := make([]field.Coefficient, nCols)
		for c, val := range rows[i] {
			q, err := val.Div(pivotVal)
			if err != nil {
				return nil, pivoterr.Wrap("rref.Reduce", err)
			}
			normalized[c] = q
		}
		rows[i] = normalized

		for r := 0; r < nRows; r++ {
			if r == i {
				continue
			}
			factor := rows[r][i]
			if factor.IsZero() {
				continue
			}
			eliminated := make([]field.Coefficient, nCols)
			for c := 0; c < nCols; c++ {
				eliminated[c] = rows[r][c].Sub(factor.Mul(rows[i][c]))
			}
			rows[r] = eliminated
		}
	}

	return &AugmentedMatrix{F: m.F, rows: rows}, nil
}
