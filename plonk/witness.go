package plonk

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// instanceBinding asserts that a witness cell equals the public input at the
// given row of an instance column.
type instanceBinding struct {
	cell   Cell
	column Column
	row    int
}

// assignment is the concrete witness table built during synthesis: one vector
// of field elements per advice and fixed column, with a bitmap of assigned
// cells per column, plus the selector bitmaps, copy constraints and public
// input bindings recorded along the way.
//
// The assignment is exclusively owned by the layouter until freeze, after
// which it is read-only and may be shared freely.
type assignment struct {
	rows int

	advice    [][]fr.Element
	adviceSet []*bitset.BitSet
	fixed     [][]fr.Element
	fixedSet  []*bitset.BitSet

	selectors []*bitset.BitSet

	copies   *copySet
	bindings []instanceBinding

	frozen bool
}

func newAssignment(cs *ConstraintSystem, rows int) *assignment {
	a := &assignment{
		rows: rows,

		advice:    make([][]fr.Element, cs.numAdvice),
		adviceSet: make([]*bitset.BitSet, cs.numAdvice),
		fixed:     make([][]fr.Element, cs.numFixed),
		fixedSet:  make([]*bitset.BitSet, cs.numFixed),

		selectors: make([]*bitset.BitSet, cs.numSelectors),

		copies: newCopySet(),
	}

	for i := range a.advice {
		a.advice[i] = make([]fr.Element, rows)
		a.adviceSet[i] = bitset.New(uint(rows))
	}
	for i := range a.fixed {
		a.fixed[i] = make([]fr.Element, rows)
		a.fixedSet[i] = bitset.New(uint(rows))
	}
	for i := range a.selectors {
		a.selectors[i] = bitset.New(uint(rows))
	}

	return a
}

// assign writes v to (col, row). Every cell is assigned at most once.
func (a *assignment) assign(col Column, row int, v fr.Element) error {
	if a.frozen {
		return ErrStoreFrozen
	}
	if row < 0 || row >= a.rows {
		return fmt.Errorf("%w: row %d of %v", ErrRowOutOfRange, row, col)
	}

	switch col.Kind {
	case Advice:
		if a.adviceSet[col.Index].Test(uint(row)) {
			return fmt.Errorf("%w: %v", ErrCellReassigned, Cell{Column: col, Row: row})
		}
		a.advice[col.Index][row] = v
		a.adviceSet[col.Index].Set(uint(row))
	case Fixed:
		if a.fixedSet[col.Index].Test(uint(row)) {
			return fmt.Errorf("%w: %v", ErrCellReassigned, Cell{Column: col, Row: row})
		}
		a.fixed[col.Index][row] = v
		a.fixedSet[col.Index].Set(uint(row))
	default:
		return fmt.Errorf("plonk: cannot assign to %v column", col.Kind)
	}

	return nil
}

// read returns the value at (col, row).
// The second return value is false for unassigned or out-of-range cells.
// Instance columns are not stored here; their values live in the public input
// vectors and are resolved by the mock prover.
func (a *assignment) read(col Column, row int) (fr.Element, bool) {
	if row < 0 || row >= a.rows {
		return fr.Element{}, false
	}

	switch col.Kind {
	case Advice:
		if !a.adviceSet[col.Index].Test(uint(row)) {
			return fr.Element{}, false
		}
		return a.advice[col.Index][row], true
	case Fixed:
		if !a.fixedSet[col.Index].Test(uint(row)) {
			return fr.Element{}, false
		}
		return a.fixed[col.Index][row], true
	}

	return fr.Element{}, false
}

// selectorOn returns whether selector s is on at row.
func (a *assignment) selectorOn(s Selector, row int) bool {
	if row < 0 || row >= a.rows {
		return false
	}
	return a.selectors[s.index].Test(uint(row))
}

// freeze makes the assignment read-only and returns every cell referenced by
// a copy constraint that was never assigned. Such a cell makes the circuit
// unsatisfiable regardless of gate logic, so callers surface the list for
// diagnostics.
func (a *assignment) freeze() []Cell {
	a.frozen = true

	var dangling []Cell
	for _, class := range a.copies.classes() {
		for _, cell := range class {
			if cell.Column.Kind == Instance {
				// Instance cells resolve against the public input vectors.
				continue
			}
			if _, ok := a.read(cell.Column, cell.Row); !ok {
				dangling = append(dangling, cell)
			}
		}
	}
	return dangling
}
