package plonk

import "errors"

// Errors of the synthesize phase. They are fatal for the circuit instance
// being synthesized but leave no shared state behind; other instances are
// unaffected. Configuration misuse panics instead, and an unsatisfied witness
// is not an error at all: it is the list of [Failure] values returned by
// [MockProver.Verify].
var (
	// ErrMissingValue is returned when an unknown [Value] is assigned to a cell.
	ErrMissingValue = errors.New("plonk: witness value missing")
	// ErrCellReassigned is returned when a cell is assigned twice.
	ErrCellReassigned = errors.New("plonk: cell already assigned")
	// ErrRowOutOfRange is returned when a row lies outside the witness table.
	ErrRowOutOfRange = errors.New("plonk: row out of range")
	// ErrNotEnoughRows is returned when a region does not fit in the 2^k rows
	// available to the layouter.
	ErrNotEnoughRows = errors.New("plonk: not enough rows")
	// ErrEqualityNotEnabled is returned when a copy constraint touches a column
	// that equality was never enabled for.
	ErrEqualityNotEnabled = errors.New("plonk: equality not enabled for column")
	// ErrStoreFrozen is returned when assigning to a frozen witness store.
	ErrStoreFrozen = errors.New("plonk: witness store is frozen")
)
