package plonk

import (
	"fmt"
	"strings"
)

// Failure is a single unsatisfied constraint reported by [MockProver.Verify].
// Failures are expected outcomes, not errors: a rejected witness yields the
// complete list rather than the first one found.
type Failure interface {
	fmt.Stringer
	failure()
}

// GateFailure reports a gate polynomial that did not evaluate to zero at a
// row its selector is on at, or that could not be evaluated at all.
type GateFailure struct {
	Gate string
	Row  int
	// Err is non-nil when evaluation itself failed: a rotation left the
	// witness table, or a queried cell was never assigned.
	Err error
}

func (GateFailure) failure() {}

// String implements the [fmt.Stringer] interface.
func (f GateFailure) String() string {
	if f.Err != nil {
		return fmt.Sprintf("gate %q at row %d: %v", f.Gate, f.Row, f.Err)
	}
	return fmt.Sprintf("gate %q at row %d: polynomial is nonzero", f.Gate, f.Row)
}

// CopyFailure reports a copy equivalence class whose members do not all hold
// the same assigned value.
type CopyFailure struct {
	Cells []Cell
}

func (CopyFailure) failure() {}

// String implements the [fmt.Stringer] interface.
func (f CopyFailure) String() string {
	cells := make([]string, len(f.Cells))
	for i, c := range f.Cells {
		cells[i] = c.String()
	}
	return fmt.Sprintf("copy constraint not satisfied between %s", strings.Join(cells, ", "))
}

// InstanceFailure reports a public input binding whose cell value differs
// from the supplied public input, or whose row lies outside the supplied
// public input vector.
type InstanceFailure struct {
	Column Column
	Row    int
}

func (InstanceFailure) failure() {}

// String implements the [fmt.Stringer] interface.
func (f InstanceFailure) String() string {
	return fmt.Sprintf("public input mismatch at %v row %d", f.Column, f.Row)
}
