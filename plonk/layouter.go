package plonk

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sp301415/plonkish/logger"
	"github.com/sp301415/plonkish/num"
)

// Layouter places regions on the witness table one after another, in call
// order, and translates region-relative rows to absolute rows. Circuit code
// never sees absolute row numbers.
type Layouter struct {
	f     *floorPlanner
	label string
}

// floorPlanner is the state shared between a layouter and its namespaces:
// the single-pass sequential placement cursor over the 2^k row table.
type floorPlanner struct {
	cs  *ConstraintSystem
	asg *assignment

	k    int
	next int

	log zerolog.Logger
}

func newLayouter(cs *ConstraintSystem, asg *assignment, k int) *Layouter {
	return &Layouter{
		f: &floorPlanner{
			cs:  cs,
			asg: asg,

			k: k,

			log: logger.Logger().With().Str("component", "layouter").Logger(),
		},
	}
}

// Namespace returns a layouter identical to l save for a diagnostic label.
// Namespaces have no effect on row placement.
func (l *Layouter) Namespace(label string) *Layouter {
	if l.label != "" {
		label = l.label + "/" + label
	}
	return &Layouter{f: l.f, label: label}
}

// AssignRegion reserves the next free rows for a named region and runs fn on
// it. The region's height is one more than the largest relative row fn
// touches; following regions start right below it.
func (l *Layouter) AssignRegion(name string, fn func(r *Region) error) error {
	if l.label != "" {
		name = l.label + "/" + name
	}

	r := &Region{
		f:     l.f,
		name:  name,
		start: l.f.next,
	}
	if err := fn(r); err != nil {
		return fmt.Errorf("region %q: %w", name, err)
	}
	l.f.next = r.start + r.rows

	l.f.log.Debug().
		Str("region", name).
		Int("start", r.start).
		Int("rows", r.rows).
		Msg("region placed")

	return nil
}

// ConstrainInstance binds cell to the public input at the given row of an
// instance column. The binding is validated by [MockProver.Verify] once the
// witness is frozen. Both columns must have had equality enabled.
func (l *Layouter) ConstrainInstance(cell Cell, col Column, row int) error {
	if col.Kind != Instance {
		return fmt.Errorf("plonk: %v is not an instance column", col)
	}
	if !l.f.cs.EqualityEnabled(col) {
		return fmt.Errorf("%w: %v", ErrEqualityNotEnabled, col)
	}
	if !l.f.cs.EqualityEnabled(cell.Column) {
		return fmt.Errorf("%w: %v", ErrEqualityNotEnabled, cell.Column)
	}

	l.f.asg.bindings = append(l.f.asg.bindings, instanceBinding{
		cell:   cell,
		column: col,
		row:    row,
	})
	return nil
}

// Region is a named contiguous block of rows handed to circuit code by
// [Layouter.AssignRegion]. Rows are addressed relative to the region start.
// Regions never overlap.
type Region struct {
	f     *floorPlanner
	name  string
	start int
	rows  int
}

// abs translates a region-relative row to an absolute row, growing the
// region to cover it.
func (r *Region) abs(offset int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("%w: negative offset %d", ErrRowOutOfRange, offset)
	}

	row := r.start + offset
	if row >= r.f.asg.rows {
		return 0, fmt.Errorf("%w: row %d with k = %d, need k >= %d",
			ErrNotEnoughRows, row, r.f.k, num.CeilLog2(row+1))
	}

	if offset+1 > r.rows {
		r.rows = offset + 1
	}
	return row, nil
}

// AssignAdvice assigns value to the advice column col at the given
// region-relative row and returns a handle to the new cell.
//
// Returns [ErrMissingValue] when value is unknown: a circuit that could not
// compute its witness must fail synthesis rather than assign a default.
func (r *Region) AssignAdvice(name string, col Column, offset int, value Value) (AssignedCell, error) {
	if col.Kind != Advice {
		return AssignedCell{}, fmt.Errorf("plonk: %v is not an advice column", col)
	}

	row, err := r.abs(offset)
	if err != nil {
		return AssignedCell{}, err
	}

	v, ok := value.Get()
	if !ok {
		return AssignedCell{}, fmt.Errorf("%w: %q", ErrMissingValue, name)
	}

	if err := r.f.asg.assign(col, row, v); err != nil {
		return AssignedCell{}, err
	}

	return AssignedCell{cell: Cell{Column: col, Row: row}, value: value}, nil
}

// AssignFixed assigns a constant to the fixed column col at the given
// region-relative row.
func (r *Region) AssignFixed(name string, col Column, offset int, value Value) (AssignedCell, error) {
	if col.Kind != Fixed {
		return AssignedCell{}, fmt.Errorf("plonk: %v is not a fixed column", col)
	}

	row, err := r.abs(offset)
	if err != nil {
		return AssignedCell{}, err
	}

	v, ok := value.Get()
	if !ok {
		return AssignedCell{}, fmt.Errorf("%w: %q", ErrMissingValue, name)
	}

	if err := r.f.asg.assign(col, row, v); err != nil {
		return AssignedCell{}, err
	}

	return AssignedCell{cell: Cell{Column: col, Row: row}, value: value}, nil
}

// EnableSelector turns s on at the given region-relative row.
func (r *Region) EnableSelector(s Selector, offset int) error {
	row, err := r.abs(offset)
	if err != nil {
		return err
	}

	r.f.asg.selectors[s.index].Set(uint(row))
	return nil
}

// ConstrainEqual records a copy constraint between two cells.
// Both columns must have had equality enabled during configuration.
// Equality is transitive across all recorded constraints, and constraints
// may cross region boundaries freely.
func (r *Region) ConstrainEqual(a, b Cell) error {
	if !r.f.cs.EqualityEnabled(a.Column) {
		return fmt.Errorf("%w: %v", ErrEqualityNotEnabled, a.Column)
	}
	if !r.f.cs.EqualityEnabled(b.Column) {
		return fmt.Errorf("%w: %v", ErrEqualityNotEnabled, b.Column)
	}

	r.f.asg.copies.record(a, b)
	return nil
}

// CopyAdvice assigns the value held by from into col at the given
// region-relative row and records a copy constraint between the two cells,
// linking regions explicitly instead of trusting value re-supply.
func (r *Region) CopyAdvice(from AssignedCell, col Column, offset int) (AssignedCell, error) {
	to, err := r.AssignAdvice("copy", col, offset, from.Value())
	if err != nil {
		return AssignedCell{}, err
	}

	if err := r.ConstrainEqual(from.Cell(), to.Cell()); err != nil {
		return AssignedCell{}, err
	}
	return to, nil
}
