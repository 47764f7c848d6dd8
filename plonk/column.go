// Package plonk implements a minimal PLONKish arithmetization engine:
// circuits declare typed columns, selector-gated polynomial gates and copy
// constraints during a configure phase, assign a concrete witness region by
// region during a synthesize phase, and are then checked for satisfiability
// against externally supplied public inputs by a mock prover.
package plonk

import "fmt"

// ColumnKind distinguishes the three column types of a PLONKish table.
type ColumnKind int

const (
	// Advice columns hold private witness values.
	Advice ColumnKind = iota
	// Instance columns are bound to externally supplied public inputs.
	Instance
	// Fixed columns hold constants baked into the circuit shape.
	Fixed
)

// String implements the [fmt.Stringer] interface.
func (k ColumnKind) String() string {
	switch k {
	case Advice:
		return "Advice"
	case Instance:
		return "Instance"
	case Fixed:
		return "Fixed"
	}
	return "Unknown"
}

// Column is a single column of the witness table, identified by its kind and
// its index among columns of the same kind.
// Columns are declared by [ConstraintSystem]; the zero value is the first
// advice column.
type Column struct {
	Kind  ColumnKind
	Index int
}

// String implements the [fmt.Stringer] interface.
func (c Column) String() string {
	return fmt.Sprintf("%v[%d]", c.Kind, c.Index)
}

// Cell addresses a single cell of the witness table by column and absolute row.
type Cell struct {
	Column Column
	Row    int
}

// String implements the [fmt.Stringer] interface.
func (c Cell) String() string {
	return fmt.Sprintf("%v@%d", c.Column, c.Row)
}

// Rotation is a relative row offset used when a gate queries a column.
// A gate evaluated at row r reads the column at row r + rotation.
type Rotation int

const (
	// RotationCur queries the row the gate is evaluated at.
	RotationCur Rotation = 0
	// RotationNext queries the row after the one the gate is evaluated at.
	RotationNext Rotation = 1
)

// Selector is a per-row boolean toggle controlling the rows a gate applies to.
// Selectors are declared with [ConstraintSystem.Selector] and turned on during
// synthesis with [Region.EnableSelector]; they are not addressable as cells
// and cannot participate in copy constraints.
type Selector struct {
	index int
}
