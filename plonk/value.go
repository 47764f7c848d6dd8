package plonk

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Value is an optional field element.
// A circuit described without a concrete witness carries unknown values;
// assigning an unknown value to a cell fails synthesis instead of writing a
// default, so an incomplete witness can never be mistaken for zero.
type Value struct {
	v     fr.Element
	known bool
}

// Known wraps a concrete field element.
func Known(v fr.Element) Value {
	return Value{v: v, known: true}
}

// KnownUint64 wraps a small constant.
func KnownUint64(v uint64) Value {
	var e fr.Element
	e.SetUint64(v)
	return Known(e)
}

// Unknown returns the absent value.
func Unknown() Value {
	return Value{}
}

// IsKnown returns whether the value is present.
func (v Value) IsKnown() bool {
	return v.known
}

// Get returns the underlying field element.
// The second return value is false when the value is unknown.
func (v Value) Get() (fr.Element, bool) {
	return v.v, v.known
}

// Add returns v + w. The result is unknown if either operand is unknown.
func (v Value) Add(w Value) Value {
	if !v.known || !w.known {
		return Unknown()
	}
	var r fr.Element
	r.Add(&v.v, &w.v)
	return Known(r)
}

// Sub returns v - w. The result is unknown if either operand is unknown.
func (v Value) Sub(w Value) Value {
	if !v.known || !w.known {
		return Unknown()
	}
	var r fr.Element
	r.Sub(&v.v, &w.v)
	return Known(r)
}

// Mul returns v * w. The result is unknown if either operand is unknown.
func (v Value) Mul(w Value) Value {
	if !v.known || !w.known {
		return Unknown()
	}
	var r fr.Element
	r.Mul(&v.v, &w.v)
	return Known(r)
}

// AssignedCell is a read-only handle to an assigned cell together with the
// value it was assigned. The witness store owns the value; the handle only
// carries a copy so circuits can chain values into later regions without
// reading the store back.
type AssignedCell struct {
	cell  Cell
	value Value
}

// Cell returns the address of the assigned cell.
func (c AssignedCell) Cell() Cell {
	return c.cell
}

// Value returns the value the cell was assigned.
func (c AssignedCell) Value() Value {
	return c.value
}
