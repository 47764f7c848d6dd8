package plonk

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Gate is a named polynomial constraint.
// A gate contributes one constraint per row its selector is on at:
// the constraint holds iff the polynomial evaluates to zero.
type Gate struct {
	name     string
	selector *Selector
	poly     Expr
}

// Name returns the name of the gate.
func (g Gate) Name() string {
	return g.name
}

// ConstraintSystem collects the columns, selectors and gates declared by a
// circuit during its configure phase. Each circuit instance owns its own
// constraint system; once synthesis starts it is treated as immutable.
type ConstraintSystem struct {
	numAdvice    int
	numInstance  int
	numFixed     int
	numSelectors int

	equality map[Column]struct{}
	gates    []Gate
}

// NewConstraintSystem creates an empty ConstraintSystem.
func NewConstraintSystem() *ConstraintSystem {
	return &ConstraintSystem{
		equality: make(map[Column]struct{}),
	}
}

// AdviceColumn declares a new advice column.
func (cs *ConstraintSystem) AdviceColumn() Column {
	col := Column{Kind: Advice, Index: cs.numAdvice}
	cs.numAdvice++
	return col
}

// InstanceColumn declares a new instance column.
func (cs *ConstraintSystem) InstanceColumn() Column {
	col := Column{Kind: Instance, Index: cs.numInstance}
	cs.numInstance++
	return col
}

// FixedColumn declares a new fixed column.
func (cs *ConstraintSystem) FixedColumn() Column {
	col := Column{Kind: Fixed, Index: cs.numFixed}
	cs.numFixed++
	return col
}

// Selector declares a new selector.
func (cs *ConstraintSystem) Selector() Selector {
	s := Selector{index: cs.numSelectors}
	cs.numSelectors++
	return s
}

// EnableEquality marks col as eligible for copy constraints.
//
// Panics when col was not declared on this constraint system.
func (cs *ConstraintSystem) EnableEquality(col Column) {
	cs.mustHaveColumn(col)
	cs.equality[col] = struct{}{}
}

// EqualityEnabled returns whether col may participate in copy constraints.
func (cs *ConstraintSystem) EqualityEnabled(col Column) bool {
	_, ok := cs.equality[col]
	return ok
}

// CreateGate declares a named gate. The builder runs exactly once, against
// symbolic queries handed out by [VirtualCells]; it never sees concrete
// witness values.
//
// Panics when the builder queries a column or selector that was not declared
// on this constraint system.
func (cs *ConstraintSystem) CreateGate(name string, build func(v *VirtualCells) Expr) {
	v := &VirtualCells{cs: cs}
	poly := build(v)
	if poly == nil {
		panic(fmt.Sprintf("plonk: gate %q built a nil polynomial", name))
	}

	cs.gates = append(cs.gates, Gate{
		name:     name,
		selector: v.selector,
		poly:     poly,
	})
}

// Gates returns the declared gates in declaration order.
func (cs *ConstraintSystem) Gates() []Gate {
	return cs.gates
}

func (cs *ConstraintSystem) mustHaveColumn(col Column) {
	var n int
	switch col.Kind {
	case Advice:
		n = cs.numAdvice
	case Instance:
		n = cs.numInstance
	case Fixed:
		n = cs.numFixed
	default:
		panic(fmt.Sprintf("plonk: unknown column kind %d", col.Kind))
	}

	if col.Index < 0 || col.Index >= n {
		panic(fmt.Sprintf("plonk: column %v not declared", col))
	}
}

// VirtualCells hands out the symbolic queries available to a gate builder.
type VirtualCells struct {
	cs       *ConstraintSystem
	selector *Selector
}

// QuerySelector queries the gate's controlling selector: the resulting
// expression evaluates to one at rows the selector is on at and zero
// elsewhere. The first selector queried becomes the gate's controlling
// selector, restricting the rows the gate is checked at.
//
// Panics when s was not declared on this constraint system.
func (v *VirtualCells) QuerySelector(s Selector) Expr {
	if s.index < 0 || s.index >= v.cs.numSelectors {
		panic("plonk: selector not declared")
	}
	if v.selector == nil {
		v.selector = &s
	}
	return selectorExpr{s: s}
}

// QueryAdvice queries an advice column at the given rotation.
//
// Panics when col is not a declared advice column.
func (v *VirtualCells) QueryAdvice(col Column, rot Rotation) Expr {
	if col.Kind != Advice {
		panic(fmt.Sprintf("plonk: %v is not an advice column", col))
	}
	v.cs.mustHaveColumn(col)
	return queryExpr{col: col, rot: rot}
}

// QueryInstance queries an instance column at the given rotation.
//
// Panics when col is not a declared instance column.
func (v *VirtualCells) QueryInstance(col Column, rot Rotation) Expr {
	if col.Kind != Instance {
		panic(fmt.Sprintf("plonk: %v is not an instance column", col))
	}
	v.cs.mustHaveColumn(col)
	return queryExpr{col: col, rot: rot}
}

// QueryFixed queries a fixed column at the given rotation.
//
// Panics when col is not a declared fixed column.
func (v *VirtualCells) QueryFixed(col Column, rot Rotation) Expr {
	if col.Kind != Fixed {
		panic(fmt.Sprintf("plonk: %v is not a fixed column", col))
	}
	v.cs.mustHaveColumn(col)
	return queryExpr{col: col, rot: rot}
}

// Constant returns a constant expression.
func (v *VirtualCells) Constant(c fr.Element) Expr {
	return Constant(c)
}
