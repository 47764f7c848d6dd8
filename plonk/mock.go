package plonk

import (
	"fmt"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/sp301415/plonkish/logger"
	"golang.org/x/sync/errgroup"
)

// MockProver synthesizes a circuit over a 2^k row table and checks the
// witness against every gate, copy and public input constraint, without any
// cryptography. It accepts exactly the witnesses a real prover could turn
// into a valid proof for the same circuit and public inputs.
type MockProver struct {
	k  int
	cs *ConstraintSystem

	asg      *assignment
	instance [][]fr.Element
}

// RunMock configures circuit, synthesizes its witness over 2^k rows, and
// returns a prover ready for [MockProver.Verify]. instance holds one public
// input vector per instance column, in declaration order.
//
// Synthesis failures abort this circuit instance only; the returned error
// wraps one of the sentinel errors of this package.
func RunMock(k int, circuit Circuit, instance [][]fr.Element) (*MockProver, error) {
	if k <= 0 {
		return nil, fmt.Errorf("plonk: k must be positive")
	}

	cs := NewConstraintSystem()
	circuit.Configure(cs)

	if len(instance) != cs.numInstance {
		return nil, fmt.Errorf("plonk: got %d public input vectors for %d instance columns",
			len(instance), cs.numInstance)
	}

	rows := 1 << k
	for i := range instance {
		if len(instance[i]) > rows {
			return nil, fmt.Errorf("%w: %d public inputs with k = %d", ErrNotEnoughRows, len(instance[i]), k)
		}
	}

	asg := newAssignment(cs, rows)
	if err := circuit.Synthesize(newLayouter(cs, asg, k)); err != nil {
		return nil, err
	}

	if dangling := asg.freeze(); len(dangling) > 0 {
		log := logger.Logger()
		for _, cell := range dangling {
			log.Warn().Stringer("cell", cell).Msg("copy constraint references unassigned cell")
		}
	}

	log := logger.Logger()
	log.Debug().
		Int("k", k).
		Int("rows", rows).
		Int("gates", len(cs.gates)).
		Msg("synthesis complete")

	return &MockProver{
		k:  k,
		cs: cs,

		asg:      asg,
		instance: instance,
	}, nil
}

// value resolves the value of (col, row) against the frozen witness.
// Instance columns read the supplied public input vectors, zero-padded up to
// the table height; advice and fixed columns read the witness store.
func (p *MockProver) value(col Column, row int) (fr.Element, bool) {
	if col.Kind == Instance {
		if row < 0 || row >= p.asg.rows {
			return fr.Element{}, false
		}
		vec := p.instance[col.Index]
		if row < len(vec) {
			return vec[row], true
		}
		return fr.Element{}, true
	}

	return p.asg.read(col, row)
}

// eval evaluates a gate polynomial at row.
func (p *MockProver) eval(e Expr, row int) (fr.Element, error) {
	switch e := e.(type) {
	case constExpr:
		return e.v, nil

	case selectorExpr:
		if p.asg.selectorOn(e.s, row) {
			return fr.One(), nil
		}
		return fr.Element{}, nil

	case queryExpr:
		at := row + int(e.rot)
		if at < 0 || at >= p.asg.rows {
			return fr.Element{}, fmt.Errorf("%w: rotation %d from row %d", ErrRowOutOfRange, e.rot, row)
		}
		v, ok := p.value(e.col, at)
		if !ok {
			return fr.Element{}, fmt.Errorf("%w: %v", ErrMissingValue, Cell{Column: e.col, Row: at})
		}
		return v, nil

	case sumExpr:
		a, err := p.eval(e.a, row)
		if err != nil {
			return fr.Element{}, err
		}
		b, err := p.eval(e.b, row)
		if err != nil {
			return fr.Element{}, err
		}
		var r fr.Element
		r.Add(&a, &b)
		return r, nil

	case negExpr:
		a, err := p.eval(e.a, row)
		if err != nil {
			return fr.Element{}, err
		}
		var r fr.Element
		r.Neg(&a)
		return r, nil

	case productExpr:
		a, err := p.eval(e.a, row)
		if err != nil {
			return fr.Element{}, err
		}
		b, err := p.eval(e.b, row)
		if err != nil {
			return fr.Element{}, err
		}
		var r fr.Element
		r.Mul(&a, &b)
		return r, nil
	}

	return fr.Element{}, fmt.Errorf("plonk: unknown expression node %T", e)
}

// Verify checks every gate, copy and public input constraint and returns the
// complete list of failures. An empty result means the witness is accepted.
//
// The witness is frozen, so Verify is pure: calling it repeatedly always
// returns the same result. Gate checks run in parallel across rows; copy and
// public input checks need the whole table and run after.
func (p *MockProver) Verify() []Failure {
	var failures []Failure

	// Rows are independent once the witness is frozen.
	rowFailures := make([][]Failure, p.asg.rows)
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for row := 0; row < p.asg.rows; row++ {
		g.Go(func() error {
			for _, gate := range p.cs.gates {
				if gate.selector != nil && !p.asg.selectorOn(*gate.selector, row) {
					continue
				}

				v, err := p.eval(gate.poly, row)
				if err != nil {
					rowFailures[row] = append(rowFailures[row], GateFailure{Gate: gate.name, Row: row, Err: err})
					continue
				}
				if !v.IsZero() {
					rowFailures[row] = append(rowFailures[row], GateFailure{Gate: gate.name, Row: row})
				}
			}
			return nil
		})
	}
	_ = g.Wait()
	for _, fs := range rowFailures {
		failures = append(failures, fs...)
	}

	for _, class := range p.asg.copies.classes() {
		ok := true
		var ref fr.Element
		for i, cell := range class {
			v, assigned := p.value(cell.Column, cell.Row)
			if !assigned {
				ok = false
				break
			}
			if i == 0 {
				ref = v
				continue
			}
			if !v.Equal(&ref) {
				ok = false
				break
			}
		}
		if !ok {
			failures = append(failures, CopyFailure{Cells: class})
		}
	}

	for _, b := range p.asg.bindings {
		vec := p.instance[b.column.Index]
		if b.row < 0 || b.row >= len(vec) {
			failures = append(failures, InstanceFailure{Column: b.column, Row: b.row})
			continue
		}

		v, assigned := p.value(b.cell.Column, b.cell.Row)
		if !assigned || !v.Equal(&vec[b.row]) {
			failures = append(failures, InstanceFailure{Column: b.column, Row: b.row})
		}
	}

	log := logger.Logger()
	log.Debug().
		Int("failures", len(failures)).
		Msg("verify complete")

	return failures
}
