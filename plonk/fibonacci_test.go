package plonk_test

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/sp301415/plonkish/plonk"
)

// threeColumnCircuit computes a Fibonacci chain over columns a, b, c with the
// single gate s * (a + b - c). Each region holds one row computing c = a + b;
// rows are linked by re-supplying the previous row's values directly.
type threeColumnCircuit struct {
	A, B plonk.Value

	colA, colB, colC plonk.Column
	instance         plonk.Column
	sel              plonk.Selector
}

func (c *threeColumnCircuit) Configure(cs *plonk.ConstraintSystem) {
	c.colA = cs.AdviceColumn()
	c.colB = cs.AdviceColumn()
	c.colC = cs.AdviceColumn()
	c.instance = cs.InstanceColumn()
	c.sel = cs.Selector()

	cs.EnableEquality(c.colA)
	cs.EnableEquality(c.colB)
	cs.EnableEquality(c.colC)
	cs.EnableEquality(c.instance)

	cs.CreateGate("add", func(v *plonk.VirtualCells) plonk.Expr {
		s := v.QuerySelector(c.sel)
		a := v.QueryAdvice(c.colA, plonk.RotationCur)
		b := v.QueryAdvice(c.colB, plonk.RotationCur)
		out := v.QueryAdvice(c.colC, plonk.RotationCur)
		return plonk.Mul(s, plonk.Sub(plonk.Add(a, b), out))
	})
}

func (c *threeColumnCircuit) assignRow(l *plonk.Layouter, prevB, prevC plonk.Value) (plonk.AssignedCell, error) {
	var out plonk.AssignedCell
	err := l.AssignRegion("row", func(r *plonk.Region) error {
		if err := r.EnableSelector(c.sel, 0); err != nil {
			return err
		}
		if _, err := r.AssignAdvice("a", c.colA, 0, prevB); err != nil {
			return err
		}
		if _, err := r.AssignAdvice("b", c.colB, 0, prevC); err != nil {
			return err
		}

		cCell, err := r.AssignAdvice("c", c.colC, 0, prevB.Add(prevC))
		if err != nil {
			return err
		}
		out = cCell
		return nil
	})
	return out, err
}

func (c *threeColumnCircuit) Synthesize(l *plonk.Layouter) error {
	prevB, prevC := c.A, c.B
	cCell, err := c.assignRow(l.Namespace("next row"), prevB, prevC)
	if err != nil {
		return err
	}

	for i := 3; i < 10; i++ {
		prevB, prevC = prevC, cCell.Value()
		cCell, err = c.assignRow(l.Namespace("next row"), prevB, prevC)
		if err != nil {
			return err
		}
	}

	return l.Namespace("out").ConstrainInstance(cCell.Cell(), c.instance, 0)
}

func (c *threeColumnCircuit) WithoutWitness() plonk.Circuit {
	return &threeColumnCircuit{}
}

// copyChainCircuit is the three-column chain again, but regions are linked
// with explicit copy constraints instead of direct value re-supply.
type copyChainCircuit struct {
	A, B plonk.Value

	colA, colB, colC plonk.Column
	instance         plonk.Column
	sel              plonk.Selector
}

func (c *copyChainCircuit) Configure(cs *plonk.ConstraintSystem) {
	(*threeColumnCircuit)(c).Configure(cs)
}

func (c *copyChainCircuit) Synthesize(l *plonk.Layouter) error {
	var bCell, cCell plonk.AssignedCell
	err := l.AssignRegion("first row", func(r *plonk.Region) error {
		if err := r.EnableSelector(c.sel, 0); err != nil {
			return err
		}
		if _, err := r.AssignAdvice("a", c.colA, 0, c.A); err != nil {
			return err
		}

		var err error
		if bCell, err = r.AssignAdvice("b", c.colB, 0, c.B); err != nil {
			return err
		}
		cCell, err = r.AssignAdvice("c", c.colC, 0, c.A.Add(c.B))
		return err
	})
	if err != nil {
		return err
	}

	for i := 3; i < 10; i++ {
		prevB, prevC := bCell, cCell
		err := l.AssignRegion("next row", func(r *plonk.Region) error {
			if err := r.EnableSelector(c.sel, 0); err != nil {
				return err
			}
			if _, err := r.CopyAdvice(prevB, c.colA, 0); err != nil {
				return err
			}

			var err error
			if bCell, err = r.CopyAdvice(prevC, c.colB, 0); err != nil {
				return err
			}
			cCell, err = r.AssignAdvice("c", c.colC, 0, prevB.Value().Add(prevC.Value()))
			return err
		})
		if err != nil {
			return err
		}
	}

	return l.ConstrainInstance(cCell.Cell(), c.instance, 0)
}

func (c *copyChainCircuit) WithoutWitness() plonk.Circuit {
	return &copyChainCircuit{}
}

// oneColumnCircuit computes the same chain in a single advice column and a
// single region of N rows, with the gate reading rotations 0, +1 and +2.
// The selector stays off on the last two rows, since the gate at row r reads
// up to row r+2. EnableAllRows deliberately breaks that margin for tests.
type oneColumnCircuit struct {
	A, B plonk.Value
	N    int

	EnableAllRows bool

	col      plonk.Column
	instance plonk.Column
	sel      plonk.Selector
}

func (c *oneColumnCircuit) Configure(cs *plonk.ConstraintSystem) {
	c.col = cs.AdviceColumn()
	c.instance = cs.InstanceColumn()
	c.sel = cs.Selector()

	cs.EnableEquality(c.col)
	cs.EnableEquality(c.instance)

	cs.CreateGate("add", func(v *plonk.VirtualCells) plonk.Expr {
		s := v.QuerySelector(c.sel)
		a := v.QueryAdvice(c.col, plonk.RotationCur)
		b := v.QueryAdvice(c.col, plonk.RotationNext)
		out := v.QueryAdvice(c.col, plonk.Rotation(2))
		return plonk.Mul(s, plonk.Sub(plonk.Add(a, b), out))
	})
}

func (c *oneColumnCircuit) Synthesize(l *plonk.Layouter) error {
	var last plonk.AssignedCell
	err := l.AssignRegion("fibonacci", func(r *plonk.Region) error {
		a, b := c.A, c.B

		if _, err := r.AssignAdvice("a", c.col, 0, a); err != nil {
			return err
		}
		bCell, err := r.AssignAdvice("b", c.col, 1, b)
		if err != nil {
			return err
		}

		for row := 0; row < c.N; row++ {
			if row < c.N-2 || c.EnableAllRows {
				if err := r.EnableSelector(c.sel, row); err != nil {
					return err
				}
			}
		}

		for row := 2; row < c.N; row++ {
			bCell, err = r.AssignAdvice("advice", c.col, row, a.Add(b))
			if err != nil {
				return err
			}
			a, b = b, bCell.Value()
		}

		last = bCell
		return nil
	})
	if err != nil {
		return err
	}

	return l.ConstrainInstance(last.Cell(), c.instance, 0)
}

func (c *oneColumnCircuit) WithoutWitness() plonk.Circuit {
	return &oneColumnCircuit{N: c.N, EnableAllRows: c.EnableAllRows}
}

// fibChain returns the value after n additions starting from a, b.
func fibChain(a, b fr.Element, n int) fr.Element {
	for i := 0; i < n; i++ {
		var c fr.Element
		c.Add(&a, &b)
		a, b = b, c
	}
	return b
}

func elem(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}
