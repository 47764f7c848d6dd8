package plonk

import "github.com/consensys/gnark-crypto/ecc/bn254/fr"

// Expr is a node of a gate polynomial.
// Expressions are built exactly once, symbolically, inside
// [ConstraintSystem.CreateGate]; they never touch concrete witness values.
// Evaluation happens row by row inside [MockProver.Verify].
type Expr interface {
	// Degree returns the degree of the polynomial, counting column and
	// selector queries as degree one.
	Degree() int
}

type constExpr struct {
	v fr.Element
}

func (constExpr) Degree() int { return 0 }

type selectorExpr struct {
	s Selector
}

func (selectorExpr) Degree() int { return 1 }

type queryExpr struct {
	col Column
	rot Rotation
}

func (queryExpr) Degree() int { return 1 }

type sumExpr struct {
	a, b Expr
}

func (e sumExpr) Degree() int {
	return max(e.a.Degree(), e.b.Degree())
}

type negExpr struct {
	a Expr
}

func (e negExpr) Degree() int { return e.a.Degree() }

type productExpr struct {
	a, b Expr
}

func (e productExpr) Degree() int {
	return e.a.Degree() + e.b.Degree()
}

// Constant returns a constant expression.
func Constant(v fr.Element) Expr {
	return constExpr{v: v}
}

// ConstantUint64 returns a small constant expression.
func ConstantUint64(v uint64) Expr {
	var e fr.Element
	e.SetUint64(v)
	return Constant(e)
}

// Add returns a + b.
func Add(a, b Expr) Expr {
	return sumExpr{a: a, b: b}
}

// Sub returns a - b.
func Sub(a, b Expr) Expr {
	return sumExpr{a: a, b: negExpr{a: b}}
}

// Neg returns -a.
func Neg(a Expr) Expr {
	return negExpr{a: a}
}

// Mul returns a * b.
func Mul(a, b Expr) Expr {
	return productExpr{a: a, b: b}
}
