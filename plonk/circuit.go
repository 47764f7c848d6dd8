package plonk

// Circuit is a fixed-shape arithmetic circuit.
//
// Configure runs once and declares the circuit's columns, selectors and
// gates; implementations store the declared handles on the circuit struct.
// Synthesize then assigns the concrete witness region by region through the
// layouter. The two phases are strictly ordered and never interleave.
type Circuit interface {
	// Configure declares the circuit's shape on cs.
	Configure(cs *ConstraintSystem)
	// Synthesize assigns the witness.
	Synthesize(l *Layouter) error
	// WithoutWitness returns a copy of the circuit with every witness value
	// unknown, for shape-only passes.
	WithoutWitness() Circuit
}
