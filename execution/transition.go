package execution

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/mimc"
)

// Transition is one program call's worth of finished circuit outputs. The id
// is a MiMC digest over the program locator and the input/output values, so
// equal transitions collide and distinct ones practically never do.
type Transition struct {
	id       fr.Element
	program  string
	function string
	inputs   []fr.Element
	outputs  []fr.Element
}

// NewTransition builds a transition and derives its id.
func NewTransition(program, function string, inputs, outputs []fr.Element) *Transition {
	t := &Transition{
		program:  program,
		function: function,
		inputs:   append([]fr.Element(nil), inputs...),
		outputs:  append([]fr.Element(nil), outputs...),
	}
	t.id = t.digest()
	return t
}

func (t *Transition) digest() fr.Element {
	h := mimc.NewMiMC()

	// strings are reduced into the field before hashing so every written
	// block is a canonical element encoding
	var e fr.Element
	e.SetBytes([]byte(t.program))
	_, _ = h.Write(e.Marshal())
	e.SetBytes([]byte(t.function))
	_, _ = h.Write(e.Marshal())

	for _, in := range t.inputs {
		_, _ = h.Write(in.Marshal())
	}
	for _, out := range t.outputs {
		_, _ = h.Write(out.Marshal())
	}

	var id fr.Element
	id.SetBytes(h.Sum(nil))
	return id
}

// ID returns the transition id.
func (t *Transition) ID() fr.Element {
	return t.id
}

func (t *Transition) Program() string {
	return t.program
}

func (t *Transition) Function() string {
	return t.function
}

// Inputs returns the input values.
func (t *Transition) Inputs() []fr.Element {
	return append([]fr.Element(nil), t.inputs...)
}

// Outputs returns the output values.
func (t *Transition) Outputs() []fr.Element {
	return append([]fr.Element(nil), t.outputs...)
}

// Commitments returns the values this transition commits to; consumers treat
// them as opaque.
func (t *Transition) Commitments() []fr.Element {
	return t.Outputs()
}
