// Package execution implements the container that bundles finished circuit
// outputs into a ledger-level data structure. It consumes field values as
// opaque serializable data and imposes no constraints back on the circuit
// layer; all of its failures are ordinary recoverable errors, never halts.
package execution

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Edition is the current execution format edition.
const Edition uint16 = 0

// Execution is an edition tag plus transitions kept in insertion order,
// addressable both by index and by transition id.
type Execution struct {
	edition     uint16
	order       []fr.Element
	transitions map[fr.Element]*Transition
}

// New returns an empty execution at the current edition.
func New() *Execution {
	return &Execution{
		edition:     Edition,
		transitions: make(map[fr.Element]*Transition),
	}
}

// FromTransitions initializes an execution with the given transitions. The
// list must be non-empty and the edition must match the current one.
func FromTransitions(edition uint16, transitions []*Transition) (*Execution, error) {
	if len(transitions) == 0 {
		return nil, fmt.Errorf("execution cannot initialize from an empty list of transitions")
	}
	if edition != Edition {
		return nil, fmt.Errorf("execution cannot initialize with edition %d, expected %d", edition, Edition)
	}
	e := New()
	for _, t := range transitions {
		e.Push(t)
	}
	return e, nil
}

// Edition returns the edition.
func (e *Execution) Edition() uint16 {
	return e.edition
}

// ContainsTransition reports whether the execution holds a transition with
// the given id.
func (e *Execution) ContainsTransition(id fr.Element) bool {
	_, ok := e.transitions[id]
	return ok
}

// Find returns the transition with the given id.
func (e *Execution) Find(id fr.Element) (*Transition, bool) {
	t, ok := e.transitions[id]
	return t, ok
}

// Get returns the transition at the given insertion index.
func (e *Execution) Get(index int) (*Transition, error) {
	if index < 0 || index >= len(e.order) {
		return nil, fmt.Errorf("transition index %d out of bounds in the execution object", index)
	}
	return e.transitions[e.order[index]], nil
}

// Peek returns the last transition in the execution.
func (e *Execution) Peek() (*Transition, error) {
	return e.Get(e.Len() - 1)
}

// Push appends the given transition. Pushing an id already present replaces
// the stored transition but keeps its original position.
func (e *Execution) Push(t *Transition) {
	if _, ok := e.transitions[t.id]; !ok {
		e.order = append(e.order, t.id)
	}
	e.transitions[t.id] = t
}

// Pop removes and returns the last transition.
func (e *Execution) Pop() (*Transition, error) {
	if e.IsEmpty() {
		return nil, fmt.Errorf("cannot pop a transition from an empty execution object")
	}
	id := e.order[len(e.order)-1]
	e.order = e.order[:len(e.order)-1]
	t := e.transitions[id]
	delete(e.transitions, id)
	return t, nil
}

// Len returns the number of transitions.
func (e *Execution) Len() int {
	return len(e.order)
}

// IsEmpty reports whether the execution holds no transitions.
func (e *Execution) IsEmpty() bool {
	return len(e.order) == 0
}

// Transitions returns the transitions in insertion order.
func (e *Execution) Transitions() []*Transition {
	res := make([]*Transition, len(e.order))
	for i, id := range e.order {
		res[i] = e.transitions[id]
	}
	return res
}

// Commitments returns every transition's commitments, flattened in
// insertion order.
func (e *Execution) Commitments() []fr.Element {
	var res []fr.Element
	for _, id := range e.order {
		res = append(res, e.transitions[id].Commitments()...)
	}
	return res
}
