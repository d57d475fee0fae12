package environment

import "fmt"

// Count describes the constraint-system resources an operation consumes for
// one mode-combination case: variables allocated per visibility, and
// constraints added. Summing the Counts of every elementary operation in a
// run must equal the backend's actual tallies for that run.
type Count struct {
	Constants   uint64
	Public      uint64
	Private     uint64
	Constraints uint64
}

// CountIs returns the Count with the given tallies.
func CountIs(constants, public, private, constraints uint64) Count {
	return Count{
		Constants:   constants,
		Public:      public,
		Private:     private,
		Constraints: constraints,
	}
}

// Add returns the component-wise sum of two Counts.
func (c Count) Add(other Count) Count {
	return Count{
		Constants:   c.Constants + other.Constants,
		Public:      c.Public + other.Public,
		Private:     c.Private + other.Private,
		Constraints: c.Constraints + other.Constraints,
	}
}

// Matches reports whether the measured tallies equal the prediction exactly.
func (c Count) Matches(other Count) bool {
	return c == other
}

func (c Count) String() string {
	return fmt.Sprintf("Count(%d constants, %d public, %d private, %d constraints)",
		c.Constants, c.Public, c.Private, c.Constraints)
}
