package field

import (
	"fmt"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"

	"github.com/zksynth/zkfield/environment"
)

func TestAdd(t *testing.T) {
	for _, modeA := range environment.Modes() {
		for _, modeB := range environment.Modes() {
			t.Run(fmt.Sprintf("%s_add_%s", modeA, modeB), func(t *testing.T) {
				for i := 0; i < iterations; i++ {
					x, y := randElement(t), randElement(t)

					ckt := environment.New()
					a := New(ckt, modeA, x)
					b := New(ckt, modeB, y)

					var expected fr.Element
					expected.Add(&x, &y)

					ckt.Scope("add", func() {
						candidate := a.Add(b)
						requireValue(t, candidate, expected)
						require.Equal(t, modeA.Combine(modeB), candidate.EjectMode())
						// addition is linear and free
						require.Equal(t, environment.CountIs(0, 0, 0, 0), ckt.CountInScope())
					})
				}
			})
		}
	}
}

func TestSub(t *testing.T) {
	for _, modeA := range environment.Modes() {
		for _, modeB := range environment.Modes() {
			for i := 0; i < iterations; i++ {
				x, y := randElement(t), randElement(t)

				ckt := environment.New()
				a := New(ckt, modeA, x)
				b := New(ckt, modeB, y)

				var expected fr.Element
				expected.Sub(&x, &y)

				ckt.Scope("sub", func() {
					candidate := a.Sub(b)
					requireValue(t, candidate, expected)
					require.Equal(t, modeA.Combine(modeB), candidate.EjectMode())
					require.Equal(t, environment.CountIs(0, 0, 0, 0), ckt.CountInScope())
				})
			}
		}
	}
}

func TestNegAndDouble(t *testing.T) {
	for _, mode := range environment.Modes() {
		for i := 0; i < iterations; i++ {
			x := randElement(t)

			ckt := environment.New()
			a := New(ckt, mode, x)

			var negated, doubled fr.Element
			negated.Neg(&x)
			doubled.Double(&x)

			ckt.Scope("neg/double", func() {
				requireValue(t, a.Neg(), negated)
				requireValue(t, a.Double(), doubled)
				require.Equal(t, mode, a.Neg().EjectMode())
				require.Equal(t, mode, a.Double().EjectMode())
				require.Equal(t, environment.CountIs(0, 0, 0, 0), ckt.CountInScope())
			})
		}
	}
}

func checkMul(t *testing.T, x, y fr.Element, modeA, modeB environment.Mode) {
	t.Helper()

	ckt := environment.New()
	a := New(ckt, modeA, x)
	b := New(ckt, modeB, y)

	var expected fr.Element
	expected.Mul(&x, &y)

	ckt.Scope("mul", func() {
		candidate := a.Mul(b)
		requireValue(t, candidate, expected)
		require.Equal(t, BinaryCost(OpMul, modeA, modeB), ckt.CountInScope())
		require.Equal(t, BinaryOutputMode(OpMul, a.Type(), b.Type()), candidate.EjectMode())
		require.True(t, ckt.IsSatisfiedInScope())
	})
}

func TestMul(t *testing.T) {
	for _, modeA := range environment.Modes() {
		for _, modeB := range environment.Modes() {
			t.Run(fmt.Sprintf("%s_mul_%s", modeA, modeB), func(t *testing.T) {
				for i := 0; i < iterations; i++ {
					checkMul(t, randElement(t), randElement(t), modeA, modeB)
					// multiplication by one preserves the other operand's mode
					checkMul(t, randElement(t), frOne(), modeA, modeB)
					// multiplication by zero collapses the value
					checkMul(t, randElement(t), fr.Element{}, modeA, modeB)
				}
			})
		}
	}
}

func TestSquare(t *testing.T) {
	for _, mode := range environment.Modes() {
		for i := 0; i < iterations; i++ {
			x := randElement(t)

			ckt := environment.New()
			a := New(ckt, mode, x)

			var expected fr.Element
			expected.Square(&x)

			ckt.Scope("square", func() {
				candidate := a.Square()
				requireValue(t, candidate, expected)
				require.Equal(t, UnaryCost(OpSquare, mode), ckt.CountInScope())
				require.Equal(t, UnaryOutputMode(OpSquare, a.Type()), candidate.EjectMode())
				require.True(t, ckt.IsSatisfiedInScope())
			})
		}
	}
}

func TestInverse(t *testing.T) {
	for _, mode := range environment.Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			for i := 0; i < iterations; i++ {
				x := randElement(t)
				if x.IsZero() {
					continue
				}

				ckt := environment.New()
				a := New(ckt, mode, x)

				var expected fr.Element
				expected.Inverse(&x)

				ckt.Scope("inverse", func() {
					candidate := a.Inverse()
					requireValue(t, candidate, expected)
					require.Equal(t, UnaryCost(OpInverse, mode), ckt.CountInScope())
					require.Equal(t, UnaryOutputMode(OpInverse, a.Type()), candidate.EjectMode())
					require.True(t, ckt.IsSatisfiedInScope())
				})
			}
		})
	}
}

func TestInverseOfZero(t *testing.T) {
	// a known zero halts
	requireHalt(t, func() {
		ckt := environment.New()
		_ = Zero(ckt).Inverse()
	})

	// a variable zero synthesizes but cannot be satisfied
	for _, mode := range []environment.Mode{environment.Public, environment.Private} {
		ckt := environment.New()
		a := New(ckt, mode, fr.Element{})
		_ = a.Inverse()
		require.False(t, ckt.IsSatisfied())
	}
}

func TestIsZero(t *testing.T) {
	for _, mode := range environment.Modes() {
		ckt := environment.New()

		zero := New(ckt, mode, fr.Element{})
		nonZero := New(ckt, mode, fr.NewElement(5))

		ckt.Scope("is_zero", func() {
			indicator := zero.IsZero()
			require.True(t, indicator.EjectValue())
			require.Equal(t, UnaryOutputMode(OpIsZero, zero.Type()), indicator.EjectMode())
			require.Equal(t, UnaryCost(OpIsZero, mode), ckt.CountInScope())
			require.True(t, ckt.IsSatisfiedInScope())
		})

		require.False(t, nonZero.IsZero().EjectValue())
		require.True(t, ckt.IsSatisfied())
	}
}

func TestIsEqual(t *testing.T) {
	ckt := environment.New()
	x := randElement(t)

	a := New(ckt, environment.Private, x)
	b := New(ckt, environment.Private, x)
	c := New(ckt, environment.Private, randElement(t))

	require.True(t, a.IsEqual(b).EjectValue())
	require.False(t, a.IsEqual(c).EjectValue())
	require.True(t, ckt.IsSatisfied())
}

func TestAssertNonZero(t *testing.T) {
	// constant zero halts immediately
	requireHalt(t, func() {
		ckt := environment.New()
		Zero(ckt).AssertNonZero()
	})

	// constant non-zero is a no-op
	ckt := environment.New()
	One(ckt).AssertNonZero()
	require.EqualValues(t, 0, ckt.NumConstraints())

	// variable zero accumulates an unsatisfiable assertion
	ckt = environment.New()
	New(ckt, environment.Private, fr.Element{}).AssertNonZero()
	require.False(t, ckt.IsSatisfied())

	ckt = environment.New()
	New(ckt, environment.Private, fr.NewElement(3)).AssertNonZero()
	require.True(t, ckt.IsSatisfied())
}
