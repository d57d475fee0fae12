package field

import (
	"math"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/zksynth/zkfield/environment"
)

// Algebraic laws of the compiled operators, checked against native fr
// arithmetic across random operands. Nonzero divisors are drawn from
// [1, maxUint64].
func TestFieldProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("(a / b) * b == a", prop.ForAll(
		func(a, b uint64) bool {
			ckt := environment.New()
			x := New(ckt, environment.Private, fr.NewElement(a))
			y := New(ckt, environment.Private, fr.NewElement(b))

			roundTrip := x.Div(y).Mul(y).EjectValue()
			want := fr.NewElement(a)
			return roundTrip.Equal(&want) && ckt.IsSatisfied()
		},
		gen.UInt64(),
		gen.UInt64Range(1, math.MaxUint64),
	))

	properties.Property("a / 1 == a for every mode", prop.ForAll(
		func(a uint64) bool {
			for _, mode := range environment.Modes() {
				ckt := environment.New()
				x := New(ckt, mode, fr.NewElement(a))
				got := x.Div(One(ckt)).EjectValue()
				want := fr.NewElement(a)
				if !got.Equal(&want) {
					return false
				}
			}
			return true
		},
		gen.UInt64(),
	))

	properties.Property("(a + b) - b == a", prop.ForAll(
		func(a, b uint64) bool {
			ckt := environment.New()
			x := New(ckt, environment.Private, fr.NewElement(a))
			y := New(ckt, environment.Public, fr.NewElement(b))

			got := x.Add(y).Sub(y).EjectValue()
			want := fr.NewElement(a)
			return got.Equal(&want)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.Property("a * a == a.Square()", prop.ForAll(
		func(a uint64) bool {
			ckt := environment.New()
			x := New(ckt, environment.Private, fr.NewElement(a))

			viaMul := x.Mul(x).EjectValue()
			viaSquare := x.Square().EjectValue()
			return viaMul.Equal(&viaSquare) && ckt.IsSatisfied()
		},
		gen.UInt64(),
	))

	properties.Property("inverse(inverse(a)) == a", prop.ForAll(
		func(a uint64) bool {
			ckt := environment.New()
			x := New(ckt, environment.Private, fr.NewElement(a))

			got := x.Inverse().Inverse().EjectValue()
			want := fr.NewElement(a)
			return got.Equal(&want) && ckt.IsSatisfied()
		},
		gen.UInt64Range(1, math.MaxUint64),
	))

	properties.Property("division agrees with native arithmetic", prop.ForAll(
		func(a, b uint64) bool {
			ckt := environment.New()
			x := New(ckt, environment.Public, fr.NewElement(a))
			y := New(ckt, environment.Private, fr.NewElement(b))

			got := x.Div(y).EjectValue()
			na, nb := fr.NewElement(a), fr.NewElement(b)
			var want fr.Element
			want.Div(&na, &nb)
			return got.Equal(&want)
		},
		gen.UInt64(),
		gen.UInt64Range(1, math.MaxUint64),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
