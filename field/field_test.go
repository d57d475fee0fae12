package field

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"

	"github.com/zksynth/zkfield/environment"
)

const iterations = 100

func randElement(t *testing.T) fr.Element {
	t.Helper()
	var e fr.Element
	_, err := e.SetRandom()
	require.NoError(t, err)
	return e
}

// requireHalt runs fn and requires that it unwinds with a HaltError.
func requireHalt(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected synthesis to halt")
		_, ok := r.(*environment.HaltError)
		require.True(t, ok, "expected a halt, got %v", r)
	}()
	fn()
}

func requireValue(t *testing.T, f *Field, want fr.Element) {
	t.Helper()
	got := f.EjectValue()
	require.True(t, want.Equal(&got), "got %s, want %s", got.String(), want.String())
}

func TestNew(t *testing.T) {
	for _, mode := range environment.Modes() {
		ckt := environment.New()
		f := New(ckt, mode, fr.NewElement(6))

		require.Equal(t, mode, f.EjectMode())
		requireValue(t, f, fr.NewElement(6))

		want := environment.CountIs(0, 0, 1, 0)
		switch mode {
		case environment.Constant:
			want = environment.CountIs(1, 0, 0, 0)
		case environment.Public:
			want = environment.CountIs(0, 1, 0, 0)
		}
		require.Equal(t, want, ckt.CountInScope())
	}
}

func TestZeroAndOneAreFree(t *testing.T) {
	ckt := environment.New()

	zero := Zero(ckt)
	one := One(ckt)

	require.True(t, zero.IsConstant())
	require.True(t, one.IsConstant())
	requireValue(t, zero, fr.Element{})
	requireValue(t, one, frOne())
	require.Equal(t, environment.CountIs(0, 0, 0, 0), ckt.CountInScope())
}

func TestCloneSharesNoMutableState(t *testing.T) {
	ckt := environment.New()
	a := New(ckt, environment.Public, fr.NewElement(6))

	b := a.Clone()
	b.AddAssign(One(ckt))

	requireValue(t, a, fr.NewElement(6))
	requireValue(t, b, fr.NewElement(7))
}

func TestWitnessDefersEvaluation(t *testing.T) {
	ckt := environment.New()

	calls := 0
	w := Witness(ckt, environment.Private, func() fr.Element {
		calls++
		return fr.NewElement(9)
	})
	require.Equal(t, 0, calls)

	requireValue(t, w, fr.NewElement(9))
	requireValue(t, w, fr.NewElement(9))
	require.Equal(t, 1, calls)
}
