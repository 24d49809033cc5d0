package group

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderIsHalfOfPrimeMinusOne(t *testing.T) {
	want := new(big.Int).Sub(P(), big.NewInt(1))
	want.Rsh(want, 1)
	assert.Equal(t, 0, want.Cmp(Q()))
	assert.Equal(t, 2048, P().BitLen())
}

func TestConstantsAreProbablyPrime(t *testing.T) {
	assert.True(t, P().ProbablyPrime(20))
	assert.True(t, Q().ProbablyPrime(20))
}

func TestGeneratorsHaveOrderQ(t *testing.T) {
	for _, gen := range []*big.Int{G(), H()} {
		one := new(big.Int).Exp(gen, Q(), P())
		assert.Equal(t, int64(1), one.Int64(), "generator %s", gen)
		assert.True(t, IsElement(gen))
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	p := P()
	p.SetInt64(7)
	g := G()
	g.SetInt64(100)

	require.Equal(t, 2048, P().BitLen())
	require.Equal(t, int64(generatorG), G().Int64())
}

func TestIsElement(t *testing.T) {
	pMinusOne := new(big.Int).Sub(P(), big.NewInt(1))

	tests := []struct {
		name string
		v    *big.Int
		want bool
	}{
		{name: "nil", v: nil, want: false},
		{name: "zero", v: big.NewInt(0), want: false},
		{name: "negative", v: big.NewInt(-4), want: false},
		{name: "identity", v: big.NewInt(1), want: true},
		{name: "g cubed", v: big.NewInt(64), want: true},
		{name: "h cubed", v: big.NewInt(729), want: true},
		{name: "two", v: big.NewInt(2), want: true},
		{name: "non residue", v: big.NewInt(11), want: false},
		// p-1 has order 2.
		{name: "minus one", v: pMinusOne, want: false},
		{name: "modulus", v: P(), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsElement(tt.v))
		})
	}
}
