// Package group holds the fixed discrete-log group shared by prover and
// verifier: the RFC 3526 2048-bit MODP prime p, the order q = (p-1)/2 of its
// quadratic-residue subgroup, and two generators g and h of that subgroup.
//
// Both sides must use byte-identical constants or every proof fails.
package group

import (
	"math/big"
	"sync"
)

// https://datatracker.ietf.org/doc/html/rfc3526#section-3
const (
	primeHex = "ffffffffffffffffc90fdaa22168c234c4c6628b80dc1cd129024e088a67cc74020bbea63b139b22514a08798e3404ddef9519b3cd3a431b302b0a6df25f14374fe1356d6d51c245e485b576625e7ec6f44c42e9a637ed6b0bff5cb6f406b7edee386bfb5a899fa5ae9f24117c4b1fe649286651ece45b3dc2007cb8a163bf0598da48361c55d39a69163fa8fd24cf5f83655d23dca3ad961c62f356208552bb9ed529077096966d670c354e4abc9804f1746c08ca18217c32905e462e36ce3be39e772c180e86039b2783a2ec07a28fb5c55df06f4c52c9de2bcbf6955817183995497cea956ae515d2261898fa051015728e5a8aacaa68ffffffffffffffff"
	orderHex = "7fffffffffffffffe487ed5110b4611a62633145c06e0e68948127044533e63a0105df531d89cd9128a5043cc71a026ef7ca8cd9e69d218d98158536f92f8a1ba7f09ab6b6a8e122f242dabb312f3f637a262174d31bf6b585ffae5b7a035bf6f71c35fdad44cfd2d74f9208be258ff324943328f6722d9ee1003e5c50b1df82cc6d241b0e2ae9cd348b1fd47e9267afc1b2ae91ee51d6cb0e3179ab1042a95dcf6a9483b84b4b36b3861aa7255e4c0278ba3604650c10be19482f23171b671df1cf3b960c074301cd93c1d17603d147dae2aef837a62964ef15e5fb4aac0b8c1ccaa4be754ab5728ae9130c4c7d02880ab9472d455655347fffffffffffffff"

	generatorG = 4
	generatorH = 9
)

type params struct {
	p, q, g, h *big.Int
}

var load = sync.OnceValue(func() params {
	return params{
		p: mustHex(primeHex),
		q: mustHex(orderHex),
		g: big.NewInt(generatorG),
		h: big.NewInt(generatorH),
	}
})

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("group: bad constant " + s[:16])
	}
	return v
}

// P returns the prime modulus.
func P() *big.Int { return new(big.Int).Set(load().p) }

// Q returns the prime order of the subgroup generated by G and H.
func Q() *big.Int { return new(big.Int).Set(load().q) }

// G returns the first generator.
func G() *big.Int { return new(big.Int).Set(load().g) }

// H returns the second generator.
func H() *big.Int { return new(big.Int).Set(load().h) }

// IsElement reports whether v is a member of the order-q subgroup,
// i.e. 1 <= v < p and v^q = 1 mod p.
func IsElement(v *big.Int) bool {
	if v == nil {
		return false
	}
	pp := load()
	if v.Sign() <= 0 || v.Cmp(pp.p) >= 0 {
		return false
	}
	return new(big.Int).Exp(v, pp.q, pp.p).Cmp(big.NewInt(1)) == 0
}
