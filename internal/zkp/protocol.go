// Package zkp implements the Chaum–Pedersen proof of equal discrete
// logarithms used for password-less login.
//
// The prover holds a secret x and publishes y1 = g^x, y2 = h^x. To log in it
// commits to a nonce k with r1 = g^k, r2 = h^k, receives a challenge c and
// answers with s = k - c*x mod q. The verifier accepts iff
//
//	g^s * y1^c = r1 (mod p)  and  h^s * y2^c = r2 (mod p).
package zkp

import (
	"crypto/subtle"
	"math/big"

	"github.com/dmitrijs2005/zkpauth/internal/group"
	"github.com/dmitrijs2005/zkpauth/internal/randx"
)

// Statement is the public half of a registration: y1 = g^x, y2 = h^x.
type Statement struct {
	Y1 *big.Int
	Y2 *big.Int
}

// Commitment is the prover's per-attempt pair r1 = g^k, r2 = h^k.
type Commitment struct {
	R1 *big.Int
	R2 *big.Int
}

// Commit raises both generators to exponent modulo p. It serves both for
// registration (exponent = secret) and for per-attempt commitments
// (exponent = nonce).
func Commit(exponent *big.Int) (*big.Int, *big.Int) {
	p := group.P()
	p1 := new(big.Int).Exp(group.G(), exponent, p)
	p2 := new(big.Int).Exp(group.H(), exponent, p)
	return p1, p2
}

// Respond computes s = (k - c*x) mod q, always in [0, q).
func Respond(c, k, x *big.Int) *big.Int {
	s := new(big.Int).Mul(c, x)
	s.Sub(k, s)
	// Mod is Euclidean, so a negative difference lands back in [0, q).
	return s.Mod(s, group.Q())
}

// Verify checks both equations. The two comparisons are always evaluated and
// combined without branching so the outcome does not reveal which one failed.
func Verify(st Statement, cm Commitment, c, s *big.Int) bool {
	p := group.P()

	rhs := new(big.Int).Exp(group.G(), s, p)
	rhs.Mul(rhs, new(big.Int).Exp(st.Y1, c, p))
	rhs.Mod(rhs, p)

	lhs := new(big.Int).Exp(group.H(), s, p)
	lhs.Mul(lhs, new(big.Int).Exp(st.Y2, c, p))
	lhs.Mod(lhs, p)

	ok1 := equal(rhs, cm.R1, p)
	ok2 := equal(lhs, cm.R2, p)

	return ok1&ok2 == 1
}

// equal compares a reduced value against a caller-supplied one in constant
// time over the width of p. Values that do not fit can never match.
func equal(reduced, supplied, p *big.Int) int {
	size := (p.BitLen() + 7) / 8
	if supplied == nil || supplied.Sign() < 0 || supplied.BitLen() > size*8 {
		return 0
	}
	a := reduced.FillBytes(make([]byte, size))
	b := supplied.FillBytes(make([]byte, size))
	return subtle.ConstantTimeCompare(a, b)
}

// exponentRange returns the bounds [2, q-2) used for nonces and challenges.
func exponentRange() (*big.Int, *big.Int) {
	return big.NewInt(2), new(big.Int).Sub(group.Q(), big.NewInt(2))
}

// NewNonce draws the prover's per-attempt exponent k.
func NewNonce(src randx.Source) (*big.Int, error) {
	return src.Uniform(exponentRange())
}

// NewChallenge draws the verifier's challenge c.
func NewChallenge(src randx.Source) (*big.Int, error) {
	return src.Uniform(exponentRange())
}
