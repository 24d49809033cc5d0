// Package cryptox derives the prover's secret exponent from a passphrase.
package cryptox

import (
	"math/big"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/group"
)

const saltPrefix = "zkpauth/v1/"

// Argon2id cost parameters.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 64
)

// DeriveSecret stretches passphrase with argon2id, salted by userID, and
// reduces the result into [1, q-1]. The same inputs always give the same x.
func DeriveSecret(passphrase []byte, userID string) *big.Int {
	key := argon2.IDKey(passphrase, []byte(saltPrefix+userID), argonTime, argonMemory, argonThreads, argonKeyLen)
	defer common.WipeByteArray(key)

	qm1 := group.Q()
	qm1.Sub(qm1, big.NewInt(1))

	x := new(big.Int).SetBytes(key)
	x.Mod(x, qm1)
	return x.Add(x, big.NewInt(1))
}
