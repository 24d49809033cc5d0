// Package models defines the verifier's in-memory records.
package models

import "math/big"

// User is a registered prover: the public commitments y1 = g^x and y2 = h^x.
type User struct {
	ID string
	Y1 *big.Int
	Y2 *big.Int
}
