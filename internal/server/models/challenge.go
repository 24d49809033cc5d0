package models

import "math/big"

// Challenge is one pending authentication attempt. R1 and R2 are the
// prover's commitments, C the verifier's random challenge.
type Challenge struct {
	ID     string
	UserID string
	C      *big.Int
	R1     *big.Int
	R2     *big.Int
}
