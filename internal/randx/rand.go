// Package randx draws uniformly distributed big integers from a bounded range.
package randx

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// ErrEmptyRange is returned when max <= min.
var ErrEmptyRange = errors.New("empty range")

// Source produces integers r with min <= r < max.
type Source interface {
	Uniform(min, max *big.Int) (*big.Int, error)
}

// CryptoSource samples from a cryptographic reader. crypto/rand.Int uses
// rejection sampling, so the result carries no modulo bias.
type CryptoSource struct {
	reader io.Reader
}

// NewCryptoSource returns a Source backed by crypto/rand.Reader.
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{reader: rand.Reader}
}

func (s *CryptoSource) Uniform(min, max *big.Int) (*big.Int, error) {
	width := new(big.Int).Sub(max, min)
	if width.Sign() <= 0 {
		return nil, ErrEmptyRange
	}

	r, err := rand.Int(s.reader, width)
	if err != nil {
		return nil, err
	}

	return r.Add(r, min), nil
}

// Fixed always yields the same value. It exists for tests that need a
// predictable challenge; values outside [min, max) are reported as an error
// rather than clamped.
type Fixed struct {
	Value *big.Int
}

var errOutOfRange = errors.New("fixed value out of range")

func (f Fixed) Uniform(min, max *big.Int) (*big.Int, error) {
	if max.Cmp(min) <= 0 {
		return nil, ErrEmptyRange
	}
	if f.Value.Cmp(min) < 0 || f.Value.Cmp(max) >= 0 {
		return nil, errOutOfRange
	}
	return new(big.Int).Set(f.Value), nil
}
