package zkp

import (
	"errors"
	"math/big"
)

// ErrMalformedHex is returned for anything other than a non-empty run of
// base-16 digits.
var ErrMalformedHex = errors.New("malformed hex integer")

// ParseHex decodes a non-negative integer written in base 16 without sign or
// prefix. Upper and lower case digits are accepted.
func ParseHex(s string) (*big.Int, error) {
	if s == "" {
		return nil, ErrMalformedHex
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return nil, ErrMalformedHex
		}
	}

	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, ErrMalformedHex
	}
	return v, nil
}

// FormatHex encodes v in lowercase base 16.
func FormatHex(v *big.Int) string {
	return v.Text(16)
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
