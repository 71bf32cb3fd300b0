// Package otp generates the short numeric codes mailed out during email
// verification.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const Digits = 6

// RandomCode returns a uniformly distributed numeric code of the given
// length. Leading zeros are kept.
func RandomCode(digits int) string {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil) // 10^digits
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		panic(err)
	}
	return fmt.Sprintf("%0*d", digits, n.Int64())
}
