package crypto

import (
	"crypto/rand"
	"math/big"
)

// Source yields uniform integers in [0, n). *math/rand/v2.Rand satisfies it,
// which lets tests run the generator deterministically.
type Source interface {
	IntN(n int) int
}

// SecureSource draws from crypto/rand. It is safe for concurrent use.
var SecureSource Source = secureSource{}

type secureSource struct{}

// IntN panics if n <= 0, matching math/rand/v2.
func (secureSource) IntN(n int) int {
	if n <= 0 {
		panic("crypto: invalid argument to IntN")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand.Reader does not fail on supported platforms.
		panic("crypto: reading random bytes: " + err.Error())
	}
	return int(v.Int64())
}
