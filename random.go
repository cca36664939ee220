package zkpauth

import (
	"crypto/rand"
	"math/big"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// AuthIDLength is the length, in characters, of a challenge identifier
// returned by CreateAuthenticationChallenge.
const AuthIDLength = 32

// SessionIDLength is the length, in characters, of a session identifier
// returned by VerifyAuthentication on success.
const SessionIDLength = 12

// RandomBigInt returns a value drawn uniformly from [1, upper), using a
// cryptographically secure source. It panics if upper <= 1, since the
// protocol never calls for an empty range.
func RandomBigInt(upper *big.Int) *big.Int {
	bound := new(big.Int).Sub(upper, big.NewInt(1))
	if bound.Sign() <= 0 {
		panic("zkpauth: RandomBigInt requires upper > 1")
	}
	n, err := rand.Int(rand.Reader, bound)
	if err != nil {
		panic("zkpauth: could not get entropy: " + err.Error())
	}
	return n.Add(n, big.NewInt(1))
}

// RandomAlphanumeric returns a string of n characters drawn independently
// and uniformly from [A-Za-z0-9], using a cryptographically secure source.
func RandomAlphanumeric(n int) string {
	out := make([]byte, n)
	max := big.NewInt(int64(len(idAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("zkpauth: could not get entropy: " + err.Error())
		}
		out[i] = idAlphabet[idx.Int64()]
	}
	return string(out)
}
