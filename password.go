package zkpauth

import "math/big"

// PasswordToInt interprets the raw UTF-8 bytes of a password as an unsigned
// big-endian integer. There is no hashing or stretching: this matches the
// scheme's stated design and is not a defect to be fixed here, though it does
// mean the resulting secret is only as uniform as the password itself.
func PasswordToInt(password string) *big.Int {
	return new(big.Int).SetBytes([]byte(password))
}
