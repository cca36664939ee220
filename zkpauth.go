// Package zkpauth implements a password-authenticated login protocol built on
// a Chaum-Pedersen zero-knowledge proof of discrete-log equivalence. A client
// proves knowledge of a secret derived from its password without ever
// transmitting the password, or any value from which it can be recovered, to
// the server.
//
// The protocol runs over a prime-order subgroup of a multiplicative group
// modulo a 2048-bit safe prime (RFC 3526 MODP Group 14). Unlike an elliptic
// curve group, elements here are arbitrary-precision integers handled with
// math/big; there is no hash-to-group step and no key derivation, since the
// scheme commits directly to the password's integer representation.
//
// zkpauth makes the following choices:
//
//	Group:      multiplicative group mod P, prime-order subgroup of order Q
//	Generators: G = 2, H = G^f mod P for a fixed public exponent f
//	Proof:      Chaum-Pedersen equality-of-discrete-logs sigma protocol
//
// None of the arithmetic here is constant-time; the scheme does not claim
// side-channel resistance.
package zkpauth

// TODO:
// - The stored commitment pair (y1, y2) permits offline password search given
//   the public parameters; this is inherent to the scheme, not a bug.
// - Passwords are not hashed or stretched before being treated as an integer;
//   this is deliberate (see PasswordToInt) and not a cryptographic weakness of the
//   sigma protocol itself, but it does mean weak passwords remain weak.
