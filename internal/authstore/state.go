// Package authstore holds the per-user authentication state machine and the
// two tables the RPC server mutates: the user datastore and the pending
// authentication-challenge index.
package authstore

import "math/big"

// Kind discriminates the cases of State. State is a tagged union rather than
// an interface hierarchy, since every transition needs to inspect the tag.
type Kind int

const (
	// Unauthenticated is the state of a freshly registered user, and the
	// state a user returns to after a failed verification.
	Unauthenticated Kind = iota
	// Authenticating means a challenge has been issued and not yet answered.
	Authenticating
	// Authenticated means the most recent challenge was answered correctly.
	Authenticated
)

// State is the per-user authentication state. Only the fields relevant to
// Kind are meaningful; callers must not read R1/R2/C unless Kind is
// Authenticating, or SessionID unless Kind is Authenticated.
type State struct {
	Kind Kind

	// valid when Kind == Authenticating
	R1, R2, C *big.Int

	// valid when Kind == Authenticated
	SessionID string
}
