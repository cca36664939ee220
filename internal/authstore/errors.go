package authstore

import "errors"

// Sentinel errors returned by Store methods. Callers at the RPC boundary map
// these onto the wire error codes fixed by the protocol.
var (
	ErrAlreadyExists   = errors.New("authstore: user already exists")
	ErrNotFound        = errors.New("authstore: user not found")
	ErrUnauthenticated = errors.New("authstore: verification failed")
	ErrInternal        = errors.New("authstore: invariant violation")
)
