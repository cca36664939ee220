package authstore

import (
	"math/big"
	"sync"

	"zkpauth"
)

// userRecord is the server's per-user record: fixed credentials plus mutable
// authentication state.
type userRecord struct {
	y1, y2 *big.Int
	state  State
}

// Store holds every registered user's record and the index from outstanding
// challenge IDs to the username under challenge. Both tables are guarded by
// a single RWMutex; a verify call needs both at once, so splitting the lock
// would only add an ordering rule to get wrong for no measured benefit.
type Store struct {
	mu      sync.RWMutex
	users   map[string]*userRecord
	pending map[string]string // auth_id -> username
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		users:   make(map[string]*userRecord),
		pending: make(map[string]string),
	}
}

// Register creates a new user with the given long-term commitment. It
// returns ErrAlreadyExists if the username is taken.
func (s *Store) Register(username string, y1, y2 *big.Int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return ErrAlreadyExists
	}
	s.users[username] = &userRecord{
		y1:    y1,
		y2:    y2,
		state: State{Kind: Unauthenticated},
	}
	return nil
}

// CreateChallenge records a fresh per-login commitment (r1, r2) for an
// existing user, draws a challenge c, mints a new auth ID, and indexes it.
// It returns ErrNotFound if the user does not exist.
//
// Any previously pending challenge for this user is superseded: its auth ID,
// if any, is left in the pending index but will no longer match the user's
// current (r1, r2, c) once Verify recomputes against the overwritten state.
func (s *Store) CreateChallenge(username string, r1, r2 *big.Int) (authID string, c *big.Int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[username]
	if !exists {
		return "", nil, ErrNotFound
	}

	c = zkpauth.RandomBigInt(zkpauth.Q)
	u.state = State{Kind: Authenticating, R1: r1, R2: r2, C: c}

	authID = zkpauth.RandomAlphanumeric(zkpauth.AuthIDLength)
	s.pending[authID] = username

	return authID, c, nil
}

// Verify answers a pending challenge. On success it mints a session ID,
// marks the user Authenticated, and returns the session ID. On a wrong
// response it resets the user to Unauthenticated and returns
// ErrUnauthenticated. Either way the auth ID is consumed: a second Verify
// call with the same auth ID returns ErrNotFound.
//
// ErrInternal indicates the auth ID pointed at a user not in the
// Authenticating state. This happens when a superseded auth ID (see
// CreateChallenge) is presented after the user's newer challenge has already
// been answered; callers must log this case.
func (s *Store) Verify(authID string, response *big.Int) (sessionID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username, exists := s.pending[authID]
	if !exists {
		return "", ErrNotFound
	}
	delete(s.pending, authID)

	u, exists := s.users[username]
	if !exists || u.state.Kind != Authenticating {
		return "", ErrInternal
	}

	ok := zkpauth.Verify(u.y1, u.y2, u.state.R1, u.state.R2, u.state.C, response)
	if !ok {
		u.state = State{Kind: Unauthenticated}
		return "", ErrUnauthenticated
	}

	sessionID = zkpauth.RandomAlphanumeric(zkpauth.SessionIDLength)
	u.state = State{Kind: Authenticated, SessionID: sessionID}
	return sessionID, nil
}
