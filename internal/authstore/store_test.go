package authstore

import (
	"errors"
	"sync"
	"testing"

	"zkpauth"
)

var errFailedLogin = errors.New("concurrent login did not produce a session ID")

func register(t *testing.T, s *Store, username, password string) {
	t.Helper()
	x := zkpauth.PasswordToInt(password)
	y1, y2 := zkpauth.Commit(x)
	if err := s.Register(username, y1, y2); err != nil {
		t.Fatal(err)
	}
}

// loginErr runs a full honest challenge/respond/verify cycle and returns the
// resulting session ID, or an error. It calls no *testing.T methods, so it is
// safe to call from a goroutine other than the one running the test.
func loginErr(s *Store, username, password string) (string, error) {
	x := zkpauth.PasswordToInt(password)
	k := zkpauth.RandomBigInt(zkpauth.Q)
	r1, r2 := zkpauth.Commit(k)

	authID, c, err := s.CreateChallenge(username, r1, r2)
	if err != nil {
		return "", err
	}

	resp := zkpauth.Respond(k, c, x)
	return s.Verify(authID, resp)
}

// login runs a full honest challenge/respond/verify cycle and returns the
// resulting session ID.
func login(t *testing.T, s *Store, username, password string) string {
	t.Helper()
	x := zkpauth.PasswordToInt(password)
	k := zkpauth.RandomBigInt(zkpauth.Q)
	r1, r2 := zkpauth.Commit(k)

	authID, c, err := s.CreateChallenge(username, r1, r2)
	if err != nil {
		t.Fatal(err)
	}

	resp := zkpauth.Respond(k, c, x)
	sessionID, err := s.Verify(authID, resp)
	if err != nil {
		t.Fatal(err)
	}
	return sessionID
}

func TestRegister(t *testing.T) {
	s := New()
	register(t, s, "alice", "hunter2")

	if _, exists := s.users["alice"]; !exists {
		t.Fatal("did not create user record")
	}
}

func TestRegisterAlreadyExists(t *testing.T) {
	s := New()
	register(t, s, "alice", "hunter2")

	x := zkpauth.PasswordToInt("hunter2")
	y1, y2 := zkpauth.Commit(x)
	if err := s.Register("alice", y1, y2); err != ErrAlreadyExists {
		t.Fatalf("Register of existing user returned %v, want ErrAlreadyExists", err)
	}
}

func TestChallengeUnknownUser(t *testing.T) {
	s := New()
	_, _, err := s.CreateChallenge("bob", nil, nil)
	if err != ErrNotFound {
		t.Fatalf("CreateChallenge for unknown user returned %v, want ErrNotFound", err)
	}
}

func TestLoginHappyPath(t *testing.T) {
	s := New()
	register(t, s, "alice", "hunter2")

	sessionID := login(t, s, "alice", "hunter2")
	if len(sessionID) != zkpauth.SessionIDLength {
		t.Fatalf("session ID has length %d, want %d", len(sessionID), zkpauth.SessionIDLength)
	}

	u := s.users["alice"]
	if u.state.Kind != Authenticated {
		t.Fatal("user state is not Authenticated after successful login")
	}
	if u.state.SessionID != sessionID {
		t.Fatal("stored session ID does not match returned session ID")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s := New()
	register(t, s, "alice", "hunter2")

	k := zkpauth.RandomBigInt(zkpauth.Q)
	r1, r2 := zkpauth.Commit(k)
	authID, c, err := s.CreateChallenge("alice", r1, r2)
	if err != nil {
		t.Fatal(err)
	}

	wrongX := zkpauth.PasswordToInt("not hunter2")
	resp := zkpauth.Respond(k, c, wrongX)

	_, err = s.Verify(authID, resp)
	if err != ErrUnauthenticated {
		t.Fatalf("Verify with wrong password returned %v, want ErrUnauthenticated", err)
	}

	u := s.users["alice"]
	if u.state.Kind != Unauthenticated {
		t.Fatal("user state is not reset to Unauthenticated after failed login")
	}
	if _, stillPending := s.pending[authID]; stillPending {
		t.Fatal("auth ID was not consumed after failed verification")
	}
}

func TestVerifyUnknownAuthID(t *testing.T) {
	s := New()
	_, err := s.Verify("does-not-exist", nil)
	if err != ErrNotFound {
		t.Fatalf("Verify with unknown auth ID returned %v, want ErrNotFound", err)
	}
}

func TestVerifyConsumesAuthID(t *testing.T) {
	s := New()
	register(t, s, "alice", "hunter2")
	login(t, s, "alice", "hunter2")
	// the auth ID used by login() has already been deleted; registering a
	// second challenge and verifying it twice should fail the second time.
	x := zkpauth.PasswordToInt("hunter2")
	k := zkpauth.RandomBigInt(zkpauth.Q)
	r1, r2 := zkpauth.Commit(k)
	authID, c, err := s.CreateChallenge("alice", r1, r2)
	if err != nil {
		t.Fatal(err)
	}
	resp := zkpauth.Respond(k, c, x)

	if _, err := s.Verify(authID, resp); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Verify(authID, resp); err != ErrNotFound {
		t.Fatalf("second Verify of same auth ID returned %v, want ErrNotFound", err)
	}
}

func TestRepeatedChallengeOverwritesState(t *testing.T) {
	s := New()
	register(t, s, "alice", "hunter2")
	x := zkpauth.PasswordToInt("hunter2")

	k1 := zkpauth.RandomBigInt(zkpauth.Q)
	r1a, r2a := zkpauth.Commit(k1)
	_, _, err := s.CreateChallenge("alice", r1a, r2a)
	if err != nil {
		t.Fatal(err)
	}

	k2 := zkpauth.RandomBigInt(zkpauth.Q)
	r1b, r2b := zkpauth.Commit(k2)
	authID2, c2, err := s.CreateChallenge("alice", r1b, r2b)
	if err != nil {
		t.Fatal(err)
	}

	resp2 := zkpauth.Respond(k2, c2, x)
	sessionID, err := s.Verify(authID2, resp2)
	if err != nil {
		t.Fatalf("verify against the latest challenge should succeed: %v", err)
	}
	if len(sessionID) != zkpauth.SessionIDLength {
		t.Fatal("unexpected session ID length")
	}
}

// two users logging in concurrently must not corrupt each other's state, and
// the store's internal maps must survive concurrent access without a race.
func TestConcurrentLogins(t *testing.T) {
	s := New()
	register(t, s, "alice", "alice-pw")
	register(t, s, "bob", "bob-pw")

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		if sessionID, err := loginErr(s, "alice", "alice-pw"); err != nil || sessionID == "" {
			errs <- errFailedLogin
		}
	}()
	go func() {
		defer wg.Done()
		if sessionID, err := loginErr(s, "bob", "bob-pw"); err != nil || sessionID == "" {
			errs <- errFailedLogin
		}
	}()
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
