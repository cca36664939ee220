// Package serverapi exposes the three authentication RPC methods over
// HTTP, encoding requests and responses as JSON per internal/rpc's message
// shapes.
package serverapi

import (
	"encoding/json"
	"net/http"

	"zkpauth"
	"zkpauth/internal/authstore"
	"zkpauth/internal/rpc"
)

// Server wires an authstore.Store to an HTTP handler exposing the three
// authentication methods as POST /rpc/<Method> endpoints.
type Server struct {
	store *authstore.Store
}

// NewServer returns a Server backed by a fresh, empty authentication store.
func NewServer() *Server {
	return &Server{store: authstore.New()}
}

// Handler returns the http.Handler for the full RPC surface, wrapped with
// the server's logging, recovery, and request-ID middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/rpc/Register", s.handleRegister)
	mux.HandleFunc("/rpc/CreateAuthenticationChallenge", s.handleCreateChallenge)
	mux.HandleFunc("/rpc/VerifyAuthentication", s.handleVerify)

	return chain(mux, withRequestID, loggingMiddleware, recoveryMiddleware)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		badRequest(w, "malformed request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req rpc.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	y1 := zkpauth.DeserializeBigInt(req.Y1)
	y2 := zkpauth.DeserializeBigInt(req.Y2)

	err := s.store.Register(req.User, y1, y2)
	switch err {
	case nil:
		writeSuccess(w, http.StatusOK, rpc.RegisterResponse{})
	case authstore.ErrAlreadyExists:
		alreadyExists(w, "user '"+req.User+"' already exists")
	default:
		internalError(w, requestIDFrom(r), err)
	}
}

func (s *Server) handleCreateChallenge(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req rpc.AuthenticationChallengeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	r1 := zkpauth.DeserializeBigInt(req.R1)
	r2 := zkpauth.DeserializeBigInt(req.R2)

	authID, c, err := s.store.CreateChallenge(req.User, r1, r2)
	switch err {
	case nil:
		writeSuccess(w, http.StatusOK, rpc.AuthenticationChallengeResponse{
			AuthID: authID,
			C:      zkpauth.SerializeBigInt(c),
		})
	case authstore.ErrNotFound:
		notFound(w, "user '"+req.User+"' does not exist")
	default:
		internalError(w, requestIDFrom(r), err)
	}
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req rpc.AuthenticationAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp := zkpauth.DeserializeBigInt(req.S)

	sessionID, err := s.store.Verify(req.AuthID, resp)
	switch err {
	case nil:
		writeSuccess(w, http.StatusOK, rpc.AuthenticationAnswerResponse{SessionID: sessionID})
	case authstore.ErrNotFound:
		notFound(w, "no authentication challenge for '"+req.AuthID+"'")
	case authstore.ErrUnauthenticated:
		unauthenticated(w, "invalid credentials")
	case authstore.ErrInternal:
		internalError(w, requestIDFrom(r), err)
	default:
		internalError(w, requestIDFrom(r), err)
	}
}
