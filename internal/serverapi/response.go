package serverapi

import (
	"encoding/json"
	"log"
	"net/http"

	"zkpauth/internal/rpc"
)

// successEnvelope wraps every successful response body.
type successEnvelope struct {
	Data interface{} `json:"data"`
}

// errorEnvelope wraps every error response body.
type errorEnvelope struct {
	Error rpc.Error `json:"error"`
}

func writeSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(successEnvelope{Data: data}); err != nil {
		log.Printf("failed to encode success response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorEnvelope{Error: rpc.Error{Code: code, Message: message}}); err != nil {
		log.Printf("failed to encode error response: %v", err)
	}
}

func alreadyExists(w http.ResponseWriter, message string) {
	writeError(w, http.StatusConflict, rpc.CodeAlreadyExists, message)
}

func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, rpc.CodeNotFound, message)
}

func unauthenticated(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, rpc.CodeUnauthenticated, message)
}

// internalError logs the real error server-side and reports a generic
// message to the caller; an Internal error here indicates an invariant
// violation in the authentication state machine and must not be silent.
func internalError(w http.ResponseWriter, requestID string, err error) {
	log.Printf("request %s: internal error: %v", requestID, err)
	writeError(w, http.StatusInternalServerError, rpc.CodeInternal, "an internal error occurred")
}

func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, "BAD_REQUEST", message)
}
