// Package clientapi is the client side of the RPC boundary: it posts JSON
// requests to a zkpauth server and unwraps its success/error envelope into
// typed responses or an *rpc.Error.
package clientapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"zkpauth/internal/rpc"
)

// Client talks to a single zkpauth server over HTTP.
type Client struct {
	serverURL string
	http      *http.Client
}

// New returns a Client that sends requests to serverURL (e.g.
// "http://127.0.0.1:3000").
func New(serverURL string) *Client {
	return &Client{
		serverURL: serverURL,
		http:      &http.Client{Timeout: 10 * time.Second},
	}
}

type apiResponse struct {
	Data  json.RawMessage `json:"data"`
	Error *rpc.Error      `json:"error,omitempty"`
}

// doRequest posts body to the named RPC method and decodes the envelope's
// data field into out. A non-nil *rpc.Error is returned unwrapped so callers
// can switch on its Code.
func (c *Client) doRequest(method string, body, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("clientapi: failed to encode request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.serverURL+"/rpc/"+method, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("clientapi: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("clientapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("clientapi: failed to decode response: %w", err)
	}

	if envelope.Error != nil {
		return envelope.Error
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("clientapi: failed to decode result: %w", err)
	}
	return nil
}

// Register registers a new user's long-term commitment.
func (c *Client) Register(req rpc.RegisterRequest) error {
	var resp rpc.RegisterResponse
	return c.doRequest("Register", req, &resp)
}

// CreateAuthenticationChallenge presents a fresh per-login commitment and
// receives a challenge to answer.
func (c *Client) CreateAuthenticationChallenge(req rpc.AuthenticationChallengeRequest) (rpc.AuthenticationChallengeResponse, error) {
	var resp rpc.AuthenticationChallengeResponse
	err := c.doRequest("CreateAuthenticationChallenge", req, &resp)
	return resp, err
}

// VerifyAuthentication answers a previously issued challenge.
func (c *Client) VerifyAuthentication(req rpc.AuthenticationAnswerRequest) (rpc.AuthenticationAnswerResponse, error) {
	var resp rpc.AuthenticationAnswerResponse
	err := c.doRequest("VerifyAuthentication", req, &resp)
	return resp, err
}
