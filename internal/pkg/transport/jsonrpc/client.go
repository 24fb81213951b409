// Package jsonrpc provides a client for the JSON-RPC dialect spoken by
// rippled-style servers over HTTP. Unlike JSON-RPC 2.0, requests carry a
// single parameter object wrapped in a one-element array, and errors are
// reported inside the result payload via "status" and "error" fields rather
// than a top-level error object.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrProviderReturnedError indicates that the remote server returned an
// error status inside the result payload.
var ErrProviderReturnedError = errors.New("provider error")

// response represents the envelope returned by a rippled JSON-RPC server.
type response struct {
	Result json.RawMessage `json:"result"` // raw result payload, including status fields
}

// resultStatus is the subset of every result payload used for error
// detection.
type resultStatus struct {
	Status       string `json:"status"`        // "success" or "error"
	Error        string `json:"error"`         // short error token, e.g. "lgrNotFound"
	ErrorCode    int    `json:"error_code"`    // numeric error code
	ErrorMessage string `json:"error_message"` // human-readable error message
}

// Err returns an error when the result payload carries an error status.
// It wraps ErrProviderReturnedError with the server-provided code and message.
func (r resultStatus) Err() error {
	if r.Status != "error" && r.Error == "" {
		return nil
	}

	return fmt.Errorf("%w: %s [%d] - %s", ErrProviderReturnedError, r.Error, r.ErrorCode, r.ErrorMessage)
}

// Client defines the interface for the rippled JSON-RPC client. It abstracts
// the underlying implementation to facilitate mocking in tests.
type Client interface {
	// Fetch sends a request with the given method name and parameter object.
	// It returns the raw result payload or an error if the request fails or
	// the server reports an error status.
	Fetch(ctx context.Context, method string, params any) (json.RawMessage, error)
}

// client is the default implementation of the Client interface.
type client struct {
	providerEndpoint string       // URL of the remote JSON-RPC server
	httpClient       *http.Client // HTTP client used to perform requests
}

var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method
// and parameter object. The parameter object is wrapped in a one-element
// array per the rippled convention; a nil params sends an empty array.
func (c *client) Fetch(ctx context.Context, method string, params any) (json.RawMessage, error) {
	paramList := []any{}
	if params != nil {
		paramList = append(paramList, params)
	}

	body, err := json.Marshal(map[string]any{
		"method": method,
		"params": paramList,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	var status resultStatus
	if err := json.Unmarshal(data.Result, &status); err != nil {
		return nil, err
	}

	return data.Result, status.Err()
}

// NewClient constructs a Client that sends requests to the specified
// provider endpoint using the given HTTP client.
func NewClient(httpClient *http.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
