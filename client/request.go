package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Request accumulates the parts of an outgoing API call. Builder methods
// record the first error they encounter; Do reports it instead of sending.
type Request struct {
	client *Client
	method string
	path   string
	query  url.Values
	header http.Header
	body   []byte
	err    error
}

// Query adds a query parameter.
func (r *Request) Query(key, value string) *Request {
	r.query.Add(key, value)
	return r
}

// Header sets a request header.
func (r *Request) Header(key, value string) *Request {
	r.header.Set(key, value)
	return r
}

// Body sets a raw request body with the given content type.
func (r *Request) Body(body []byte, contentType string) *Request {
	r.body = body
	r.header.Set("Content-Type", contentType)

	return r
}

// JSONBody marshals v as the request body and sets the JSON content type.
func (r *Request) JSONBody(v any) *Request {
	body, err := json.Marshal(v)
	if err != nil {
		r.err = fmt.Errorf("client: marshal body: %w", err)
		return r
	}

	return r.Body(body, "application/json")
}

// Do signs and sends the request.
//
// The caller owns the response and must close its body.
func (r *Request) Do(ctx context.Context) (*http.Response, error) {
	if r.err != nil {
		return nil, r.err
	}

	u, err := r.buildURL()
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if len(r.body) > 0 {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("client: build request: %w", err)
	}

	for key, values := range r.header {
		req.Header[key] = values
	}

	return r.client.httpClient.Do(req)
}

// JSON sends the request and decodes a successful JSON response into out.
// A non-2xx status yields an *APIError carrying the response body.
func (r *Request) JSON(ctx context.Context, out any) error {
	resp, err := r.Do(ctx)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

		return &APIError{StatusCode: resp.StatusCode, Body: body}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("client: decode response: %w", err)
	}

	return nil
}

// buildURL resolves the request path against the base URL and attaches the
// canonical-irrelevant extras: builder query parameters and the account
// switch key.
func (r *Request) buildURL() (string, error) {
	rel, err := url.Parse(r.path)
	if err != nil {
		return "", fmt.Errorf("client: parse path: %w", err)
	}

	u := r.client.baseURL.ResolveReference(rel)

	query := u.Query()
	for key, values := range r.query {
		for _, v := range values {
			query.Add(key, v)
		}
	}

	if ask := r.client.credentials.AccountSwitchKey; ask != "" {
		query.Set("accountSwitchKey", ask)
	}

	u.RawQuery = query.Encode()

	return u.String(), nil
}

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("client: unexpected status %d: %s", e.StatusCode, e.Body)
}
