package auth

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransport(t *testing.T) {
	creds := NewCredentials("ct1", "cs1", "at1", "h.example.com")

	t.Run("nil base clones default transport", func(t *testing.T) {
		transport := NewTransport(nil, SignConfig{Credentials: creds})
		assert.NotNil(t, transport)
		assert.NotNil(t, transport.base)

		// Should be a distinct instance, not the global default.
		assert.NotSame(t, http.DefaultTransport, transport.base)
	})

	t.Run("custom base is used", func(t *testing.T) {
		base := &http.Transport{
			IdleConnTimeout: 42 * time.Second,
		}

		transport := NewTransport(base, SignConfig{Credentials: creds})
		assert.Same(t, base, transport.base)
	})
}

func TestTransportRoundTrip(t *testing.T) {
	creds := NewCredentials("ct1", "cs1", "at1", "h.example.com")

	t.Run("signs requests automatically", func(t *testing.T) {
		var received string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := &http.Client{
			Transport: NewTransport(nil, SignConfig{Credentials: creds}),
		}

		resp, err := client.Get(server.URL + "/v1/resource")
		require.NoError(t, err)
		defer resp.Body.Close()

		require.True(t, strings.HasPrefix(received, "EG1-HMAC-SHA256 "), "unexpected header: %s", received)

		fields := authFields(t, received)
		assert.Equal(t, "ct1", fields["client_token"])
		assert.Equal(t, "at1", fields["access_token"])
		assert.NotEmpty(t, fields["timestamp"])
		assert.NotEmpty(t, fields["nonce"])
		assert.NotEmpty(t, fields["signature"])
	})

	t.Run("signature matches an offline recomputation", func(t *testing.T) {
		var received string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			received = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := &http.Client{
			Transport: NewTransport(nil, SignConfig{Credentials: creds}),
		}

		resp, err := client.Post(server.URL+"/v1/items", "application/json", strings.NewReader(`{"key":"value"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		fields := authFields(t, received)
		signedAt, err := time.Parse(timestampFormat, fields["timestamp"])
		require.NoError(t, err)

		// Re-sign an identical request with the timestamp and nonce the
		// transport used; the signatures must agree.
		replay, err := http.NewRequest("POST", server.URL+"/v1/items", strings.NewReader(`{"key":"value"}`))
		require.NoError(t, err)
		replay.Header.Set("Content-Type", "application/json")

		require.NoError(t, SignRequest(replay, SignConfig{
			Credentials: creds,
			Timestamp:   signedAt,
			Nonce:       fields["nonce"],
		}))

		assert.Equal(t, received, replay.Header.Get("Authorization"))
	})

	t.Run("full body is sent despite truncated signing", func(t *testing.T) {
		limited := NewCredentials("ct1", "cs1", "at1", "h.example.com")
		limited.MaxBody = 4

		var body []byte

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var err error
			body, err = io.ReadAll(r.Body)
			require.NoError(t, err)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := &http.Client{
			Transport: NewTransport(nil, SignConfig{Credentials: limited}),
		}

		payload := bytes.Repeat([]byte("x"), 64)
		resp, err := client.Post(server.URL+"/v1/upload", "application/octet-stream", bytes.NewReader(payload))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, payload, body)
	})

	t.Run("caller request is not mutated", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := &http.Client{
			Transport: NewTransport(nil, SignConfig{Credentials: creds}),
		}

		req, err := http.NewRequest("GET", server.URL+"/v1/resource", nil)
		require.NoError(t, err)

		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("signing failure aborts the request", func(t *testing.T) {
		var hits int

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			hits++
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := &http.Client{
			Transport: NewTransport(nil, SignConfig{}),
		}

		_, err := client.Get(server.URL + "/v1/resource")
		require.ErrorIs(t, err, ErrNoCredentials)
		assert.Zero(t, hits)
	})
}
