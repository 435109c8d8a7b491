package auth

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultMaxBody is the maximum number of request body bytes covered by
// the signature (128 KiB) when Credentials.MaxBody is unset.
const DefaultMaxBody = 131072

// Credentials holds the long-lived secrets issued for an Akamai OPEN API
// client. A Credentials value is read-only after construction and safe to
// share between goroutines.
type Credentials struct {
	// ClientToken identifies the API client. Required.
	ClientToken string

	// ClientSecret is the shared secret used to derive per-request signing
	// keys. Required.
	ClientSecret string

	// AccessToken authorizes the client for a set of APIs. Required.
	AccessToken string

	// Host is the API hostname, e.g. "akab-xxxx.luna.akamaiapis.net".
	// Required.
	Host string

	// MaxBody bounds the number of body bytes covered by the signature.
	// Zero or negative means DefaultMaxBody.
	MaxBody int

	// AccountSwitchKey selects an account for partners managing multiple
	// accounts. Optional; not part of the signature.
	AccountSwitchKey string
}

// NewCredentials creates a Credentials value with the default body limit.
// A scheme prefix and trailing slash on host are stripped.
func NewCredentials(clientToken, clientSecret, accessToken, host string) *Credentials {
	return &Credentials{
		ClientToken:  clientToken,
		ClientSecret: clientSecret,
		AccessToken:  accessToken,
		Host:         normalizeHost(host),
	}
}

// Validate reports whether all required fields are present and well formed.
// The returned error wraps ErrMissingCredential with the name of the first
// missing field, or ErrInvalidEncoding for non-UTF-8 content.
func (c *Credentials) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"client_token", c.ClientToken},
		{"client_secret", c.ClientSecret},
		{"access_token", c.AccessToken},
		{"host", c.Host},
	}

	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingCredential, f.name)
		}

		if !utf8.ValidString(f.value) {
			return fmt.Errorf("%w: %s", ErrInvalidEncoding, f.name)
		}
	}

	return nil
}

// maxBody returns the effective body limit.
func (c *Credentials) maxBody() int {
	if c.MaxBody > 0 {
		return c.MaxBody
	}

	return DefaultMaxBody
}

// normalizeHost strips a scheme prefix and trailing slash so the value can
// be used directly in the canonical representation.
func normalizeHost(host string) string {
	if _, rest, ok := strings.Cut(host, "://"); ok {
		host = rest
	}

	return strings.TrimRight(host, "/")
}
